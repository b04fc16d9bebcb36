// ===========================================================================
//
//                            PUBLIC DOMAIN NOTICE
//            National Center for Biotechnology Information (NCBI)
//
//  This software/database is a "United States Government Work" under the
//  terms of the United States Copyright Act. It was written as part of
//  the author's official duties as a United States Government employee and
//  thus cannot be copyrighted. This software/database is freely available
//  to the public for use. The National Library of Medicine and the U.S.
//  Government do not place any restriction on its use or reproduction.
//  We would, however, appreciate having the NCBI and the author cited in
//  any work or product based on this material.
//
//  Although all reasonable efforts have been taken to ensure the accuracy
//  and reliability of the software and data, the NLM and the U.S.
//  Government do not and cannot warrant the performance or results that
//  may be obtained by using this software or data. The NLM and the U.S.
//  Government disclaim all warranties, express or implied, including
//  warranties of performance, merchantability or fitness for any particular
//  purpose.
//
// ===========================================================================
//
// File Name:  chan.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"os"
	"strings"
)

// ChanToStdout sends a string channel to stdout
func ChanToStdout(inp <-chan string) {

	if inp == nil {
		return
	}

	last := ""

	for str := range inp {
		last = str
		os.Stdout.WriteString(str)
	}

	if !strings.HasSuffix(last, "\n") {
		os.Stdout.WriteString("\n")
	}
}

// ChanToString converts a string channel to a string
func ChanToString(inp <-chan string) string {

	if inp == nil {
		return ""
	}

	var buffer strings.Builder

	for str := range inp {
		buffer.WriteString(str)
	}

	return buffer.String()
}
