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
// File Name:  seqid.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"strings"
)

// fallbackSeqID is used when no identifier line is present or cleaning
// leaves an empty string
const fallbackSeqID = "sequence"

// ExtractSeqID finds a stable sequence identifier in raw flatfile text.
// VERSION is preferred over ACCESSION, which is preferred over LOCUS, each
// matched as the first token on its line anywhere in the record. Only the
// first identifier token on the winning line is used - ACCESSION lines may
// list secondary accessions, and the LOCUS name is followed by the sequence
// length. The literal "sequence" is returned when nothing matches.
func ExtractSeqID(text string) string {

	version := ""
	accession := ""
	locus := ""

	for _, line := range strings.Split(text, "\n") {

		if line == "" || line[0] == ' ' {
			// anchors must be the first token on their line
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < 2 {
			continue
		}

		switch cols[0] {
		case "VERSION":
			if version == "" {
				version = cols[1]
			}
		case "ACCESSION":
			if accession == "" {
				accession = cols[1]
			}
		case "LOCUS":
			if locus == "" {
				locus = cols[1]
			}
		}

		if version != "" {
			break
		}
	}

	if version != "" {
		return version
	}
	if accession != "" {
		return accession
	}
	if locus != "" {
		return locus
	}

	return fallbackSeqID
}

// CleanSeqID removes a single database-source prefix like gb| or ref| and a
// single trailing pipe from a sequence identifier, substituting "sequence"
// if nothing remains. Applied at serialization time only. Idempotent.
func CleanSeqID(seqid string) string {

	str := strings.TrimSpace(seqid)

	// remove one leading <letters>| prefix
	idx := strings.Index(str, "|")
	if idx > 0 && IsAllLetters(str[:idx]) {
		str = str[idx+1:]
	}

	str = strings.TrimSuffix(str, "|")

	str = strings.TrimSpace(str)

	if str == "" {
		return fallbackSeqID
	}

	return str
}
