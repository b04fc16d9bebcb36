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
// File Name:  record.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

// Qualifier is a named attribute attached to a feature. Value is empty for
// bare flag qualifiers and for values that trim to the empty string.
type Qualifier struct {
	Name  string
	Value string
}

// Feature is one annotated region of a sequence record, with its raw
// location expression and qualifiers in source order.
type Feature struct {
	Type       string
	Location   string
	Qualifiers []Qualifier
}

// Record contains the parsed data from one GenBank flatfile
type Record struct {
	SeqID    string
	Features []Feature
}

// ParseRecord runs both independent passes over the raw flatfile text
func ParseRecord(text string) Record {

	return Record{
		SeqID:    ExtractSeqID(text),
		Features: ParseFeatures(text),
	}
}
