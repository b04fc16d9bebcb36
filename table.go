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
// File Name:  table.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"errors"
	"io"
	"strings"
)

// ErrNoFeatureBlock is reported by ConvertRecordStrict when the flatfile
// has no FEATURES section
var ErrNoFeatureBlock = errors.New("flatfile has no FEATURES block")

// FormatFeatureTable renders cleaned identifier and normalized features as
// NCBI feature table lines. Features of type source are parsed and
// normalized like any other but are never written. Emission order exactly
// matches the parsed order.
func FormatFeatureTable(seqid string, features []Feature) []string {

	lines := []string{">Feature " + CleanSeqID(seqid)}

	for _, feat := range features {

		if strings.EqualFold(feat.Type, "source") {
			continue
		}

		intervals := FormatLocation(feat.Location)

		// first interval carries the feature type column
		lines = append(lines, intervals[0]+"\t"+feat.Type)
		for _, interval := range intervals[1:] {
			lines = append(lines, interval)
		}

		for _, qual := range feat.Qualifiers {
			if qual.Value != "" {
				lines = append(lines, "\t\t\t"+qual.Name+"\t"+qual.Value)
			} else {
				lines = append(lines, "\t\t\t"+qual.Name)
			}
		}
	}

	return lines
}

// ConvertRecord converts one GenBank flatfile record to feature table
// lines, returning the resolved identifier along with the output. Parsing
// is permissive, so a record without a FEATURES block still produces the
// degenerate header-only table.
func ConvertRecord(text string) (string, []string) {

	rec := ParseRecord(text)

	rec.Features = NormalizeQualifiers(rec.Features)

	return rec.SeqID, FormatFeatureTable(rec.SeqID, rec.Features)
}

// ConvertRecordStrict behaves like ConvertRecord but treats a missing
// FEATURES block as an error
func ConvertRecordStrict(text string) (string, []string, error) {

	hasBlock := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "FEATURES") {
			hasBlock = true
			break
		}
	}

	seqid, lines := ConvertRecord(text)

	if !hasBlock {
		return seqid, lines, ErrNoFeatureBlock
	}

	return seqid, lines, nil
}

// FeatureTableConverter reads one flatfile record and sends newline
// terminated feature table lines down a channel
func FeatureTableConverter(inp io.Reader) <-chan string {

	if inp == nil {
		return nil
	}

	out := make(chan string, chanDepth)

	convertTable := func(inp io.Reader, out chan<- string) {

		// close channel when all lines have been sent
		defer close(out)

		data, err := io.ReadAll(inp)
		if err != nil {
			DisplayError("Unable to read flatfile input: %s", err.Error())
			return
		}

		_, lines := ConvertRecord(string(data))

		for _, line := range lines {
			out <- line + "\n"
		}
	}

	// launch single converter goroutine
	go convertTable(inp, out)

	return out
}
