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
// File Name:  features.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"strings"
)

// flatfile feature table indentation columns
const (
	fivespaces      = "     "
	twentyonespaces = "                     "
)

// isQualifierNameChar accepts letters, digits, underscore, and dash, so
// names like gene_synonym and EC_number are kept intact
func isQualifierNameChar(ch byte) bool {

	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' || ch == '-'
}

// splitQualifier separates /name=value syntax into name and raw value,
// reporting whether an equals sign introduced a value at all
func splitQualifier(txt string) (string, string, bool) {

	txt = strings.TrimPrefix(txt, "/")

	idx := 0
	for idx < len(txt) && isQualifierNameChar(txt[idx]) {
		idx++
	}

	name := txt[:idx]

	if idx < len(txt) && txt[idx] == '=' {
		return name, txt[idx+1:], true
	}

	return name, "", false
}

// ParseFeatures scans the FEATURES block of raw flatfile text and returns
// the features in source order, each with its qualifiers in source order.
// Scanning starts after a line beginning with FEATURES and stops entirely
// at a line beginning with ORIGIN or BASE COUNT. Feature keys sit at the
// five space column, qualifiers at the twenty-one space column. Unmatched
// lines are skipped without complaint. A missing FEATURES block yields an
// empty feature list, not an error.
func ParseFeatures(text string) []Feature {

	lines := strings.Split(text, "\n")

	var features []Feature

	// explicit builder state, committed on each feature boundary and at
	// the end of the block
	currType := ""
	currLoc := ""
	var currQuals []Qualifier
	hasFeature := false

	commitFeature := func() {

		if !hasFeature {
			return
		}
		features = append(features, Feature{Type: currType, Location: currLoc, Qualifiers: currQuals})
		currType = ""
		currLoc = ""
		currQuals = nil
		hasFeature = false
	}

	// accumulateValue consumes continuation lines of a multi-line quoted
	// value, returning the completed value and the index of the first
	// unconsumed line. An unterminated value is closed at best effort.
	accumulateValue := func(val string, next int) (string, int) {

		j := next
		for j < len(lines) {
			line := lines[j]
			if !strings.HasPrefix(line, twentyonespaces) {
				break
			}
			txt := strings.TrimSpace(line)
			if strings.HasPrefix(txt, "/") {
				// start of next qualifier ends the value
				break
			}
			if strings.HasSuffix(txt, "\"") {
				val += " " + strings.TrimSuffix(txt, "\"")
				j++
				break
			}
			val += " " + txt
			j++
		}

		return val, j
	}

	inFeatures := false

	i := 0
	for i < len(lines) {

		line := lines[i]
		i++

		if !inFeatures {
			if strings.HasPrefix(line, "FEATURES") {
				inFeatures = true
			}
			continue
		}

		if strings.HasPrefix(line, "ORIGIN") || strings.HasPrefix(line, "BASE COUNT") {
			// remaining lines are sequence data, ignore them
			break
		}

		if strings.Contains(line, "Location/Qualifiers") {
			continue
		}

		if strings.HasPrefix(line, fivespaces) && !strings.HasPrefix(line, twentyonespaces) {

			// feature key at the lesser indentation column
			rest := line[len(fivespaces):]
			if rest != "" && rest[0] != ' ' {
				ftype, tail := SplitInTwoLeft(rest, " ")
				loc := strings.TrimSpace(tail)
				if loc != "" {
					commitFeature()
					currType = ftype
					currLoc = loc
					hasFeature = true
				}
				continue
			}
		}

		if strings.HasPrefix(line, twentyonespaces) && hasFeature {

			txt := strings.TrimSpace(line)
			if !strings.HasPrefix(txt, "/") {
				continue
			}

			name, val, hasVal := splitQualifier(txt)
			if name == "" {
				continue
			}

			if hasVal && strings.HasPrefix(val, "\"") {
				if strings.HasSuffix(val, "\"") && len(val) > 1 {
					// single-line quoted value
					val = strings.TrimPrefix(val, "\"")
					val = strings.TrimSuffix(val, "\"")
				} else {
					// multi-line quoted value, strip the opening quote and
					// join continuation lines with single spaces
					val, i = accumulateValue(strings.TrimPrefix(val, "\""), i)
				}
			} else {
				val = strings.TrimSpace(val)
			}

			// codon_start and translation are dropped at parse time, after
			// their continuation lines have been consumed
			if IsExcludedQualifier(name) {
				continue
			}

			currQuals = append(currQuals, Qualifier{Name: name, Value: strings.TrimSpace(val)})
		}
	}

	// commit the feature still open at the end of input
	commitFeature()

	return features
}
