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
// File Name:  location.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"strings"
)

// stripWrapper removes a function-call style wrapper like complement( ... )
// spanning the whole expression, reporting whether it was present
func stripWrapper(str, name string) (string, bool) {

	if strings.HasPrefix(str, name+"(") && strings.HasSuffix(str, ")") {
		str = strings.TrimPrefix(str, name+"(")
		str = strings.TrimSuffix(str, ")")
		return strings.TrimSpace(str), true
	}

	return str, false
}

// FormatLocation converts a raw flatfile location expression into ordered
// tab-separated start and end pairs for the feature table. An outer
// complement wrapper, a join list, and a complement wrapper local to any
// join element are all recognized. Partial markers < and > stay attached to
// the numeric value they decorated in the source, and complemented
// intervals are emitted with their endpoints swapped. A bare coordinate
// with no range yields an interval whose start and end are equal.
func FormatLocation(location string) []string {

	loc := strings.TrimSpace(location)

	loc, outerComplement := stripWrapper(loc, "complement")

	var intervals []string
	if inner, ok := stripWrapper(loc, "join"); ok {
		for _, item := range strings.Split(inner, ",") {
			intervals = append(intervals, strings.TrimSpace(item))
		}
	} else {
		intervals = []string{loc}
	}

	var formatted []string

	for _, interval := range intervals {

		interval, localComplement := stripWrapper(interval, "complement")

		fr, to := SplitInTwoLeft(interval, "..")
		if to == "" {
			// single-point location
			to = fr
		}

		frPartial := ""
		if strings.HasPrefix(fr, "<") {
			fr = strings.TrimPrefix(fr, "<")
			frPartial = "<"
		}
		toPartial := ""
		if strings.HasPrefix(to, ">") {
			to = strings.TrimPrefix(to, ">")
			toPartial = ">"
		}

		if outerComplement || localComplement {
			// markers travel with their value, not with the position
			formatted = append(formatted, toPartial+to+"\t"+frPartial+fr)
		} else {
			formatted = append(formatted, frPartial+fr+"\t"+toPartial+to)
		}
	}

	return formatted
}
