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
// File Name:  qualifiers.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"strings"
)

// qualifiers removed at parse time, before any later stage sees them
var excludedQualifiers = map[string]bool{
	"codon_start": true,
	"translation": true,
}

// IsExcludedQualifier reports whether a qualifier name is always dropped
func IsExcludedQualifier(name string) bool {

	return excludedQualifiers[name]
}

// dropQualifier removes every qualifier with the given name, preserving the
// order of the survivors
func dropQualifier(name string) func([]Qualifier) []Qualifier {

	return func(quals []Qualifier) []Qualifier {

		var kept []Qualifier
		for _, q := range quals {
			if q.Name == name {
				continue
			}
			kept = append(kept, q)
		}
		return kept
	}
}

// renameQualifier changes every qualifier with the given name, keeping its
// value and position
func renameQualifier(from, to string) func([]Qualifier) []Qualifier {

	return func(quals []Qualifier) []Qualifier {

		for i, q := range quals {
			if q.Name == from {
				quals[i].Name = to
			}
		}
		return quals
	}
}

// feature-type-keyed corrections for deprecated or redundant qualifiers.
// mRNA features already follow a gene feature, so their gene qualifier is
// redundant; label is deprecated and is removed from CDS but retained as
// note on misc_feature.
var qualifierRules = []struct {
	ftype string
	apply func([]Qualifier) []Qualifier
}{
	{"mrna", dropQualifier("gene")},
	{"cds", dropQualifier("label")},
	{"misc_feature", renameQualifier("label", "note")},
}

// NormalizeQualifiers applies the feature-type-keyed qualifier rules to
// each feature in place. Feature types match case-insensitively, and each
// feature is touched by at most one rule.
func NormalizeQualifiers(features []Feature) []Feature {

	for i := range features {
		ftype := strings.ToLower(features[i].Type)
		for _, rule := range qualifierRules {
			if rule.ftype == ftype {
				features[i].Qualifiers = rule.apply(features[i].Qualifiers)
				break
			}
		}
	}

	return features
}
