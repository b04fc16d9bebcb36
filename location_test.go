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
// File Name:  location_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocation(t *testing.T) {

	tests := []struct {
		location string
		expected []string
	}{
		{"123..456", []string{"123\t456"}},
		{"complement(123..456)", []string{"456\t123"}},
		{"join(1..10,20..30)", []string{"1\t10", "20\t30"}},
		{"join(1..10, 20..30)", []string{"1\t10", "20\t30"}},
		{"join(complement(1..10),20..30)", []string{"10\t1", "20\t30"}},
		{"complement(join(1..10,20..30))", []string{"10\t1", "30\t20"}},
		{"<1..>3311", []string{"<1\t>3311"}},
		{"<1..200", []string{"<1\t200"}},
		{"complement(<1..>3311)", []string{">3311\t<1"}},
		{"123", []string{"123\t123"}},
		{"complement(123)", []string{"123\t123"}},
		{"join(5,10..20)", []string{"5\t5", "10\t20"}},
		{" 123..456 ", []string{"123\t456"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatLocation(tt.location), "FormatLocation(%q)", tt.location)
	}
}
