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
// File Name:  convert_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalFlatfile(seqid string) string {

	return strings.Join([]string{
		"LOCUS       " + seqid + "                 20 bp    DNA     linear   UNA 01-JAN-2024",
		"VERSION     " + seqid + ".1",
		"FEATURES             Location/Qualifiers",
		fivespaces + "gene            1..20",
		twentyonespaces + "/gene=\"abc\"",
		"ORIGIN      ",
		"        1 acgtacgtac gtacgtacgt",
		"//",
	}, "\n") + "\n"
}

func TestReadFlatfile(t *testing.T) {

	dir := t.TempDir()

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "plain.gb")
		require.NoError(t, os.WriteFile(path, []byte(minimalFlatfile("PLAIN1")), 0644))

		text, err := ReadFlatfile(path)
		require.NoError(t, err)
		assert.Contains(t, text, "VERSION     PLAIN1.1")
	})

	t.Run("gzipped input", func(t *testing.T) {
		path := filepath.Join(dir, "zipped.gb.gz")
		fl, err := os.Create(path)
		require.NoError(t, err)
		zpr := pgzip.NewWriter(fl)
		_, err = zpr.Write([]byte(minimalFlatfile("ZIP1")))
		require.NoError(t, err)
		require.NoError(t, zpr.Close())
		require.NoError(t, fl.Close())

		text, err := ReadFlatfile(path)
		require.NoError(t, err)
		assert.Contains(t, text, "VERSION     ZIP1.1")
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		// 0xE9 is not valid UTF-8 on its own, but decodes as Latin-1
		raw := []byte("DEFINITION  r\xe9sum\xe9\nVERSION     LAT1.1\n")
		path := filepath.Join(dir, "latin.gb")
		require.NoError(t, os.WriteFile(path, raw, 0644))

		text, err := ReadFlatfile(path)
		require.NoError(t, err)
		assert.Contains(t, text, "résumé")
		assert.Contains(t, text, "LAT1.1")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFlatfile(filepath.Join(dir, "absent.gb"))
		assert.ErrorIs(t, err, ErrReadFailure)
	})
}

func TestTablePath(t *testing.T) {

	tests := []struct {
		input     string
		outputDir string
		expected  string
	}{
		{filepath.Join("data", "seq.gb"), "", filepath.Join("data", "seq.tbl")},
		{filepath.Join("data", "seq.gbk"), "out", filepath.Join("out", "seq.tbl")},
		{filepath.Join("data", "seq.gb.gz"), "", filepath.Join("data", "seq.tbl")},
		{"seq.gb", "", "seq.tbl"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TablePath(tt.input, tt.outputDir), "TablePath(%q, %q)", tt.input, tt.outputDir)
	}
}

func TestConvertFile(t *testing.T) {

	dir := t.TempDir()
	input := filepath.Join(dir, "one.gb")
	require.NoError(t, os.WriteFile(input, []byte(minimalFlatfile("ONE1")), 0644))

	outDir := filepath.Join(dir, "tables")

	output, err := ConvertFile(input, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "one.tbl"), output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, ">Feature ONE1.1\n1\t20\tgene\n\t\t\tgene\tabc\n", string(data))
}

func TestConvertGlob(t *testing.T) {

	dir := t.TempDir()

	for _, seqid := range []string{"AAA1", "BBB1", "CCC1"} {
		path := filepath.Join(dir, strings.ToLower(seqid)+".gb")
		require.NoError(t, os.WriteFile(path, []byte(minimalFlatfile(seqid)), 0644))
	}

	// a directory matching the glob must be skipped, not converted
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.gb"), 0755))

	outDir := filepath.Join(dir, "tables")

	results, err := ConvertGlob(dir, outDir, "*.gb")
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, base := range []string{"aaa1", "bbb1", "ccc1"} {
		assert.NoError(t, results[i].Err)
		assert.Equal(t, filepath.Join(dir, base+".gb"), results[i].Input)
		assert.Equal(t, filepath.Join(outDir, base+".tbl"), results[i].Output)
		assert.FileExists(t, results[i].Output)
	}
}

func TestConvertGlobIsolatesFailures(t *testing.T) {

	dir := t.TempDir()

	good := filepath.Join(dir, "good.gb.gz")
	fl, err := os.Create(good)
	require.NoError(t, err)
	zpr := pgzip.NewWriter(fl)
	_, err = zpr.Write([]byte(minimalFlatfile("GOOD1")))
	require.NoError(t, err)
	require.NoError(t, zpr.Close())
	require.NoError(t, fl.Close())

	// not actually gzip data, reading must fail for this entry alone
	bad := filepath.Join(dir, "bad.gb.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not gzip"), 0644))

	results, err := ConvertGlob(dir, "", "*.gb.gz")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.ErrorIs(t, results[0].Err, ErrReadFailure)
	assert.NoError(t, results[1].Err)
	assert.FileExists(t, filepath.Join(dir, "good.tbl"))
}
