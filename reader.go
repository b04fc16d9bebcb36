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
// File Name:  reader.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/pgzip"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// error kinds distinguished for callers that aggregate batch results
var (
	ErrReadFailure  = errors.New("unable to read input")
	ErrWriteFailure = errors.New("unable to write output")
)

// ReadFlatfile reads the full text of one flatfile, transparently
// decompressing gzipped inputs. Text that is not valid UTF-8 is re-decoded
// with the permissive Latin-1 single-byte encoding rather than rejected.
func ReadFlatfile(path string) (string, error) {

	inFile, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrReadFailure, err.Error())
	}
	defer inFile.Close()

	brd := bufio.NewReader(inFile)

	var rdr io.Reader = brd

	if strings.HasSuffix(path, ".gz") {
		// using parallel pgzip for better performance on large files
		zpr, zerr := pgzip.NewReader(brd)
		if zerr != nil {
			return "", fmt.Errorf("%w: %s", ErrReadFailure, zerr.Error())
		}
		defer zpr.Close()
		rdr = zpr
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrReadFailure, err.Error())
	}

	if !utf8.Valid(data) {
		data, err = io.ReadAll(transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrReadFailure, err.Error())
		}
	}

	return string(data), nil
}

// TablePath derives the output file name from the input base name, with
// the .tbl extension, optionally under a separate output directory
func TablePath(input, outputDir string) string {

	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".gz")
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext)

	if outputDir != "" {
		return filepath.Join(outputDir, base+".tbl")
	}

	return filepath.Join(filepath.Dir(input), base+".tbl")
}

// WriteTable persists feature table lines to the indicated path, creating
// the parent directory on demand
func WriteTable(lines []string, path string) error {

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
		}
	}

	fl, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	wrtr := bufio.NewWriter(fl)

	for _, line := range lines {
		wrtr.WriteString(line)
		wrtr.WriteString("\n")
	}

	err = wrtr.Flush()
	if cerr := fl.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err.Error())
	}

	return nil
}
