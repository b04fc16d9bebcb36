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
// File Name:  convert.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// BatchResult records the outcome of converting one flatfile
type BatchResult struct {
	Input  string
	Output string
	Err    error
}

// ConvertFile converts one flatfile on disk and writes the feature table
// next to it, or under outputDir when given, returning the output path
func ConvertFile(input, outputDir string) (string, error) {

	text, err := ReadFlatfile(input)
	if err != nil {
		return "", err
	}

	_, lines := ConvertRecord(text)

	output := TablePath(input, outputDir)

	if err := WriteTable(lines, output); err != nil {
		return "", err
	}

	return output, nil
}

// ConvertGlob converts every flatfile in a directory matching the glob
// pattern, fanning files out to concurrent converters. Results come back
// in glob order, and a failure on one file never disturbs the others.
func ConvertGlob(inputDir, outputDir, pattern string) ([]BatchResult, error) {

	paths, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %s: %s", pattern, err.Error())
	}

	// skip directories and other non-regular entries caught by the glob
	var inputs []string
	for _, path := range paths {
		fi, serr := os.Stat(path)
		if serr != nil || !fi.Mode().IsRegular() {
			continue
		}
		inputs = append(inputs, path)
	}

	results := make([]BatchResult, len(inputs))

	type job struct {
		index int
		input string
	}

	jobs := make(chan job, chanDepth)

	convertFiles := func(wg *sync.WaitGroup, jobs <-chan job) {

		// report when this converter has no more files to process
		defer wg.Done()

		for jb := range jobs {
			output, cerr := ConvertFile(jb.input, outputDir)
			results[jb.index] = BatchResult{Input: jb.input, Output: output, Err: cerr}
		}
	}

	var wg sync.WaitGroup

	// launch multiple converter goroutines
	for i := 0; i < numServe; i++ {
		wg.Add(1)
		go convertFiles(&wg, jobs)
	}

	for i, input := range inputs {
		jobs <- job{index: i, input: input}
	}
	close(jobs)

	wg.Wait()

	return results, nil
}
