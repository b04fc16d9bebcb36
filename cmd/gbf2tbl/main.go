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
// File Name:  main.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gbtbl"
)

const gbf2tblHelp = `
Flatfile Conversion

  gbf2tbl reads GenBank flatfiles and writes NCBI feature tables
  suitable for annotation submission tools

Single File

  gbf2tbl sequence.gb

Directory

  gbf2tbl -input genbank_files -output tables -pattern "*.gbk"

Streaming

  gbf2tbl -pipe < sequence.gb > sequence.tbl

Performance

  -proc  number of processors to use
  -serv  number of concurrent converters

Reporting

  -timer processing rate at completion
  -stats hardware and tuning parameters

`

func printUsage() {

	fmt.Printf("gbf2tbl %s\n%s", gbtbl.Gbf2tblVersion, gbf2tblHelp)
}

// processSingle converts one file and reports the generated table path
func processSingle(input, outputDir string) int {

	if _, err := os.Stat(input); err != nil {
		gbtbl.DisplayError("File '%s' not found", input)
		return 0
	}

	output, err := gbtbl.ConvertFile(input, outputDir)
	if err != nil {
		gbtbl.DisplayError("Unable to process %s: %s", input, err.Error())
		return 0
	}

	fmt.Fprintf(os.Stdout, "Generated: %s\n", output)

	return 1
}

// processDirectory converts all matching files, reporting each outcome
// independently and returning the success count
func processDirectory(inputDir, outputDir, pattern string) int {

	if fi, err := os.Stat(inputDir); err != nil || !fi.IsDir() {
		gbtbl.DisplayError("Input directory '%s' not found", inputDir)
		return 0
	}

	results, err := gbtbl.ConvertGlob(inputDir, outputDir, pattern)
	if err != nil {
		gbtbl.DisplayError("%s", err.Error())
		return 0
	}

	numOkay := 0

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stdout, "Failed:    %s - %s\n", filepath.Base(res.Input), res.Err.Error())
			continue
		}
		fmt.Fprintf(os.Stdout, "Processed: %s -> %s\n", filepath.Base(res.Input), filepath.Base(res.Output))
		numOkay++
	}

	fmt.Fprintf(os.Stdout, "\nGenerated %d feature table files\n", numOkay)

	return numOkay
}

func main() {

	// skip past executable name
	args := os.Args[1:]

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	inputDir := ""
	outputDir := ""
	pattern := "*.gb"

	doPipe := false
	doTimer := false
	doStats := false

	nmProcs := 0
	nmServe := 0

	// get leading arguments
	for len(args) > 0 {

		str := args[0]

		if len(str) < 1 || str[0] != '-' {
			break
		}

		switch str {
		case "-version":
			fmt.Printf("%s\n", gbtbl.Gbf2tblVersion)
			return
		case "-h", "-help", "--help":
			printUsage()
			return
		case "-pipe":
			doPipe = true
		case "-timer":
			doTimer = true
		case "-stats":
			doStats = true
		case "-input", "-i":
			inputDir = gbtbl.GetStringArg(args, "Input directory")
			args = args[1:]
		case "-output", "-o":
			outputDir = gbtbl.GetStringArg(args, "Output directory")
			args = args[1:]
		case "-pattern":
			pattern = gbtbl.GetStringArg(args, "File pattern")
			args = args[1:]
		case "-proc":
			nmProcs = gbtbl.GetNumericArg(args, "Processor count", 0, 1, 64)
			args = args[1:]
		case "-serv":
			nmServe = gbtbl.GetNumericArg(args, "Converter count", 0, 1, 64)
			args = args[1:]
		default:
			gbtbl.DisplayError("Unrecognized argument '%s'", str)
			os.Exit(1)
		}

		args = args[1:]
	}

	gbtbl.SetTunings(nmProcs, nmServe, 0)

	if doStats {
		gbtbl.PrintStats()
	}

	if doPipe {

		// stream one record from stdin to stdout
		gbtbl.ChanToStdout(gbtbl.FeatureTableConverter(os.Stdin))

		if doTimer {
			gbtbl.PrintDuration("records", 1)
		}
		return
	}

	numOkay := 0

	if inputDir != "" {

		numOkay = processDirectory(inputDir, outputDir, pattern)

	} else {

		if len(args) < 1 {
			gbtbl.DisplayError("Input file is missing")
			os.Exit(1)
		}

		numOkay = processSingle(args[0], outputDir)
	}

	if doTimer {
		gbtbl.PrintDuration("files", numOkay)
	}

	if numOkay < 1 {
		os.Exit(1)
	}
}
