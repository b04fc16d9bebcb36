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
// File Name:  utils.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package gbtbl

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/color"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Gbf2tblVersion is the current release number
const Gbf2tblVersion = "4.0"

// PERFORMANCE PARAMETERS AND PROCESSING OPTIONS

// performance tuning variables
var (
	chanDepth int
	numServe  int
	nCPU      int
	numProcs  int
)

// program execution timer
var (
	startTime time.Time
)

// stderr highlighting for diagnostics
var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgBlue, color.Bold)
)

// SetTunings sets performance parameters for batch conversion
func SetTunings(nmProcs, nmServe, chnDepth int) {

	// calculate number of simultaneous threads for multiplexed goroutines
	nCPU = runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}

	if nmProcs < 1 {
		nmProcs = nCPU
		if cpuid.CPU.ThreadsPerCore > 1 {
			// file conversion is not helped by hyperthreads
			cores := nCPU / cpuid.CPU.ThreadsPerCore
			if cores > 0 {
				nmProcs = cores
			}
		}
	}

	if nmProcs > nCPU {
		nmProcs = nCPU
	}

	numProcs = nmProcs

	// allow simultaneous threads for multiplexed goroutines
	runtime.GOMAXPROCS(numProcs)

	if nmServe < 1 {
		nmServe = numProcs
	} else if nmServe > 64 {
		nmServe = 64
	}

	numServe = nmServe

	// number of channels usually equals number of servers
	if chnDepth < 1 || chnDepth > 128 {
		chnDepth = numServe
	}

	chanDepth = chnDepth
}

// ChanDepth returns the communication channel depth
func ChanDepth() int {

	return chanDepth
}

// NumServe returns the number of concurrent converters
func NumServe() int {

	return numServe
}

// DisplayError prints a highlighted error message to stderr
func DisplayError(format string, params ...interface{}) {

	str := fmt.Sprintf(format, params...)
	fmt.Fprintf(os.Stderr, "\n%s %s\n", errorColor.Sprint("ERROR:"), str)
}

// DisplayWarning prints a highlighted warning message to stderr
func DisplayWarning(format string, params ...interface{}) {

	str := fmt.Sprintf(format, params...)
	fmt.Fprintf(os.Stderr, "\n%s %s\n", warningColor.Sprint("WARNING:"), str)
}

// GetNumericArg returns an integer argument, reporting an error if no remaining arguments
func GetNumericArg(args []string, name string, zer, min, max int) int {

	if len(args) < 2 {
		DisplayError("%s is missing", name)
		os.Exit(1)
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		DisplayError("%s (%s) is not an integer", name, args[1])
		os.Exit(1)
	}

	// special case for argument value of 0
	if value < 1 {
		return zer
	}
	// limit value to between specified minimum and maximum
	if value < min && min > 0 {
		return min
	}
	if value > max && max > 0 {
		return max
	}
	return value
}

// GetStringArg returns a string argument, reporting an error if no remaining arguments
func GetStringArg(args []string, name string) string {

	if len(args) < 2 {
		DisplayError("%s is missing", name)
		os.Exit(1)
	}
	return args[1]
}

// PrintDuration prints processing rate and program duration
func PrintDuration(name string, recordCount int) {

	stopTime := time.Now()
	duration := stopTime.Sub(startTime)
	seconds := float64(duration.Nanoseconds()) / 1e9

	prec := 3
	if seconds >= 100 {
		prec = 1
	} else if seconds >= 10 {
		prec = 2
	}

	if recordCount > 0 {
		fmt.Fprintf(os.Stderr, "\nProcessed %d %s in %.*f seconds", recordCount, name, prec, seconds)
	} else {
		fmt.Fprintf(os.Stderr, "\nProcessing completed in %.*f seconds", prec, seconds)
	}

	if seconds >= 0.001 && recordCount > 0 {
		rate := int(float64(recordCount) / seconds)
		fmt.Fprintf(os.Stderr, " (%d %s/second)", rate, name)
	}

	fmt.Fprintf(os.Stderr, "\n\n")
}

// PrintStats prints performance tuning parameters
func PrintStats() {

	fmt.Fprintf(os.Stderr, "Thrd %d\n", nCPU)
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(os.Stderr, "Core %d\n", nCPU/cpuid.CPU.ThreadsPerCore)
	}
	fmt.Fprintf(os.Stderr, "Mmry %d\n", memory.TotalMemory()/(1024*1024*1024))

	fmt.Fprintf(os.Stderr, "Proc %d\n", numProcs)
	fmt.Fprintf(os.Stderr, "Serv %d\n", numServe)
	fmt.Fprintf(os.Stderr, "Chan %d\n", chanDepth)

	fmt.Fprintf(os.Stderr, "\n")
}

// STRING UTILITIES

// IsAllLetters checks that all characters in a string are alphabetic
func IsAllLetters(str string) bool {

	if str == "" {
		return false
	}

	for _, ch := range str {
		if !unicode.IsLetter(ch) {
			return false
		}
	}

	return true
}

// SplitInTwoLeft separates a string at the first occurrence of a delimiter
func SplitInTwoLeft(str, chr string) (string, string) {

	slash := strings.SplitN(str, chr, 2)
	if len(slash) > 1 {
		return slash[0], slash[1]
	}

	return str, ""
}

// initialize execution timer and default tuning values
func init() {

	startTime = time.Now()

	SetTunings(0, 0, 0)
}
