package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/petstore-contrib/petstore-contract-tests/client"
	"github.com/petstore-contrib/petstore-contract-tests/framework"
	"github.com/petstore-contrib/petstore-contract-tests/petstoretests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.WriterLogger(os.Stdout)
	}

	petstore := client.NewPetstoreClient(params.serviceURL, mainDebugLogger)
	if err := petstore.WaitForService(params.serviceTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Pet store service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := petstoretests.RunTestSuite(petstore, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if params.junitFile != "" {
		if err := framework.WriteJUnitFile(params.junitFile, results); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write JUnit report: %s\n", err)
			os.Exit(1)
		}
	}

	if !results.OK() {
		printRerunCommand(params.serviceURL, results)
		os.Exit(1)
	}
}

// printRerunCommand prints a copy-pastable command line that reruns only the
// tests that failed in this run.
func printRerunCommand(serviceURL string, results framework.Results) {
	var cmd commandBuilder
	cmd.add(os.Args[0], "-url", serviceURL)
	for _, f := range results.Failures {
		cmd.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	fmt.Printf("To rerun only the failed tests:\n  %s\n", cmd)
}
