package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/petstore-contrib/petstore-contract-tests/framework"

	"github.com/alessio/shellescape"
)

const defaultServiceTimeout = time.Second * 10

type commandParams struct {
	serviceURL     string
	serviceTimeout time.Duration
	filters        framework.RegexFilters
	junitFile      string
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the pet store service")
	fs.DurationVar(&c.serviceTimeout, "timeout", defaultServiceTimeout,
		"how long to wait for the service to respond at startup")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.junitFile, "junit", "", "write a JUnit XML report to this file")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
