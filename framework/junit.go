package framework

import (
	"encoding/xml"
	"os"
	"strings"
)

// The minimal JUnit schema that CI systems agree on: a testsuite element with
// counts, containing one testcase per test, each with optional failure or
// skipped children.

type junitTestSuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name    string        `xml:"name,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
	Skipped *struct{}     `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
}

// WriteJUnitFile writes the results of a test run as a JUnit XML report.
func WriteJUnitFile(path string, results Results) error {
	suite := junitTestSuite{
		Name:     "contract-tests",
		Tests:    len(results.Tests),
		Failures: len(results.Failures),
	}
	for _, t := range results.Tests {
		c := junitTestCase{Name: t.TestID.String()}
		if t.Skipped {
			suite.Skipped++
			c.Skipped = &struct{}{}
		}
		if len(t.Errors) > 0 {
			var messages []string
			for _, err := range t.Errors {
				messages = append(messages, err.Error())
			}
			c.Failure = &junitFailure{Message: strings.Join(messages, "; ")}
		}
		suite.Cases = append(suite.Cases, c)
	}

	data, err := xml.MarshalIndent(suite, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(xml.Header), data...), 0644)
}
