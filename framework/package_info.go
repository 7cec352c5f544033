// Package framework contains the domain-agnostic pieces of the test harness.
//
// The general model is:
//
// 1. A test run is a tree of named tests. Each test gets a Context which is
// similar to Go's *testing.T, allowing test logic to be associated with a test
// identifier and to accumulate success/failure results.
//
// 2. Regex filters decide which tests in the tree actually execute; everything
// else is reported as skipped.
//
// 3. Output is decoupled from execution: a TestLogger receives progress events
// as tests run, and the accumulated Results can be printed as a console
// summary or written as a JUnit report afterwards.
//
// The domain-specific code that knows what is being tested (the petstoretests
// package) is responsible for providing the requests to send to the service
// under test and a domain-specific test API on top of the Context.
package framework
