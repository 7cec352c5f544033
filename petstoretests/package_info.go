// Package petstoretests contains the contract test suite for the pet store
// API, built on the framework and client packages.
package petstoretests
