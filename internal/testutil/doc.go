// Package testutil provides builders and typical fixtures shared by tests
// across the core and adapter packages. It is imported only from _test.go files.
package testutil
