// Package output renders run results for humans.
//
// The console formatter prints one line per routine (pass, fail, skip),
// indents the failure's message lines with their source location under
// the routine, and closes with totals and duration percentiles.
package output
