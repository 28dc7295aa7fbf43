// Package output renders benchmark results.
//
// Text output is one line per library, written as each pass completes:
//
//	uap-go took 0.412 sec. for 10000 user-agent-strings
//
// JSON, YAML and JUnit reports are written once, after every pass succeeded.
// Verbose parse diagnostics are colored only when written to a terminal.
package output
