// Package types defines the values shared between the verifier, the
// typesetting library adapters and the console output: render options,
// check status and the lines a check emits.
package types
