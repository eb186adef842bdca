// Package katex loads the KaTeX npm module through a Node.js subprocess.
//
// NodeLoader mirrors what a user would do by hand: find node, check that it
// runs, then require the module. The returned NodeLibrary renders by running
// a short script that reads a JSON request on stdin and writes the markup
// produced by katex.renderToString to stdout.
package katex
