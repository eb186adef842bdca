// Package testutil provides utilities for testing katexprobe components.
//
// Key components:
//   - TestEnvironment: isolated XDG directories and a clean KATEXPROBE_* env
//   - FakeNode: a shell script standing in for node and npm
//   - MockLoader, MockLibrary: in-memory types.Loader and types.Library
//
// Usage guidelines:
//   - Verifier and command tests should use the mocks
//   - Only pkg/katex and end-to-end command tests should spawn FakeNode
//   - Each test should be completely isolated with no shared state
package testutil
