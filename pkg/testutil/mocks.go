package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/katexprobe/pkg/types"
)

// RenderCall records one RenderToString invocation
type RenderCall struct {
	Expression string
	Options    types.RenderOptions
}

// MockLibrary is a types.Library returning fixed output
type MockLibrary struct {
	Output string
	Err    error

	mu    sync.Mutex
	calls []RenderCall
}

// NewMockLibrary returns a library that renders every expression as output
func NewMockLibrary(output string) *MockLibrary {
	return &MockLibrary{Output: output}
}

func (m *MockLibrary) RenderToString(_ context.Context, expression string, opts types.RenderOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, RenderCall{Expression: expression, Options: opts})
	return m.Output, m.Err
}

// Calls returns the recorded render calls
func (m *MockLibrary) Calls() []RenderCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RenderCall(nil), m.calls...)
}

// MockLoader is a types.Loader returning a fixed library or error
type MockLoader struct {
	Library types.Library
	Err     error

	mu    sync.Mutex
	loads int
}

// NewMockLoader returns a loader that always yields lib
func NewMockLoader(lib types.Library) *MockLoader {
	return &MockLoader{Library: lib}
}

// NewFailingLoader returns a loader that always fails with err
func NewFailingLoader(err error) *MockLoader {
	return &MockLoader{Err: err}
}

func (m *MockLoader) Load(context.Context) (types.Library, error) {
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Library, nil
}

// Loads returns how many times Load was called
func (m *MockLoader) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}
