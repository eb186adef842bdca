package katex

import (
	"testing"
	"time"

	"github.com/arthur-debert/katexprobe/pkg/testutil"
)

type fakeEnv struct {
	*testutil.FakeNode
}

func newFakeEnv(t *testing.T) *fakeEnv {
	t.Helper()
	return &fakeEnv{FakeNode: testutil.NewFakeNode(t)}
}

func (f *fakeEnv) settings() Settings {
	return Settings{
		Binary:        f.Node,
		NpmBinary:     f.Npm,
		Module:        "katex",
		ProbeTimeout:  2 * time.Second,
		RenderTimeout: 2 * time.Second,
	}
}

func (f *fakeEnv) recorded(t *testing.T, name string) string {
	t.Helper()
	return f.Recorded(t, name)
}
