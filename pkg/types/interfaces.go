package types

import "context"

// Library is the capability the installation check consumes from the
// typesetting library: render an expression to markup.
type Library interface {
	RenderToString(ctx context.Context, expression string, opts RenderOptions) (string, error)
}

// Loader locates and loads a Library
type Loader interface {
	Load(ctx context.Context) (Library, error)
}
