package katex

import (
	"context"
	"encoding/json"
	"time"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/rs/zerolog"
)

// NodeLibrary renders expressions with a loaded KaTeX module
type NodeLibrary struct {
	binary  string
	module  string
	env     []string
	timeout time.Duration

	// Version is the module's reported version, empty if it has none
	Version string
	// NodeVersion is the output of node --version
	NodeVersion string

	logger zerolog.Logger
}

// RenderToString renders expression with opts. An empty string means the
// library returned nothing.
func (l *NodeLibrary) RenderToString(ctx context.Context, expression string, opts types.RenderOptions) (string, error) {
	payload, err := json.Marshal(types.RenderRequest{Expression: expression, Options: opts})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode render request")
	}

	res, err := run(ctx, l.timeout, l.binary, []string{"-e", renderScript, l.module}, l.env, payload)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrTimeout) || errors.IsErrorCode(err, errors.ErrCanceled) {
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrRenderFailed, "render call failed")
	}
	if res.exitCode != 0 {
		msg := firstLine(res.stderr)
		if msg == "" {
			msg = "render script failed"
		}
		return "", errors.New(errors.ErrRenderFailed, msg).
			WithDetail("exitCode", res.exitCode).
			WithDetail("thrown", res.exitCode == exitRenderError)
	}

	if summary, err := Inspect(res.stdout); err != nil {
		l.logger.Debug().Err(err).Int("bytes", len(res.stdout)).Msg("Render output is not well-formed markup")
	} else {
		l.logger.Debug().
			Str("root", summary.Root).
			Str("class", summary.RootClass).
			Int("elements", summary.Elements).
			Msg("Render output")
	}

	return res.stdout, nil
}
