package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/katexprobe/pkg/logging"
	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// SampleExpression is rendered by every check
	SampleExpression = "E = mc^2"
	// Marker must appear in the rendered output; KaTeX wraps everything in
	// elements with the "katex" class.
	Marker = "katex"
	// DefaultModule is the npm package the remediation hints point at
	DefaultModule = "katex"
)

// SampleOptions returns the fixed options every check renders with
func SampleOptions() types.RenderOptions {
	return types.RenderOptions{
		Output:       types.OutputHTML,
		DisplayMode:  true,
		ThrowOnError: false,
		Strict:       false,
		Trust:        false,
	}
}

// Verifier runs the installation check against a loader
type Verifier struct {
	loader types.Loader
	module string
	logger zerolog.Logger
}

// New creates a verifier. module is the npm package named in remediation
// hints; an empty module falls back to DefaultModule.
func New(loader types.Loader, module string) *Verifier {
	if module == "" {
		module = DefaultModule
	}
	return &Verifier{
		loader: loader,
		module: module,
		logger: logging.GetLogger("verifier"),
	}
}

// Check loads the library and renders the sample expression once
func (v *Verifier) Check(ctx context.Context) types.CheckResult {
	done := logging.LogOperationStart(v.logger, "installation check")
	defer done()

	lib, err := v.loader.Load(ctx)
	if err == nil && lib == nil {
		err = errors.New(errors.ErrInternal, MsgNilLibrary)
	}
	if err != nil {
		v.logger.Debug().
			Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Library could not be loaded")
		return v.unavailable(err)
	}
	v.logger.Debug().Str("module", v.module).Msg("Library loaded")

	out, err := lib.RenderToString(ctx, SampleExpression, SampleOptions())
	if err != nil {
		v.logger.Debug().Err(err).Msg("Render call failed")
		return degraded(err)
	}
	if out == "" {
		v.logger.Debug().Msg("Render returned empty output")
		return degraded(errors.New(errors.ErrRenderCheck, MsgNoOutput))
	}
	if !strings.Contains(out, Marker) {
		v.logger.Debug().
			Int("bytes", len(out)).
			Str("marker", Marker).
			Msg("Render output is missing the marker")
		return degraded(errors.Newf(errors.ErrRenderCheck, MsgNoMarker, Marker))
	}

	v.logger.Info().Int("bytes", len(out)).Msg("Rendering test passed")
	return types.CheckResult{
		Status: types.StatusReady,
		Lines: []types.Line{
			{Stream: types.Stdout, Kind: types.LineSuccess, Text: MsgLoaded},
			{Stream: types.Stdout, Kind: types.LineSuccess, Text: MsgRenderOK},
			{Stream: types.Stdout, Kind: types.LineSuccess, Text: MsgReady},
		},
	}
}

func (v *Verifier) unavailable(err error) types.CheckResult {
	return types.CheckResult{
		Status: types.StatusUnavailable,
		Reason: err,
		Lines: []types.Line{
			{Stream: types.Stderr, Kind: types.LineFailure, Text: fmt.Sprintf(MsgNotFound, errors.UserMessage(err))},
			{Stream: types.Stdout, Kind: types.LineHint, Text: fmt.Sprintf(MsgHintGlobal, v.module)},
			{Stream: types.Stdout, Kind: types.LineHint, Text: fmt.Sprintf(MsgHintLocal, v.module)},
		},
	}
}

// degraded reports a library that loaded but failed the render test. The
// loaded line has already been earned, the failure line follows it.
func degraded(err error) types.CheckResult {
	return types.CheckResult{
		Status: types.StatusDegraded,
		Reason: err,
		Lines: []types.Line{
			{Stream: types.Stdout, Kind: types.LineSuccess, Text: MsgLoaded},
			{Stream: types.Stderr, Kind: types.LineFailure, Text: MsgRenderFail},
		},
	}
}

// ExitCode maps a result to the process exit status: 0 when ready, 1 otherwise
func ExitCode(r types.CheckResult) int {
	if r.OK() {
		return 0
	}
	return 1
}
