package katex

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/katexprobe/pkg/logging"
)

// waitDelay bounds how long we wait for output pipes after a timeout kill
const waitDelay = time.Second

type runResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// run executes binary with args under timeout. A non-zero exit is not an
// error; callers inspect exitCode. Timeouts map to ErrTimeout and a
// cancelled parent context maps to ErrCanceled.
func run(ctx context.Context, timeout time.Duration, binary string, args []string, env []string, stdin []byte) (runResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logging.LogCommand(binary, redactScript(args))

	cmd := exec.CommandContext(runCtx, binary, args...)
	cmd.Env = env
	cmd.WaitDelay = waitDelay
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := runResult{
		stdout: stdout.String(),
		stderr: strings.TrimSpace(stderr.String()),
	}

	if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return res, errors.Newf(errors.ErrTimeout, "%s did not finish within %s", binary, timeout).
			WithDetail("binary", binary).
			WithDetail("timeout", timeout.String())
	}
	if stderrors.Is(runCtx.Err(), context.Canceled) {
		return res, errors.Wrapf(runCtx.Err(), errors.ErrCanceled, "%s was interrupted", binary).
			WithDetail("binary", binary)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, errors.Wrapf(err, errors.ErrInternal, "failed to run %s", binary)
	}
	return res, nil
}

// redactScript replaces inline scripts with a placeholder so logs stay short
func redactScript(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i++ {
		if out[i] == "-e" {
			out[i+1] = "<script>"
		}
	}
	return out
}

// firstLine returns the first non-empty line of s
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
