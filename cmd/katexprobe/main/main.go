package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/katexprobe/cmd/katexprobe"
	"github.com/arthur-debert/katexprobe/pkg/logging"
	"github.com/arthur-debert/katexprobe/pkg/ui/styles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := katexprobe.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Close()
	if err == nil {
		return
	}

	// The check already printed its own lines
	var failed *katexprobe.CheckFailedError
	if errors.As(err, &failed) {
		os.Exit(failed.ExitCode())
	}

	errorStyle := styles.Get(styles.Error)
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
