// Command nortext rewrites Norwegian text into its spoken form.
//
// Usage:
//
//	nortext normalize "Møte kl. 15:30 3. juni"
//	nortext dataset --input tts_dataset.txt --output tts_dataset_normalized.txt
//	nortext explain "ca. 10-15 deltakere"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		logger.Error("nortext failed", "error", err)
		stop()
		os.Exit(1)
	}
}
