package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/data-catalog/internal/cli"
	"github.com/MKhiriev/data-catalog/internal/logger"
)

func main() {
	log := logger.NewLogger("upload")
	_ = logger.SetLevel("warn")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewUploadCommand(os.Stdout, log)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
