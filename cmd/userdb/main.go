package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/data-catalog/internal/cli"
	"github.com/MKhiriev/data-catalog/internal/logger"
)

func main() {
	log := logger.NewLogger("userdb")
	_ = logger.SetLevel("warn")

	cmd := cli.NewUserDBCommand(os.Stdout, log)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, cmd.UsageString())
			os.Exit(2)
		}
		os.Exit(1)
	}
}
