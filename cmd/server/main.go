package main

import (
	"context"
	"log/slog"
	"os"

	"blog-service/internal/cli"
	"blog-service/internal/logger"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
