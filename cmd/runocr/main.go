package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fyang93/housing-ocr/internal/common"
	"github.com/fyang93/housing-ocr/internal/ocr"
)

// runocr sends one local file through the OCR backend and prints the text.
// Handy for checking an endpoint before pointing the daemon at it.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read input", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	client := ocr.NewClient(ocr.Config{
		Endpoint:    cfg.OCR.Endpoint,
		Model:       cfg.OCR.Model,
		MaxRetries:  cfg.OCR.MaxRetries,
		RetryDelay:  cfg.OCR.RetryDelay,
		CallTimeout: cfg.OCR.CallTimeout,
	}, logger)

	// budget for the whole retry loop, not a single attempt
	attempts := time.Duration(cfg.OCR.MaxRetries)
	budget := attempts*cfg.OCR.CallTimeout + attempts*cfg.OCR.RetryDelay
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	text, err := client.ExtractText(ctx, path)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err)
		os.Exit(1)
	}
	fmt.Println(text)
}
