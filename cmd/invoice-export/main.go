// Command invoice-export builds invoices from a JSON sheet and writes each
// of them in every export format.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	var (
		sheetFile string
		outDir    string
		compress  bool
	)

	flag.StringVar(&sheetFile, "sheet", "", "path to the billing sheet JSON file")
	flag.StringVar(&outDir, "out", ".", "directory for exported invoices")
	flag.BoolVar(&compress, "gzip", false, "gzip exported files")
	flag.Parse()

	if sheetFile == "" {
		slog.Error("sheet file is required: set --sheet")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	paths, err := run(ctx, sheetFile, outDir, compress)
	if err != nil {
		slog.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("export completed successfully", slog.Int("files", len(paths)))
}
