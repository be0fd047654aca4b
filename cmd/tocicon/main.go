// Command tocicon writes the table of contents app icons into icons/.
//
// It takes no arguments: the size list and output directory are fixed.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/tocicon"
)

func main() {
	tocicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	g := tocicon.NewGenerator(tocicon.WithProgress(os.Stdout))
	if _, err := g.Generate(context.Background(), tocicon.DefaultSizes, tocicon.DefaultOutputDir); err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
}
