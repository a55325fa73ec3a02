// Package main provides osgen - a synthetic OS user dataset generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osgen/osgen/internal/runner"
)

// Version information
const (
	Version   = "1.0.2"
	BuildDate = "2026-08-23"
)

func main() {
	duration := flag.Int("duration", 30, "Maximum run time in minutes")
	delay := flag.Duration("delay", 100*time.Millisecond, "Delay between rows (0 to disable)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Usage = printUsage

	flag.Parse()

	if *showVersion {
		fmt.Printf("OsGen v%s (%s)\n", Version, BuildDate)
		return
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	outputPath := flag.Arg(0)

	// Ctrl+C / SIGTERM cancel the loop; rows already flushed stay valid.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rows, err := runner.Run(ctx, runner.Config{
		OutputPath: outputPath,
		Duration:   time.Duration(*duration) * time.Minute,
		Delay:      *delay,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total rows generated: %d\n", rows)
	fmt.Printf("File saved to: %s\n", outputPath)
}

func printUsage() {
	fmt.Println(`OsGen - Synthetic OS User Dataset Generator

Usage:
    osgen [flags] <output.csv>

Appends fabricated OS user profile rows to the output CSV until the time
limit elapses or Ctrl+C is pressed. Re-running against an existing file
continues appending without rewriting the header.

Flags:`)
	flag.PrintDefaults()
}
