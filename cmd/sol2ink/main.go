// Command sol2ink translates Solidity sources into ink! smart contract
// Rust modules. Flag parsing follows cmd/morfx/main.go's raw pflag
// style; the colorized summary line borrows demo/cmd/main.go's palette.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/oxhq/sol2ink/internal/batch"
	"github.com/oxhq/sol2ink/internal/config"
	"github.com/oxhq/sol2ink/internal/diagnostics"
	"github.com/oxhq/sol2ink/internal/manifest"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	red  = color.New(color.FgRed).SprintFunc()
)

func main() {
	cfg, args, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("sol2ink:"), err)
		os.Exit(2)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: sol2ink [flags] <file-or-dir>...")
		os.Exit(2)
	}

	reporter := diagnostics.New(cfg.Verbose)
	os.Exit(run(cfg, args, reporter))
}

func run(cfg *config.Config, roots []string, reporter *diagnostics.Reporter) int {
	var ledger *manifest.Ledger
	if cfg.ManifestDSN != "" {
		db, err := manifest.Connect(cfg.ManifestDSN, cfg.Verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("sol2ink:"), err)
			return 2
		}
		ledger = manifest.NewLedger(db)
	}

	ctx := context.Background()
	code := 0
	seen := 0

	for _, root := range roots {
		reporter.Section(fmt.Sprintf("translating %s", root))
		sum, err := batch.Run(ctx, batch.Options{
			Root:     root,
			OutDir:   cfg.OutDir,
			DryRun:   cfg.DryRun,
			Reporter: reporter,
			Ledger:   ledger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("sol2ink:"), err)
			return 2
		}
		seen += sum.FilesSeen
	}

	fmt.Println(bold("done"))
	return reporter.Summary(seen)
}
