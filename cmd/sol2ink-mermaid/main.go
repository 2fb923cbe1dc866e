// Command sol2ink-mermaid renders a contract's storage/function call
// graph as a Mermaid diagram. A thin companion to sol2ink itself, built
// with cobra the way demo/cmd/main.go is, since this is a one-shot
// reporting tool rather than the batch driver's own CLI surface.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxhq/sol2ink/internal/emit"
	"github.com/oxhq/sol2ink/internal/resolver"
	"github.com/oxhq/sol2ink/internal/solidity"
)

var red = color.New(color.FgRed).SprintFunc()

func main() {
	var outFile string

	rootCmd := &cobra.Command{
		Use:   "sol2ink-mermaid <file.sol>",
		Short: "Render a Solidity contract's storage/function graph as Mermaid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			unit, err := solidity.Parse(path, source)
			if err != nil {
				return err
			}

			out, err := resolver.Resolve(path, unit)
			if err != nil {
				return err
			}

			diagram := emit.Mermaid(out.Contracts)
			if outFile == "" {
				fmt.Print(diagram)
				return nil
			}
			return os.WriteFile(outFile, []byte(diagram), 0o644)
		},
	}

	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the diagram to a file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("sol2ink-mermaid:"), err)
		os.Exit(1)
	}
}
