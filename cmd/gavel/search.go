package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gavelhq/gavel-workbench/internal/workflow"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [facts...]",
	Short: "Search for precedents matching a set of case facts",
	Long: `Search submits a free-form description of the case facts to the precedent
search service and renders the legal memo and matching precedents it
returns, ordered by match score.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("facts-file", "", "read the case facts from a file")
	searchCmd.Flags().Bool("json", false, "output the analysis as JSON")
	searchCmd.Flags().Bool("yaml", false, "output the analysis as YAML")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	factsFile, _ := cmd.Flags().GetString("facts-file")

	facts := strings.Join(args, " ")
	if factsFile != "" {
		data, err := os.ReadFile(factsFile)
		if err != nil {
			return fmt.Errorf("reading facts file: %w", err)
		}
		facts = string(data)
	}
	if strings.TrimSpace(facts) == "" {
		return fmt.Errorf("provide the case facts as arguments or via --facts-file")
	}

	client := newGatewayClient()
	m := workflow.NewMachine[types.PrecedentAnalysis]()
	analysis, err := m.Submit(cmd.Context(), "Scanning precedents and drafting memo...", func(ctx context.Context) (*types.PrecedentAnalysis, error) {
		return client.SearchPrecedents(ctx, facts)
	})
	if err != nil {
		return err
	}

	if done, err := emitStructured(cmd, analysis); done {
		return err
	}
	renderAnalysis(os.Stdout, analysis)
	return nil
}
