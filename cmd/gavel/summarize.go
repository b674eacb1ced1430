package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/internal/workflow"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a judgment into a structured dashboard",
	Long: `Summarize submits a judgment (PDF, image, or pasted text) to the
summarization service and renders the case metadata, facts, legal issues,
citations, ratio decidendi, and final order it extracts. When both a file
and text are given the file takes precedence after confirmation.`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().String("file", "", "judgment document to upload (PDF or image)")
	summarizeCmd.Flags().String("text", "", "judgment text to submit instead of a file")
	summarizeCmd.Flags().Bool("yes", false, "assume yes on the file-over-text confirmation")
	summarizeCmd.Flags().Bool("json", false, "output the summary as JSON")
	summarizeCmd.Flags().Bool("yaml", false, "output the summary as YAML")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	text, _ := cmd.Flags().GetString("text")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	in := payload.Input{Text: text}
	if filePath != "" {
		file, err := readFileInput(filePath)
		if err != nil {
			return err
		}
		in.File = file
	}

	confirm := payload.ConfirmFunc(promptConfirm)
	if assumeYes {
		confirm = func(string) bool { return true }
	}

	p, err := payload.Resolve(in, confirm)
	if err != nil {
		return err
	}

	client := newGatewayClient()
	m := workflow.NewMachine[types.Summary]()
	summary, err := m.Submit(cmd.Context(), "Analyzing judgment...", func(ctx context.Context) (*types.Summary, error) {
		return client.Summarize(ctx, p)
	})
	if err != nil {
		return err
	}

	if done, err := emitStructured(cmd, summary); done {
		return err
	}
	renderSummary(os.Stdout, summary)
	return nil
}
