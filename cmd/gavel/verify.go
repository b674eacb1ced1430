package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/internal/workflow"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run a forensic authenticity scan on a document",
	Long: `Verify uploads a document (PDF or image) to the forensic verification
service and renders its authenticity score together with any detected
anomalies, ordered by severity.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("file", "", "document to verify (PDF or image)")
	verifyCmd.Flags().Bool("json", false, "output the report as JSON")
	verifyCmd.Flags().Bool("yaml", false, "output the report as YAML")
	verifyCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")

	file, err := readFileInput(filePath)
	if err != nil {
		return err
	}
	p, err := payload.Resolve(payload.Input{File: file}, nil)
	if err != nil {
		return err
	}

	client := newGatewayClient()
	m := workflow.NewMachine[types.VerificationReport]()
	report, err := m.Submit(cmd.Context(), "Performing forensic scan...", func(ctx context.Context) (*types.VerificationReport, error) {
		return client.Verify(ctx, p)
	})
	if err != nil {
		return err
	}

	if done, err := emitStructured(cmd, report); done {
		return err
	}
	renderReport(os.Stdout, p.Name(), report)
	return nil
}
