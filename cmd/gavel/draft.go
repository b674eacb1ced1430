package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavelhq/gavel-workbench/internal/workflow"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a legal document from drafting requirements",
	Long: `Draft runs the three-stage drafting workflow: requirements are submitted
to the drafting service, the generated document reference is exposed for
download, and any revision suggestions the validator returned can be
applied or dismissed by id.

With --from-summary the requirements are seeded once from a previously
saved judgment summary (the JSON emitted by "gavel summarize --json");
explicit --requirements text always wins over the seed.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().String("requirements", "", "drafting requirements text")
	draftCmd.Flags().String("requirements-file", "", "read the requirements from a file")
	draftCmd.Flags().String("doc-type", "Service Agreement", "document form to draft")
	draftCmd.Flags().String("jurisdiction", "General", "governing jurisdiction")
	draftCmd.Flags().String("from-summary", "", "seed requirements from a saved summary JSON file")
	draftCmd.Flags().StringArray("apply", nil, "apply a revision suggestion by id (repeatable)")
	draftCmd.Flags().Bool("apply-all", false, "apply every pending revision suggestion")
	draftCmd.Flags().StringArray("dismiss", nil, "dismiss a revision suggestion by id (repeatable)")
	draftCmd.Flags().Bool("json", false, "output the draft state as JSON")
	draftCmd.Flags().Bool("yaml", false, "output the draft state as YAML")

	rootCmd.AddCommand(draftCmd)
}

// draftView is the structured output shape for --json/--yaml.
type draftView struct {
	Stage   workflow.DraftStage        `json:"stage" yaml:"stage"`
	Status  string                     `json:"status,omitempty" yaml:"status,omitempty"`
	Content string                     `json:"content" yaml:"content"`
	File    *types.GeneratedFile       `json:"file,omitempty" yaml:"file,omitempty"`
	Pending []types.RevisionSuggestion `json:"pending_revisions" yaml:"pending_revisions"`
}

func runDraft(cmd *cobra.Command, args []string) error {
	reqText, _ := cmd.Flags().GetString("requirements")
	reqFile, _ := cmd.Flags().GetString("requirements-file")
	docType, _ := cmd.Flags().GetString("doc-type")
	jurisdiction, _ := cmd.Flags().GetString("jurisdiction")
	fromSummary, _ := cmd.Flags().GetString("from-summary")
	applyIDs, _ := cmd.Flags().GetStringArray("apply")
	applyAll, _ := cmd.Flags().GetBool("apply-all")
	dismissIDs, _ := cmd.Flags().GetStringArray("dismiss")

	if reqFile != "" {
		data, err := os.ReadFile(reqFile)
		if err != nil {
			return fmt.Errorf("reading requirements file: %w", err)
		}
		reqText = string(data)
	}

	wf := workflow.NewDraftWorkflow(docType, jurisdiction)

	if fromSummary != "" {
		data, err := os.ReadFile(fromSummary)
		if err != nil {
			return fmt.Errorf("reading summary file: %w", err)
		}
		var summary types.Summary
		if err := json.Unmarshal(data, &summary); err != nil {
			return fmt.Errorf("parsing summary file: %w", err)
		}
		wf.SeedFromSummary(&summary)
	}
	if reqText != "" {
		wf.SetRequirements(reqText)
	}

	gen, err := wf.BeginDrafting()
	if err != nil {
		return err
	}

	client := newGatewayClient()
	result, err := client.Draft(cmd.Context(), types.DraftRequest{
		Requirements: wf.Requirements(),
		DocType:      docType,
		Jurisdiction: jurisdiction,
		UserContext:  "User initiated draft via gavel CLI.",
	})
	if err != nil {
		wf.FailDraft(gen, err)
		return err
	}
	wf.CompleteDraft(gen, result)

	for _, id := range dismissIDs {
		if !wf.DismissRevision(id) {
			fmt.Fprintf(os.Stderr, "warning: no pending revision %q\n", id)
		}
	}
	if applyAll {
		for _, rev := range wf.Pending() {
			wf.ApplyRevision(rev.ID)
		}
	} else {
		for _, id := range applyIDs {
			if !wf.ApplyRevision(id) {
				fmt.Fprintf(os.Stderr, "warning: no pending revision %q\n", id)
			}
		}
	}

	view := draftView{
		Stage:   wf.Stage(),
		Status:  wf.StatusMessage(),
		Content: wf.Content(),
		File:    wf.File(),
		Pending: wf.Pending(),
	}
	if done, err := emitStructured(cmd, view); done {
		return err
	}
	renderDraft(os.Stdout, view)
	return nil
}
