package main

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// readFileInput loads a document from disk, guessing the content type
// from the extension.
func readFileInput(path string) (*payload.FileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return &payload.FileInput{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(filepath.Ext(path)),
		Data:     data,
	}, nil
}

// emitStructured writes v as JSON or YAML to stdout when the respective
// flag is set. The first return reports whether output was handled.
func emitStructured(cmd *cobra.Command, v any) (bool, error) {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	}
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return true, enc.Encode(v)
	}
	return false, nil
}

func renderSummary(w io.Writer, s *types.Summary) {
	fmt.Fprintf(w, "%s\n", orNotSpecified(s.CaseName, "Judgment Summary"))
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "Court:     %s\n", orNotSpecified(s.CourtName, ""))
	fmt.Fprintf(w, "Date:      %s\n", orNotSpecified(s.DateOfJudgment, ""))
	fmt.Fprintf(w, "Citation:  %s\n", orNotSpecified(s.NeutralCitation, ""))
	fmt.Fprintf(w, "Bench:     %s\n", joinOrNone(s.Bench))
	fmt.Fprintf(w, "Confidence: %.0f%%\n", s.ConfidenceScore*100)

	section(w, "Facts of the Case", s.Facts)
	section(w, "Legal Issues", s.LegalIssues)
	section(w, "Statutes Cited", s.StatutesCited)
	section(w, "Precedents Cited", s.PrecedentsCited)

	fmt.Fprintf(w, "\nRatio Decidendi:\n  %s\n", orNotSpecified(s.RatioDecidendi, ""))
	fmt.Fprintf(w, "\nFinal Order:\n  %s\n", orNotSpecified(s.FinalOrder, ""))
	if s.CritiqueFeedback != "" {
		fmt.Fprintf(w, "\nCritique & Feedback:\n  %s\n", s.CritiqueFeedback)
	}
}

func renderReport(w io.Writer, name string, r *types.VerificationReport) {
	fmt.Fprintf(w, "Authenticity score: %.0f%%\n", r.AuthenticityScore)
	fmt.Fprintf(w, "Scanned %s. Found %d anomalies.\n", name, len(r.Anomalies))
	if len(r.Anomalies) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s  %-40s  %s\n", "Severity", "Finding", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, a := range r.Anomalies {
		fmt.Fprintf(w, "%-8s  %-40s  %s\n", a.Severity, truncate(a.Title, 40), a.Description)
	}
}

func renderAnalysis(w io.Writer, a *types.PrecedentAnalysis) {
	if a.LegalMemo != "" {
		fmt.Fprintln(w, "Legal Analysis Memo")
		fmt.Fprintln(w, strings.Repeat("=", 72))
		fmt.Fprintln(w, a.LegalMemo)
		fmt.Fprintln(w)
	}

	section(w, "Legal Issues", a.LegalIssues)

	if len(a.Precedents) == 0 {
		fmt.Fprintln(w, "\nNo matching precedents found.")
		return
	}
	fmt.Fprintf(w, "\n%-4s  %-44s  %-24s  %-5s  %s\n", "Rank", "Title", "Citation", "Match", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, p := range a.Precedents {
		fmt.Fprintf(w, "%-4d  %-44s  %-24s  %-5.0f  %s\n",
			i+1, truncate(p.Title, 44), truncate(p.Citation, 24), p.MatchScore, strings.Join(p.Tags, ","))
	}
	fmt.Fprintf(w, "\n%d precedents recovered\n", len(a.Precedents))
}

func renderDraft(w io.Writer, v draftView) {
	fmt.Fprintf(w, "Stage: %s\n", v.Stage)
	if v.Status != "" {
		fmt.Fprintln(w, v.Status)
	}
	if v.File != nil {
		fmt.Fprintf(w, "Document: %s (%s)\n", v.File.Name, v.File.URL)
	}
	if v.Content != "" {
		fmt.Fprintf(w, "\n%s\n", v.Content)
	}
	if len(v.Pending) > 0 {
		fmt.Fprintf(w, "\nPending revision suggestions:\n")
		for _, rev := range v.Pending {
			fmt.Fprintf(w, "  [%s] %q -> %q\n", rev.ID, truncate(rev.OriginalText, 40), truncate(rev.SuggestedText, 40))
			if rev.Reasoning != "" {
				fmt.Fprintf(w, "        %s\n", rev.Reasoning)
			}
		}
	}
}

func section(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func orNotSpecified(s, fallback string) string {
	if s != "" {
		return s
	}
	if fallback != "" {
		return fallback
	}
	return "Not specified"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, "; ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
