package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/record"
	"github.com/allanrobert0203/tp/internal/core/commands"
	"github.com/allanrobert0203/tp/internal/core/domain"
)

var (
	listJSON  bool
	listStage string
	listTag   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print candidates",
	Long: `Print every candidate in the candidate book, optionally only those at a
stage or carrying a tag. The numbers are the indexes commands accept after
a plain "list".`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output candidates as JSON")
	listCmd.Flags().StringVar(&listStage, "stage", "", "only candidates at this stage")
	listCmd.Flags().StringVar(&listTag, "tag", "", "only candidates carrying this tag")
	rootCmd.AddCommand(listCmd)
}

type numbered struct {
	index int
	c     domain.Candidate
}

func runList(cmd *cobra.Command, _ []string) error {
	preds, err := listFilters()
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(cmd, a)

	var selected []numbered
	for i, c := range a.Logic.Findr().Candidates() {
		if matchesAll(c, preds) {
			selected = append(selected, numbered{index: i + 1, c: c})
		}
	}

	if listJSON {
		return outputListJSON(cmd, selected)
	}
	return outputListTable(cmd, selected)
}

func listFilters() ([]domain.Predicate, error) {
	var preds []domain.Predicate
	if listStage != "" {
		stage, err := domain.ParseStage(listStage)
		if err != nil {
			return nil, fmt.Errorf("--stage: %w", err)
		}
		preds = append(preds, domain.AtStage{Stage: stage})
	}
	if listTag != "" {
		tag, err := domain.NewTag(listTag)
		if err != nil {
			return nil, fmt.Errorf("--tag: %w", err)
		}
		preds = append(preds, domain.HasTag{Tag: tag})
	}
	return preds, nil
}

func matchesAll(c domain.Candidate, preds []domain.Predicate) bool {
	for _, p := range preds {
		if !p.Test(c) {
			return false
		}
	}
	return true
}

func outputListJSON(cmd *cobra.Command, selected []numbered) error {
	out := make([]record.Candidate, 0, len(selected))
	for _, n := range selected {
		out = append(out, record.FromCandidate(n.c))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputListTable(cmd *cobra.Command, selected []numbered) error {
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No candidates found.")
		return nil
	}
	for _, n := range selected {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", n.index, commands.Format(n.c))
	}
	return nil
}
