package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cisniff/internal/sniffs"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kinds       string `json:"kinds"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	registry := sniffs.Default()
	entries := make([]ruleEntry, 0, registry.Len())
	for _, name := range registry.Names() {
		rule, _ := registry.Get(name)
		entries = append(entries, ruleEntry{
			Name:        name,
			Description: rule.Description(),
			Kinds:       rule.Register().String(),
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Description, e.Kinds)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
