package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/lexiplay/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuditCmd(a *App) *cobra.Command {
	var strict, asJSON bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the curriculum's structural rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.auditUseCase().Audit()

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAudit(report))
			}

			if strict && !report.Valid {
				return fmt.Errorf("curriculum audit found %d issue(s)", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any check fails")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
