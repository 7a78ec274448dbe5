package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/validate"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate [file]",
		Short:        "Validate a complete table specification",
		Long:         "validate reads a specification as JSON from the given file (or stdin) and reports every rule violation, plus a repaired specification when the input is invalid.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading specification: %w", err)
	}

	var spec domain.Specification
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("malformed specification: %w", err)
	}

	tables, err := opts.tables()
	if err != nil {
		return err
	}

	engine := validate.New(tables, slog.New(slog.DiscardHandler))
	result := engine.ValidateIn(spec, opts.languageTag())

	if opts.jsonOutput {
		writeJSON(cmd.OutOrStdout(), result)
	} else {
		formatResultHuman(cmd.OutOrStdout(), result)
	}

	if !result.Valid {
		return &ViolationsDetectedError{
			Violations: len(result.Violations),
			Warnings:   len(result.Warnings),
		}
	}
	return nil
}

// formatResultHuman writes a validation result as human-readable text to w.
func formatResultHuman(w io.Writer, result domain.ValidationResult) {
	if result.Valid && len(result.Warnings) == 0 {
		fmt.Fprintln(w, "Specification is valid.")
		return
	}
	for _, f := range result.Violations {
		fmt.Fprintf(w, "ERROR   %s (%s): %s\n", f.Rule, f.Field, f.Message)
	}
	for _, f := range result.Warnings {
		fmt.Fprintf(w, "WARNING %s (%s): %s\n", f.Rule, f.Field, f.Message)
	}
	fmt.Fprintf(w, "\n%d violation(s), %d warning(s)\n", len(result.Violations), len(result.Warnings))
	if result.Suggested != nil {
		fmt.Fprintln(w, "\nSuggested repair:")
		writeJSON(w, result.Suggested)
	}
}
