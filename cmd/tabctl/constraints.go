package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slabforge/tablecheck/internal/constraint"
	"github.com/slabforge/tablecheck/internal/domain"
)

// NewConstraintsCmd creates the constraints command.
func NewConstraintsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "constraints [file]",
		Short:        "Derive field bounds for a partial specification",
		Long:         "constraints reads a partially filled specification as JSON from the given file (or stdin) and reports the valid range for each unfilled field, given the fields already chosen.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConstraints(cmd, args, opts)
		},
	}
	return cmd
}

func runConstraints(cmd *cobra.Command, args []string, opts *rootOptions) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("reading specification: %w", err)
	}

	var partial domain.PartialSpecification
	if err := json.Unmarshal(data, &partial); err != nil {
		return fmt.Errorf("malformed specification: %w", err)
	}

	tables, err := opts.tables()
	if err != nil {
		return err
	}

	calc := constraint.New(tables)
	constraints := calc.FieldConstraintsIn(partial, opts.languageTag())

	if opts.jsonOutput {
		writeJSON(cmd.OutOrStdout(), constraints)
	} else {
		formatConstraintsHuman(cmd.OutOrStdout(), constraints)
	}
	return nil
}

// formatConstraintsHuman writes field constraints as human-readable text to w,
// in stable field order.
func formatConstraintsHuman(w io.Writer, constraints domain.FieldConstraints) {
	fields := make([]string, 0, len(constraints))
	for field := range constraints {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		c := constraints[field]
		fmt.Fprintf(w, "%-22s %g .. %g", field, c.Min, c.Max)
		if c.Recommended != nil {
			fmt.Fprintf(w, "  (recommended %g)", *c.Recommended)
		}
		if c.Reason != "" {
			fmt.Fprintf(w, "  [%s]", c.Reason)
		}
		fmt.Fprintln(w)
	}
}
