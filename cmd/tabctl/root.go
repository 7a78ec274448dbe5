package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slabforge/tablecheck/internal/i18n"
	"github.com/slabforge/tablecheck/internal/rules"
	"golang.org/x/text/language"
)

const (
	exitOK         = 0
	exitError      = 1
	exitViolations = 2
)

// rootOptions holds the persistent flag state shared by all subcommands.
type rootOptions struct {
	rulesPath  string
	jsonOutput bool
	lang       string
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "tabctl",
		Short:        "Validate stone table specifications against production rules",
		Long:         "tabctl checks stone-top table specifications for structural and production feasibility, suggests repairs for invalid ones, and derives bounds for partially filled specifications.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", "Path to a YAML rule override file (defaults to built-in tables)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "Message language (en, de)")

	cmd.AddCommand(NewValidateCmd(opts))
	cmd.AddCommand(NewConstraintsCmd(opts))
	cmd.AddCommand(NewPriceCmd(opts))

	return cmd
}

// tables loads the rule tables honoring the --rules flag.
func (o *rootOptions) tables() (*rules.Tables, error) {
	return rules.Load(o.rulesPath)
}

// languageTag resolves the --lang flag to a supported language tag.
func (o *rootOptions) languageTag() language.Tag {
	return i18n.Match(o.lang)
}

// ViolationsDetectedError is returned when validation finds violations.
type ViolationsDetectedError struct {
	Violations int
	Warnings   int
}

// Error implements the error interface.
func (e *ViolationsDetectedError) Error() string {
	return fmt.Sprintf("validation found %d violations, %d warnings", e.Violations, e.Warnings)
}

// ExitCode returns the exit code for violations (always 2).
func (e *ViolationsDetectedError) ExitCode() int {
	return exitViolations
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return exitOK
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return exitError
}

// readInput reads a JSON document from the file argument, or from stdin
// when the argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}
