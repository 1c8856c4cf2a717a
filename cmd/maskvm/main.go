// maskvm parses a bitmask initialization program and sums the memory
// it leaves behind under two masking semantics: value masking and
// address floating.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"maskvm/internal/command"
	"maskvm/internal/diag"
	"maskvm/internal/sim"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "maskvm",
		Short:         "Bitmask memory initialization simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newRunCmd(), newCheckCmd(), newDumpCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Run both simulation passes and print their sums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], part, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&part, "part", "both", "which pass to run (1|2|both)")
	return cmd
}

func runProgram(path, part string, out io.Writer) error {
	program, err := command.Load(path)
	if err != nil {
		return err
	}
	switch part {
	case "both":
		fmt.Fprintf(out, "Part 1 = %d\n", sim.SumValueMasked(program))
		fmt.Fprintf(out, "Part 2 = %d\n", sim.SumAddressFloated(program))
	case "1":
		fmt.Fprintf(out, "Part 1 = %d\n", sim.SumValueMasked(program))
	case "2":
		fmt.Fprintf(out, "Part 2 = %d\n", sim.SumAddressFloated(program))
	default:
		return fmt.Errorf("unknown part: %s (want 1, 2 or both)", part)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var diagFormat string
	cmd := &cobra.Command{
		Use:   "check <input-file>",
		Short: "Validate an input file, reporting every malformed line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkProgram(args[0], diagFormat, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&diagFormat, "diag-format", diag.FormatText, "diagnostic output format (text|json)")
	return cmd
}

func checkProgram(path, diagFormat string, errOut io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	reporter := diag.NewReporter(errOut, diagFormat)
	if err := command.Check(f, reporter); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func newDumpCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump <input-file>",
		Short: "Parse an input file and re-render it canonically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpProgram(args[0], output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (stdout when omitted)")
	return cmd
}

func dumpProgram(path, output string, stdout io.Writer) error {
	program, err := command.Load(path)
	if err != nil {
		return err
	}
	return withOutputWriter(output, stdout, func(w io.Writer) error {
		command.Dump(program, w)
		return nil
	})
}

func withOutputWriter(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	return err
}
