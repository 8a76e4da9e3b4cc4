package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	amplitude "github.com/valeronm/amplitude-api"
)

func newRenderCmd(opts *options) *cobra.Command {
	var flagPretty bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the JSON payload of an event",
		Long: `Build an event from a YAML or JSON attribute file and print its payload.
Reads stdin when the file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder(cmd, opts)
			if err != nil {
				return err
			}
			event, err := buildFromFile(cmd, opts, b, argOrStdin(args, 0))
			if err != nil {
				return err
			}

			out, err := event.ToMap().MarshalJSON()
			if err != nil {
				return fmt.Errorf("encoding payload: %w", err)
			}
			if flagPretty {
				out = pretty.Pretty(out)
			} else {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that an attribute file builds a valid event",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder(cmd, opts)
			if err != nil {
				return err
			}
			if _, err := buildFromFile(cmd, opts, b, argOrStdin(args, 0)); err != nil {
				return fmt.Errorf("invalid event: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file> <file>",
		Short: "Report whether two attribute files build equal events",
		Long: `Build both events and compare their payloads.
Generated insert ids and time stamping from the config are disabled so that
only the files' own attributes are compared.
Exits 0 when equal and 2 when they differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBuilder(cmd, opts, withoutGeneratedValues)
			if err != nil {
				return err
			}
			left, err := buildFromFile(cmd, opts, b, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			right, err := buildFromFile(cmd, opts, b, args[1])
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			if !left.Equal(right) {
				fmt.Fprintln(cmd.OutOrStdout(), "not equal")
				return ErrNotEqual
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}
}

func withoutGeneratedValues(cfg *amplitude.Config) {
	cfg.GenerateInsertID = false
	cfg.StampTime = false
}

func argOrStdin(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}
