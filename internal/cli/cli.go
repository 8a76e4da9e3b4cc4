// Package cli implements the amplitude-event command: an offline tool that
// builds Amplitude events from YAML or JSON attribute files and prints,
// validates or compares their payloads.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	amplitude "github.com/valeronm/amplitude-api"
	"github.com/valeronm/amplitude-api/adapters"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotEqual = 2
)

// ErrNotEqual is returned by the compare command when the events differ.
var ErrNotEqual = errors.New("events are not equal")

type options struct {
	configPath string
	strict     bool
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "amplitude-event",
		Short: "Build and inspect Amplitude event payloads",
		Long: `Build Amplitude events from YAML or JSON attribute files.
Nothing is sent; payloads are printed for inspection or piping into a transport.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config (defaults to $"+amplitude.ConfigEnvVar+")")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Reject unknown attribute keys")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(
		newRenderCmd(opts),
		newValidateCmd(opts),
		newCompareCmd(opts),
		newVersionCmd(version),
	)
	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// newBuilder loads the config, applies adjust to it and returns a builder
// logging to the command's stderr.
func newBuilder(cmd *cobra.Command, opts *options, adjust ...func(*amplitude.Config)) (*amplitude.Builder, error) {
	cfg, err := amplitude.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	for _, fn := range adjust {
		fn(&cfg)
	}

	level, err := adapters.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		level = adapters.LogLevelDebug
	}
	logger := adapters.NewPrintLoggerAdapterWriter(level, cmd.ErrOrStderr())
	return amplitude.NewBuilder(cfg, logger), nil
}

// buildFromFile reads an attribute bag from path ("-" for stdin) and builds
// it into an Event.
func buildFromFile(cmd *cobra.Command, opts *options, b *amplitude.Builder, path string) (*amplitude.Event, error) {
	bag, err := readAttributes(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}

	if !opts.strict {
		return b.BuildMap(bag)
	}
	attrs, err := amplitude.DecodeAttributesStrict(bag)
	if err != nil {
		return nil, err
	}
	return b.Build(attrs)
}

func readAttributes(stdin io.Reader, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// JSON documents are valid YAML.
	bag := map[string]any{}
	if err := yaml.Unmarshal(data, &bag); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return bag, nil
}
