package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/format"
	"github.com/0xalexb/hjarta-config/config/source"
	"github.com/0xalexb/hjarta-config/config/value"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errUnknownOutput = errors.New("unknown output format")

type globalFlags struct {
	logLevel string
	fs       afero.Fs
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithFs(afero.NewOsFs())
}

func newRootCmdWithFs(fsys afero.Fs) *cobra.Command {
	flags := &globalFlags{fs: fsys}

	cmd := &cobra.Command{
		Use:           "hjconfig",
		Short:         "Inspect layered configuration files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level for diagnostics written to stderr (debug, info, warn, error)")

	cmd.AddCommand(
		newCollectCmd(flags),
		newCandidatesCmd(flags),
		newFormatsCmd(),
		newVersionCmd(),
	)

	return cmd
}

func (g *globalFlags) logger(w io.Writer) *slog.Logger {
	if g.logLevel == "" {
		return logging.Discard()
	}

	return logging.NewLogger(logging.LoggerConfig{Level: g.logLevel, Format: logging.FormatText}, w)
}

func parseFormatFlag(name string) (format.Format, error) {
	if name == "" {
		return format.Unknown, nil
	}

	return format.ParseFormat(name)
}

func newCollectCmd(flags *globalFlags) *cobra.Command {
	var (
		formatName string
		namespace  string
		optional   bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "collect NAME",
		Short: "Collect a configuration file and print it",
		Long: "Collect resolves NAME (optionally adding a known extension), decodes it and prints the mapping.\n" +
			"Without --format the format is discovered from the file found on disk.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormatFlag(formatName)
			if err != nil {
				return err
			}

			logger := flags.logger(cmd.ErrOrStderr())

			m, err := config.NewFile(args[0], f, source.WithFs(flags.fs), source.WithLogger(logger)).
				Required(!optional).
				Namespace(namespace).
				Logger(logger).
				Collect()
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), m, output)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "force the file format (toml, json, yaml, hcl, ini)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "nest the document under this key")
	cmd.Flags().BoolVar(&optional, "optional", false, "print an empty mapping when the file does not exist")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format (json, yaml)")

	return cmd
}

func render(w io.Writer, m value.Map, output string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(output) {
	case "json":
		data, err = json.MarshalIndent(m.Interface(), "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml", "yml":
		data, err = yaml.Marshal(m.Interface())
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}

	if err != nil {
		return fmt.Errorf("rendering %s: %w", output, err)
	}

	_, err = w.Write(data)

	return err
}

func newCandidatesCmd(flags *globalFlags) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "candidates NAME",
		Short: "List the paths tried when resolving NAME, in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormatFlag(formatName)
			if err != nil {
				return err
			}

			resolver := source.NewFile(args[0], source.WithFs(flags.fs), source.WithLogger(flags.logger(cmd.ErrOrStderr())))

			for _, c := range resolver.Candidates(f) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.URI, c.Format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "restrict candidates to one format")

	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats in discovery order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, f := range format.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f, strings.Join(f.Extensions(), ","))
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hjconfig %s (compiled %s)\n", hjarta.Version, hjarta.CompiledAt)
		},
	}
}
