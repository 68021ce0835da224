package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"transcript-normalizer-service/internal/parser"
)

// newRootCommand builds the offline normalizer CLI: it reads a raw
// provider JSON file and writes the normalized transcript, without
// running the service.
func newRootCommand() *cobra.Command {
	var formatFlag string
	var outputFlag string
	var prettyFlag bool
	var verboseFlag bool

	cmd := &cobra.Command{
		Use:           "normalize --format <provider> <file.json>",
		Short:         "Normalize a raw STT provider payload into the unified transcript model",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parser.ParseFormat(formatFlag)
			if err != nil {
				return fmt.Errorf("%w (expected one of: %s)", err, formatList())
			}

			level := zerolog.WarnLevel
			if verboseFlag {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var data map[string]any
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("%s: not a JSON object: %w", args[0], err)
			}

			result, err := parser.New(logger).Parse(data, format)
			if err != nil {
				return fmt.Errorf("normalize %s: %w", args[0], err)
			}

			var out []byte
			if prettyFlag {
				out, err = json.MarshalIndent(result, "", "  ")
			} else {
				out, err = json.Marshal(result)
			}
			if err != nil {
				return err
			}
			out = append(out, '\n')

			if outputFlag == "" || outputFlag == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(outputFlag, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Source format: "+formatList())
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the output JSON")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log parse diagnostics")
	_ = cmd.MarkFlagRequired("format")

	return cmd
}

func formatList() string {
	names := make([]string, 0, len(parser.Formats))
	for _, f := range parser.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
