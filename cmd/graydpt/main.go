// graydpt is a command line front end for the KNX datapoint transcoder
// library. It resolves transcoder identifiers, lists the built-in catalogue,
// and converts between raw payload bytes and Go values.
//
// Conversion results go to stdout; logs go to stderr so that output can be
// piped or captured cleanly.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-dpt/dpt"
	"github.com/nerrad567/gray-logic-dpt/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-dpt/internal/infrastructure/logging"
)

// Build-time variables set via ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	flagConfig string
	flagOutput string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "graydpt: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := &cobra.Command{
		Use:           "graydpt",
		Short:         "KNX datapoint type transcoder",
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to configuration file")
	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format (text or json)")

	root.AddCommand(listCmd(), resolveCmd(), decodeCmd(), encodeCmd())

	return root.Execute()
}

// loadConfig resolves the effective configuration: file if --config was
// given, built-in defaults otherwise, with --output overriding either.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}
	if flagOutput != "" {
		cfg.Output.Format = flagOutput
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) *logging.Logger {
	return logging.New(cfg.Logging, version).With("component", "cli")
}

// ───────────────────────────────
// Subcommands
// ───────────────────────────────

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all built-in transcoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			transcoders := dpt.Default().Transcoders()
			if cfg.Output.Format == config.OutputJSON {
				entries := make([]map[string]any, 0, len(transcoders))
				for _, t := range transcoders {
					entries = append(entries, describeTranscoder(t))
				}
				return printJSON(cmd, entries)
			}
			for _, t := range transcoders {
				fmt.Fprintln(cmd.OutOrStdout(), formatTranscoder(t))
			}
			return nil
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <identifier>",
		Short: "Resolve an identifier to a transcoder",
		Long: `Resolve an identifier to a transcoder.

The identifier may be a value type alias ("temperature"), a DPT name
("DPT-9" or "9.001"), or a bare main number ("9").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			t, ok := dpt.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no transcoder matches %q", args[0])
			}
			if cfg.Output.Format == config.OutputJSON {
				return printJSON(cmd, describeTranscoder(t))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatTranscoder(t))
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <dpt> <payload>",
		Short: "Decode raw payload bytes to a value",
		Long: `Decode raw payload bytes to a value.

For byte-array transcoders the payload is hex ("0C1A"). For single-bit
transcoders it is "0" or "1".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogging(cfg)

			t, ok := dpt.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no transcoder matches %q", args[0])
			}
			payload, err := parsePayload(t, args[1])
			if err != nil {
				return err
			}
			value, err := t.Decode(payload)
			if err != nil {
				return err
			}
			logger.Debug("decoded payload", "dpt", t.ID().String(), "payload", payload.String())
			return printValue(cmd, cfg, t, value)
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <dpt> <value>",
		Short: "Encode a value to raw payload bytes",
		Long: `Encode a value to raw payload bytes.

The value is parsed as JSON where possible, so "21.5", "true" and
'{"hour": 13, "minute": 30}' all work. Anything that fails JSON parsing
is passed through as a plain string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogging(cfg)

			t, ok := dpt.Resolve(args[0])
			if !ok {
				return fmt.Errorf("no transcoder matches %q", args[0])
			}
			value := parseValue(args[1])
			payload, err := t.Encode(value)
			if err != nil {
				return err
			}
			logger.Debug("encoded value", "dpt", t.ID().String(), "payload", payload.String())

			if cfg.Output.Format == config.OutputJSON {
				return printJSON(cmd, map[string]any{
					"dpt":     t.ID().String(),
					"payload": formatPayload(payload),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPayload(payload))
			return nil
		},
	}
}

// ───────────────────────────────
// Helpers
// ───────────────────────────────

// parsePayload builds a payload matching the transcoder's shape from its
// command line representation.
func parsePayload(t dpt.Transcoder, s string) (dpt.Payload, error) {
	shape := t.Shape()
	if shape.Kind == dpt.KindBinary {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "0", "false":
			return dpt.NewDPTBinary(false), nil
		case "1", "true":
			return dpt.NewDPTBinary(true), nil
		default:
			return nil, fmt.Errorf("binary payload must be 0 or 1, got %q", s)
		}
	}
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload %q: %w", s, err)
	}
	if len(data) != shape.Length {
		return nil, fmt.Errorf("payload must be %d bytes, got %d", shape.Length, len(data))
	}
	return dpt.NewDPTArray(data...), nil
}

// parseValue interprets a command line argument as a JSON value, falling
// back to the raw string when it is not valid JSON.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// formatPayload renders a payload for output: hex digits for byte arrays,
// "0" or "1" for single bits.
func formatPayload(p dpt.Payload) string {
	switch v := p.(type) {
	case dpt.DPTArray:
		return strings.ToUpper(hex.EncodeToString(v.Bytes()))
	case dpt.DPTBinary:
		if v.Value {
			return "1"
		}
		return "0"
	default:
		return p.String()
	}
}

func formatTranscoder(t dpt.Transcoder) string {
	line := fmt.Sprintf("%-8s %-20s", t.ID().String(), t.ValueType())
	if unit := t.Unit(); unit != "" {
		line += " " + unit
	}
	return strings.TrimRight(line, " ")
}

func describeTranscoder(t dpt.Transcoder) map[string]any {
	entry := map[string]any{
		"dpt":        t.ID().String(),
		"value_type": t.ValueType(),
	}
	if unit := t.Unit(); unit != "" {
		entry["unit"] = unit
	}
	if n, ok := t.(dpt.Numeric); ok {
		min, max, resolution := n.Range()
		entry["min"] = min
		entry["max"] = max
		entry["resolution"] = resolution
	}
	return entry
}

// printValue renders a decoded value, expanding complex values into their
// map form for JSON output.
func printValue(cmd *cobra.Command, cfg *config.Config, t dpt.Transcoder, value any) error {
	if cfg.Output.Format == config.OutputJSON {
		out := value
		if cv, ok := value.(dpt.ComplexValue); ok {
			out = cv.AsMap()
		}
		return printJSON(cmd, map[string]any{
			"dpt":   t.ID().String(),
			"value": out,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatValue(value))
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
