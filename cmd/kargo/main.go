// kargo parses pasted shipment lists and prints cargo labels.
//
// Usage:
//
//	kargo parse [file]              print parsed records as JSON or YAML
//	kargo labels [file] -o out/     render label PDFs (or HTML with --html)
//	kargo serve                     run the HTTP service
//	kargo mcp                       serve the parse_shipments tool over stdio
//
// Without a file, input is read from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/config"
	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/sheet"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "kargo",
		Short:         "Turn pasted shipment lists into printable cargo labels",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newParseCmd(opts),
		newLabelsCmd(opts),
		newServeCmd(opts),
		newMCPCmd(opts),
	)
	return cmd
}

// load resolves the configuration and builds a logger writing to stderr.
// Flags win over the file and the environment.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// readInput returns the text of the named file, or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return sheet.Read("stdin.txt", bytes.NewReader(data))
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", err
	}
	defer f.Close()
	return sheet.Read(args[0], f)
}
