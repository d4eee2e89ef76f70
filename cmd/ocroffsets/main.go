// ocroffsets is a command-line tool for converting OCR documents into word/byte-offset tokens.
//
// It reads a MiniOCR, hOCR or ALTO document, detects its format and writes a
// whitespace-separated sequence of <word><delimiter><byte_offset> tokens, where the
// offset is the position in bytes of the word's markup in the original document.
// The output is meant to be fed to a full-text indexer that stores the offsets as payloads.
//
// Usage:
//
//	ocroffsets [flags] [OCR_DOCUMENT]
//
// The document is read from standard input when OCR_DOCUMENT is missing or "-".
//
// Flags:
//
//	-d, --delimiter string   The delimiter between word and offset (default "⚑")
//	-o, --output string      Path to write the converted output to (default stdout)
//	    --config string      Path to a YAML configuration file
//	    --start-page string  Identifier of the first page to convert
//	    --end-page string    Identifier of the page to stop at (exclusive)
//	    --encoding string    Character encoding overriding the document's declaration
//	-v, --verbose            Log debug information to stderr
//
// Configuration:
//
// Every option except the input and output can also be set in a YAML file.
// Flags given on the command line take precedence:
//
//	delimiter: "⚑"
//	start_page: "page_118"
//	end_page: "page_120"
//	encoding: "iso-8859-1"
//
// Examples:
//
//	ocroffsets document.hocr -o document.txt
//	cat document.xml | ocroffsets -d '|' > document.txt
//	ocroffsets --config offsets.yml --start-page page_2 document.hocr
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gardar/ocroffsets/pkg/offsets"
)

const version = "0.1.0"

type cliOptions struct {
	delimiter  string
	output     string
	configPath string
	startPage  string
	endPage    string
	encoding   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	cmd := &cobra.Command{
		Use:           "ocroffsets [flags] [OCR_DOCUMENT]",
		Short:         "Byte offset converter for hOCR/ALTO/MiniOCR",
		Long:          `Converts OCR documents into a whitespace-separated sequence of <word><delimiter><byte_offset> tokens.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.delimiter, "delimiter", "d", offsets.DefaultDelimiter, "the delimiter between word and offset")
	flags.StringVarP(&opts.output, "output", "o", "", "path to write the converted output to, defaults to stdout")
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.startPage, "start-page", "", "identifier of the first page to convert")
	flags.StringVar(&opts.endPage, "end-page", "", "identifier of the page to stop at (exclusive)")
	flags.StringVar(&opts.encoding, "encoding", "", "character encoding overriding the document's declaration")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	return cmd
}

// resolveConfig merges the config file with the flags that were set explicitly
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (offsets.Config, error) {
	cfg := offsets.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = loadConfig(opts.configPath); err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if flags.Changed("start-page") {
		cfg.StartPage = opts.startPage
	}
	if flags.Changed("end-page") {
		cfg.EndPage = opts.endPage
	}
	if flags.Changed("encoding") {
		cfg.Encoding = opts.encoding
	}
	return cfg, nil
}

// readInput reads the whole document from path, or from stdin for "" and "-"
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR document: %w", err)
	}
	return data, nil
}

func run(cmd *cobra.Command, opts *cliOptions, args []string) (err error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}
	doc, err := readInput(cmd.InOrStdin(), inputPath)
	if err != nil {
		return err
	}

	// Resolve everything before touching the output so bad input leaves no empty file behind
	dialect, err := offsets.Detect(doc)
	if err != nil {
		return err
	}
	encoding, err := offsets.ResolveEncoding(doc, cfg)
	if err != nil {
		return err
	}
	logger.Debug("detected OCR format",
		"dialect", dialect.String(),
		"bytes", len(doc),
		"start_page", cfg.StartPage,
		"end_page", cfg.EndPage,
		"encoding", encoding,
	)

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		out = f
	}

	count, err := offsets.WriteTokens(out, offsets.Extract(doc, dialect, cfg), cfg.Delimiter)
	if err != nil {
		logger.Debug("conversion aborted", "tokens_written", count)
		return err
	}
	logger.Debug("converted OCR document", "dialect", dialect.String(), "tokens", count)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}
