// Command contentdump prints the content objects of a PDF content stream.
//
// Usage:
//
//	contentdump [flags] [file]
//
// The content stream is read from file, or from standard input when no file
// is given. Encoded streams are decoded first with --filter, which may be
// repeated and accepts full or abbreviated filter names:
//
//	contentdump --filter FlateDecode page1.bin
//	contentdump --rewrite < content.txt
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/pdfcontent/contentstream"
	"github.com/tsawler/pdfcontent/core"
)

type config struct {
	filters []string
	maxOps  int
	debug   bool
	rewrite bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:          "contentdump [file]",
		Short:        "Print the content objects of a PDF content stream",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&cfg.filters, "filter", nil, "decode filter to apply before parsing (repeatable)")
	flags.IntVar(&cfg.maxOps, "max-ops", 0, "abort after this many operations (0 = unlimited)")
	flags.BoolVar(&cfg.debug, "debug", false, "log grouping decisions to stderr")
	flags.BoolVar(&cfg.rewrite, "rewrite", false, "print the re-serialized content stream instead of the outline")

	return cmd
}

func run(cfg config, in io.Reader, out, errOut io.Writer) error {
	level := zerolog.WarnLevel
	if cfg.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	stream := &core.Stream{Dict: core.Dict{}, Data: data}
	if len(cfg.filters) > 0 {
		names := make(core.Array, len(cfg.filters))
		for i, f := range cfg.filters {
			names[i] = core.Name(f)
		}
		stream.Dict.Set("Filter", names)
	}

	objs, err := contentstream.ParseStream(stream,
		contentstream.WithLogger(logger),
		contentstream.WithMaxOperations(cfg.maxOps),
	)
	if err != nil {
		logger.Error().Err(err).Msg("parse failed")
		return err
	}
	logger.Debug().Int("objects", len(objs)).Int("bytes", len(data)).Msg("parsed content stream")

	if cfg.rewrite {
		return contentstream.Write(out, objs)
	}
	return contentstream.Dump(out, objs)
}
