package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	avl "github.com/cryptonstudio/crypton-avl/types/avl"
)

const (
	formatList  = "list"
	formatASCII = "ascii"
	formatDot   = "dot"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	keys     []int
	snapshot string
	format   string
	variant  string
	logLevel string
}

func rootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "avl-dump",
		Short:        "build a tree from keys or a snapshot and print it",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl)
			return run(log, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntSliceVar(&opts.keys, "keys", nil, "keys to insert in given order")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "JSON snapshot [key, left, right] to restore first, - for stdin")
	cmd.Flags().StringVar(&opts.format, "format", formatList, "output format: list, ascii or dot")
	cmd.Flags().StringVar(&opts.variant, "variant", avl.VariantSelfBalancing.String(), "tree variant: avl or plain")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level")
	return cmd
}

func run(log zerolog.Logger, in io.Reader, out io.Writer, opts options) error {
	variant, err := avl.ParseVariant(opts.variant)
	if err != nil {
		return err
	}
	tree := avl.NewOrderedTreeWithVariant[int](variant)

	if opts.snapshot != "" {
		snapshot, err := readSnapshot(in, opts.snapshot)
		if err != nil {
			return err
		}
		if err = tree.FromListRaw(snapshot); err != nil {
			return err
		}
		log.Debug().Str("snapshot", opts.snapshot).Int("size", tree.Size()).Msg("snapshot restored")
	}
	for _, key := range opts.keys {
		if _, err := tree.Insert(key); err != nil {
			return fmt.Errorf("insert %d: %w", key, err)
		}
	}
	if err := tree.Check(); err != nil {
		log.Error().Err(err).Msg("tree check failed")
		return err
	}
	log.Info().
		Str("variant", variant.String()).
		Str("size", humanize.Comma(int64(tree.Size()))).
		Int("height", tree.Height()).
		Msg("tree built")

	switch opts.format {
	case formatList:
		data, err := json.Marshal(tree.ToList())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case formatASCII:
		return tree.Fprint(out)
	case formatDot:
		return tree.RenderDotGraph(out)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func readSnapshot(in io.Reader, path string) (*avl.Triple[int], error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var snapshot *avl.Triple[int]
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snapshot, nil
}
