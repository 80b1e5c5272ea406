package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/metrics"
	avl "github.com/cryptonstudio/crypton-avl/types/avl"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		count       int
		variant     string
		seed        uint64
		deleteRatio float64
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:          "rps",
		Short:        "measure insert, search and delete throughput of the tree",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := avl.ParseVariant(variant)
			if err != nil {
				return err
			}
			if deleteRatio < 0 || deleteRatio > 1 {
				return fmt.Errorf("delete ratio %v is out of [0, 1]", deleteRatio)
			}
			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			return run(log, count, v, seed, deleteRatio)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of random keys to insert")
	cmd.Flags().StringVar(&variant, "variant", avl.VariantSelfBalancing.String(), "tree variant: avl or plain")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the key generator")
	cmd.Flags().Float64Var(&deleteRatio, "delete-ratio", 0.5, "share of inserted keys to delete")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func run(log zerolog.Logger, count int, variant avl.Variant, seed uint64, deleteRatio float64) error {
	log.Info().Msg("prepare input")
	keys := generateKeys(count, seed)

	reg := prometheus.NewRegistry()
	handler := NewStats(metrics.NewCollector(reg, prometheus.Labels{"variant": variant.String()}))
	tree := avl.NewTreeWithVariant(func(a, b uint128.Uint128) int { return a.Cmp(b) }, variant)
	tree.SetHandler(handler)

	log.Info().Str("variant", variant.String()).Msg("start execution")

	elapsed := measure(func() {
		for _, key := range keys {
			if _, err := tree.Insert(key); err != nil {
				handler.OnError(err)
			}
		}
	})
	report(log, "insert", len(keys), elapsed, tree)

	elapsed = measure(func() {
		for _, key := range keys {
			if !tree.Contains(key) {
				handler.OnError(avl.ErrorTreeNodeNotFound)
			}
		}
	})
	report(log, "search", len(keys), elapsed, tree)

	deletes := int(float64(len(keys)) * deleteRatio)
	elapsed = measure(func() {
		for _, key := range keys[:deletes] {
			if err := tree.Delete(key); err != nil {
				handler.OnError(err)
			}
		}
	})
	report(log, "delete", deletes, elapsed, tree)

	handler.Observe(tree.Size(), tree.Height())
	handler.LogStatistics(log)
	if err := logMetrics(log, reg); err != nil {
		return err
	}

	if err := tree.Check(); err != nil {
		log.Error().Err(err).Msg("tree check failed")
		return err
	}
	log.Info().Msg("tree check passed")
	return nil
}

func generateKeys(count int, seed uint64) []uint128.Uint128 {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	keys := make([]uint128.Uint128, count)
	for i := range keys {
		keys[i] = uint128.New(rnd.Uint64(), rnd.Uint64())
	}
	return keys
}

func measure(f func()) time.Duration {
	s := time.Now()
	f()
	return time.Since(s)
}

func report(log zerolog.Logger, phase string, ops int, elapsed time.Duration, tree *avl.Tree[uint128.Uint128]) {
	rps := float64(ops) * float64(time.Second) / float64(max(elapsed, 1))
	log.Info().
		Str("phase", phase).
		Str("count", humanize.Comma(int64(ops))).
		Dur("elapsed", elapsed).
		Str("rps", humanize.Commaf(float64(int64(rps)))).
		Str("size", humanize.Comma(int64(tree.Size()))).
		Int("height", tree.Height()).
		Msgf("%s done", phase)
}

func logMetrics(log zerolog.Logger, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			event := log.Debug().Str("metric", family.GetName())
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				event.Float64("value", m.GetCounter().GetValue()).Send()
			case m.GetGauge() != nil:
				event.Float64("value", m.GetGauge().GetValue()).Send()
			default:
				event.Discard().Send()
			}
		}
	}
	return nil
}
