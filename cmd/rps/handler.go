package main

import (
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/cryptonstudio/crypton-avl/metrics"
	avl "github.com/cryptonstudio/crypton-avl/types/avl"
)

// Stats counts tree events and forwards them to the metrics collector.
type Stats struct {
	collector    *metrics.Collector
	nodeUpdates  [2]uint64
	rotations    [2]uint64
	rebalances   uint64
	errors       uint64
	totalUpdates uint64
}

var _ avl.Handler = (*Stats)(nil)

func NewStats(collector *metrics.Collector) *Stats {
	return &Stats{collector: collector}
}

func (s *Stats) OnInsert(id avl.NodeID) {
	atomic.AddUint64(&s.nodeUpdates[0], 1)
	atomic.AddUint64(&s.totalUpdates, 1)
	s.collector.OnInsert(id)
}

func (s *Stats) OnDelete(id avl.NodeID) {
	atomic.AddUint64(&s.nodeUpdates[1], 1)
	atomic.AddUint64(&s.totalUpdates, 1)
	s.collector.OnDelete(id)
}

func (s *Stats) OnRotate(pivot avl.NodeID, direction avl.Direction) {
	switch direction {
	case avl.DirectionClockwise:
		atomic.AddUint64(&s.rotations[0], 1)
	case avl.DirectionCounterClockwise:
		atomic.AddUint64(&s.rotations[1], 1)
	}
	atomic.AddUint64(&s.totalUpdates, 1)
	s.collector.OnRotate(pivot, direction)
}

func (s *Stats) OnRebalance(id avl.NodeID, bf int) {
	atomic.AddUint64(&s.rebalances, 1)
	atomic.AddUint64(&s.totalUpdates, 1)
	s.collector.OnRebalance(id, bf)
}

func (s *Stats) OnError(err error) {
	atomic.AddUint64(&s.errors, 1)
}

func (s *Stats) Observe(size, height int) {
	s.collector.Observe(size, height)
}

func (s *Stats) LogStatistics(log zerolog.Logger) {
	log.Info().
		Str("inserts", humanize.Comma(int64(atomic.LoadUint64(&s.nodeUpdates[0])))).
		Str("deletes", humanize.Comma(int64(atomic.LoadUint64(&s.nodeUpdates[1])))).
		Str("rotations_cw", humanize.Comma(int64(atomic.LoadUint64(&s.rotations[0])))).
		Str("rotations_ccw", humanize.Comma(int64(atomic.LoadUint64(&s.rotations[1])))).
		Str("rebalances", humanize.Comma(int64(atomic.LoadUint64(&s.rebalances)))).
		Uint64("errors", atomic.LoadUint64(&s.errors)).
		Str("total", humanize.Comma(int64(atomic.LoadUint64(&s.totalUpdates)))).
		Msg("tree handler statistics")
}
