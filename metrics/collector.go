package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	avl "github.com/cryptonstudio/crypton-avl/types/avl"
)

// Collector counts structural events of a tree and exposes them as
// Prometheus metrics. It implements avl.Handler.
type Collector struct {
	inserts    prometheus.Counter
	deletes    prometheus.Counter
	rebalances prometheus.Counter
	rotations  *prometheus.CounterVec
	size       prometheus.Gauge
	height     prometheus.Gauge
}

var _ avl.Handler = (*Collector)(nil)

// NewCollector creates collector and registers its metrics with given registerer.
// Labels are attached to every metric as constant labels.
func NewCollector(reg prometheus.Registerer, labels prometheus.Labels) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		inserts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "avl_tree_inserts_total",
			Help:        "number of nodes inserted into the tree",
			ConstLabels: labels,
		}),
		deletes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "avl_tree_deletes_total",
			Help:        "number of node slots released by deletion",
			ConstLabels: labels,
		}),
		rebalances: factory.NewCounter(prometheus.CounterOpts{
			Name:        "avl_tree_rebalances_total",
			Help:        "number of nodes rebalanced after reaching balance factor 2 or -2",
			ConstLabels: labels,
		}),
		rotations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "avl_tree_rotations_total",
			Help:        "number of rotations by direction",
			ConstLabels: labels,
		}, []string{"direction"}),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "avl_tree_size",
			Help:        "number of nodes in the tree",
			ConstLabels: labels,
		}),
		height: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "avl_tree_height",
			Help:        "height of the tree",
			ConstLabels: labels,
		}),
	}
}

// OnInsert implements avl.Handler interface.
func (c *Collector) OnInsert(avl.NodeID) {
	c.inserts.Inc()
}

// OnDelete implements avl.Handler interface.
func (c *Collector) OnDelete(avl.NodeID) {
	c.deletes.Inc()
}

// OnRotate implements avl.Handler interface.
func (c *Collector) OnRotate(_ avl.NodeID, direction avl.Direction) {
	c.rotations.WithLabelValues(direction.String()).Inc()
}

// OnRebalance implements avl.Handler interface.
func (c *Collector) OnRebalance(avl.NodeID, int) {
	c.rebalances.Inc()
}

// Observe updates shape gauges of the tree.
func (c *Collector) Observe(size, height int) {
	c.size.Set(float64(size))
	c.height.Set(float64(height))
}
