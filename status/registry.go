package status

import (
	"strconv"
	"sync/atomic"
)

// Registry holds the named counters of a running session
// Writers cache the metric pointer once and then update the atomic directly
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// Metric is one formatted registry entry
type Metric struct {
	Name  string
	Value string
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of registered metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot formats every metric, ints first, each group sorted by name
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{Name: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{Name: key, Value: strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	return out
}
