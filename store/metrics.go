package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/xerrors"
)

// Values of the "result" label.
const (
	resultOK       = "ok"
	resultMiss     = "miss"
	resultSlowPath = "slow_path"
	resultError    = "error"
)

type metrics struct {
	ops *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flatbuf",
		Subsystem: "store",
		Name:      "ops_total",
		Help:      "store operations by type and result",
	}, []string{"op", "result"})

	if reg != nil {
		if err := reg.Register(ops); err != nil {
			are := prometheus.AlreadyRegisteredError{}
			if !xerrors.As(err, &are) {
				return nil, xerrors.Errorf("register metrics: %w", err)
			}
			// Several stores may share a registry.
			ops = are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return &metrics{ops: ops}, nil
}

func (m *metrics) observe(op string, err error) {
	result := resultOK
	switch {
	case xerrors.Is(err, ErrNotFound):
		result = resultMiss
	case err != nil:
		result = resultError
	}
	m.ops.WithLabelValues(op, result).Inc()
}
