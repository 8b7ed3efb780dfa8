package ctxlog

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRecordsCounter registers (or reuses) the emitted-records counter on
// reg. The counter is labeled by logger name and level and counts records
// that passed the level threshold.
func NewRecordsCounter(reg prometheus.Registerer) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctxlog",
		Name:      "records_emitted_total",
		Help:      "Log records emitted after level filtering.",
	}, []string{"logger", "level"})

	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return vec, nil
}

// WithMetrics counts every emitted record on vec, typically one obtained
// from NewRecordsCounter.
func WithMetrics(vec *prometheus.CounterVec) Option {
	return func(s *settings) {
		s.observe = func(logger string, level slog.Level) {
			vec.WithLabelValues(logger, LevelString(level)).Inc()
		}
	}
}
