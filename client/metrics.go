package client

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	errors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	errs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "box",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Non-2xx API responses by status and error code.",
		},
		[]string{"status", "code"},
	)
	if err := reg.Register(errs); err != nil {
		// several clients may share one registry
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		errs = existing
	}
	return &metrics{errors: errs}, nil
}
