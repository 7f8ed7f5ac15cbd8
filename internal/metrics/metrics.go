// Package metrics exposes Prometheus counters for the RPC surface and
// the record store.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"workshop-scheduler/internal/store"
)

type Metrics struct {
	reg *prometheus.Registry

	rpcs          *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	storageErrors *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "rpc_requests_total",
			Help:      "Unary RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "workshop",
			Name:      "rpc_duration_seconds",
			Help:      "Unary RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "storage_errors_total",
			Help:      "Load and save failures swallowed by the record store.",
		}, []string{"op"}),
	}
	m.reg.MustRegister(m.rpcs, m.rpcDuration, m.storageErrors)
	return m
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// StorageError is meant for store.WithErrorHook.
func (m *Metrics) StorageError(err *store.StorageError) {
	m.storageErrors.WithLabelValues(err.Op).Inc()
}

func (m *Metrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		m.rpcDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		m.rpcs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}
