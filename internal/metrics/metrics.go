// Package metrics 匯出 Prometheus 指標。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ucr_mock"

// 產生資料的種類
const (
	KindRecord   = "record"
	KindSighting = "sighting"
	KindPoint    = "point"
)

type Metrics struct {
	Registry *prometheus.Registry

	Generated         *prometheus.CounterVec
	Requests          *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	SnapshotRefreshes prometheus.Counter
}

// New 每個實例使用自己的 Registry，測試可以重複建立
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Total mock items generated, by kind",
		}, []string{"kind"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests, by route and status",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"route"}),
		SnapshotRefreshes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_refreshes_total",
			Help:      "Total scheduled snapshot refreshes",
		}),
	}
}

// ObserveGenerated nil-safe，服務層不一定有掛指標
func (m *Metrics) ObserveGenerated(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Generated.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) ObserveSnapshotRefresh() {
	if m == nil {
		return
	}
	m.SnapshotRefreshes.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware 記錄每個路由的請求數與延遲
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			status := c.Writer.Status()
			rec := recover()
			if rec != nil {
				// 外層 Recovery 會回 500
				status = http.StatusInternalServerError
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

			if rec != nil {
				panic(rec)
			}
		}()
		c.Next()
	}
}
