// internal/handlers/http/metrics_handler.go
// Handler untuk metrics Prometheus (registry per instance, bukan global)

package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alphawell/internal/services"
)

// Metrics menghitung run analisis per sumber data dan login gagal.
type Metrics struct {
	analyses      *prometheus.CounterVec
	fallbacks     prometheus.Counter
	loginFailures prometheus.Counter
	handler       http.Handler
}

// NewMetrics mendaftarkan semua collector ke registry baru. revoked opsional:
// gauge jumlah refresh token yang di-revoke.
func NewMetrics(revoked func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alphawell_analyses_total",
			Help: "Analyze runs by data source",
		}, []string{"source"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alphawell_remote_fallbacks_total",
			Help: "Remote failures answered by the simulator",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alphawell_login_failures_total",
			Help: "Rejected logins",
		}),
	}
	up := prometheus.NewGauge(prometheus.GaugeOpts{Name: "app_up", Help: "1 if the app is up"})
	up.Set(1)

	reg.MustRegister(m.analyses, m.fallbacks, m.loginFailures, up, collectors.NewGoCollector())
	if revoked != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "alphawell_revoked_refresh_tokens",
			Help: "Revoked refresh tokens not yet pruned",
		}, func() float64 { return float64(revoked()) }))
	}
	// seri 0 tetap muncul sebelum run pertama
	for _, src := range []services.Source{services.SourceLocal, services.SourceRemote, services.SourceMixed} {
		m.analyses.WithLabelValues(string(src))
	}
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

func (m *Metrics) ObserveAnalysis(a *services.Analysis) {
	src := a.Source
	if src != services.SourceRemote && src != services.SourceMixed {
		src = services.SourceLocal
	}
	m.analyses.WithLabelValues(string(src)).Inc()
	if a.Notice == services.NoticeFallback {
		m.fallbacks.Inc()
	}
}

func (m *Metrics) ObserveLoginFailure() { m.loginFailures.Inc() }

func (m *Metrics) Handler(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
