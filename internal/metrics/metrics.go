package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
)

// Metrics holds the Prometheus collectors for the journal.
type Metrics struct {
	registry *prometheus.Registry

	ProjectsCreated prometheus.Counter
	EntriesAdded    *prometheus.CounterVec
	MinutesLogged   prometheus.Counter

	// refreshed by the stats reporter job
	Projects      prometheus.Gauge
	Entries       prometheus.Gauge
	MinutesStored prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
}

// New registers every collector on a fresh registry, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,

		ProjectsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "devjournal_projects_created_total",
			Help: "Total number of projects created",
		}),
		EntriesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devjournal_entries_added_total",
			Help: "Total number of progress entries added by mood",
		}, []string{"mood"}),
		MinutesLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "devjournal_minutes_logged_total",
			Help: "Total minutes logged through new entries",
		}),

		Projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "devjournal_projects",
			Help: "Projects currently held by the store",
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "devjournal_entries",
			Help: "Entries currently held by the store",
		}),
		MinutesStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "devjournal_minutes_stored",
			Help: "Sum of time spent across all stored entries",
		}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devjournal_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.ProjectsCreated, m.EntriesAdded, m.MinutesLogged,
		m.Projects, m.Entries, m.MinutesStored,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ProjectCreated() {
	m.ProjectsCreated.Inc()
}

func (m *Metrics) EntryAdded(mood domain.Mood, minutes int) {
	m.EntriesAdded.WithLabelValues(string(mood)).Inc()
	m.MinutesLogged.Add(float64(minutes))
}

// SetStoreTotals overwrites the store gauges.
func (m *Metrics) SetStoreTotals(projects, entries, minutes int) {
	m.Projects.Set(float64(projects))
	m.Entries.Set(float64(entries))
	m.MinutesStored.Set(float64(minutes))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
