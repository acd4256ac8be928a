// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus counters for the report engine and the
// HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const namespace = "fireaudit"

// Recorder receives engine and transport events.
type Recorder interface {
	SummaryBuilt()
	MalformedRecord(system models.SystemID)
	DefectsDetected(system models.SystemID, n int)
	HTTPRequest(method, route string, status int, elapsed time.Duration)
}

// PrometheusRecorder implements [Recorder] on a private registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	summaries *prometheus.CounterVec
	malformed *prometheus.CounterVec
	defects   *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the collectors together with the Go and
// process collectors on a fresh registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_built_total",
			Help:      "Number of inspection summaries built.",
		}, nil),
		malformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_records_total",
			Help:      "Category records that could not be read or parsed and were reported as PENDING.",
		}, []string{"system"}),
		defects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "defects_detected_total",
			Help:      "Defect entries emitted by summary builds.",
		}, []string{"system"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of report server requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		r.summaries, r.malformed, r.defects, r.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *PrometheusRecorder) SummaryBuilt() {
	r.summaries.WithLabelValues().Inc()
}

func (r *PrometheusRecorder) MalformedRecord(system models.SystemID) {
	r.malformed.WithLabelValues(string(system)).Inc()
}

func (r *PrometheusRecorder) DefectsDetected(system models.SystemID, n int) {
	if n <= 0 {
		return
	}
	r.defects.WithLabelValues(string(system)).Add(float64(n))
}

func (r *PrometheusRecorder) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

type nopRecorder struct{}

// Nop returns a [Recorder] that drops everything.
func Nop() Recorder { return nopRecorder{} }

func (nopRecorder) SummaryBuilt()                                  {}
func (nopRecorder) MalformedRecord(models.SystemID)                {}
func (nopRecorder) DefectsDetected(models.SystemID, int)           {}
func (nopRecorder) HTTPRequest(string, string, int, time.Duration) {}
