// Package metrics expone contadores Prometheus del catálogo y del almacenamiento local.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder es lo que usan servicios y adapters. Nop sirve cuando no hay métricas.
type Recorder interface {
	RecordSearch(results int)
	RecordStoreLoad(slot, status string)
	RecordStoreSaveFailure(slot string)
	RecordFavoriteToggle(added bool)
	RecordHTTPStatus(statusCode int)
}

type Collector struct {
	searches        prometheus.Counter
	searchResults   prometheus.Histogram
	storeLoads      *prometheus.CounterVec
	storeSaveFail   *prometheus.CounterVec
	favoriteToggles *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
}

// NewCollector registra las métricas en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pawscafe_searches_total",
			Help: "Búsquedas sobre el catálogo",
		}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pawscafe_search_results",
			Help:    "Cantidad de cafeterías por búsqueda",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		storeLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pawscafe_store_loads_total",
			Help: "Lecturas de slots locales por resultado (found, missing, corrupt)",
		}, []string{"slot", "status"}),
		storeSaveFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pawscafe_store_save_failures_total",
			Help: "Escrituras de slots que fallaron (silenciosas para la UI)",
		}, []string{"slot"}),
		favoriteToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pawscafe_favorite_toggles_total",
			Help: "Altas y bajas de favoritos",
		}, []string{"action"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pawscafe_http_responses_total",
			Help: "Respuestas HTTP por código",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.searches,
		c.searchResults,
		c.storeLoads,
		c.storeSaveFail,
		c.favoriteToggles,
		c.httpStatus,
	)
	return c
}

func (c *Collector) RecordSearch(results int) {
	c.searches.Inc()
	c.searchResults.Observe(float64(results))
}

func (c *Collector) RecordStoreLoad(slot, status string) {
	c.storeLoads.WithLabelValues(slot, status).Inc()
}

func (c *Collector) RecordStoreSaveFailure(slot string) {
	c.storeSaveFail.WithLabelValues(slot).Inc()
}

func (c *Collector) RecordFavoriteToggle(added bool) {
	action := "removed"
	if added {
		action = "added"
	}
	c.favoriteToggles.WithLabelValues(action).Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler devuelve el endpoint de scrape.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nop struct{}

func (nop) RecordSearch(int)               {}
func (nop) RecordStoreLoad(string, string) {}
func (nop) RecordStoreSaveFailure(string)  {}
func (nop) RecordFavoriteToggle(bool)      {}
func (nop) RecordHTTPStatus(int)           {}

func Nop() Recorder { return nop{} }
