package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	boardSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studiofolio_board_saves_total",
		Help: "Gallery order saves issued by arrangement boards, by result.",
	}, []string{"result"})

	boardSaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "studiofolio_board_save_duration_seconds",
		Help:    "Time spent in the order persistence callback.",
		Buckets: prometheus.DefBuckets,
	})

	boardSavesCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studiofolio_board_saves_coalesced_total",
		Help: "Debounced saves replaced by a newer request before firing.",
	})

	editModeTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studiofolio_board_edit_mode_transitions_total",
		Help: "Edit mode transitions, by resulting mode.",
	}, []string{"mode"})

	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studiofolio_cache_requests_total",
		Help: "Content cache lookups, by cache and result.",
	}, []string{"cache", "result"})

	cacheLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "studiofolio_cache_lookup_seconds",
		Help:    "Content cache lookup latency.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"cache"})
)

// IncBoardSave counts a finished save attempt.
func IncBoardSave(err error) {
	if err != nil {
		boardSaves.WithLabelValues("error").Inc()
		return
	}
	boardSaves.WithLabelValues("ok").Inc()
}

func ObserveBoardSaveDuration(seconds float64) { boardSaveDuration.Observe(seconds) }

func IncBoardSaveCoalesced() { boardSavesCoalesced.Inc() }

func IncEditModeTransition(editing bool) {
	if editing {
		editModeTransitions.WithLabelValues("editing").Inc()
		return
	}
	editModeTransitions.WithLabelValues("viewing").Inc()
}

func IncCacheHit(cache string)   { cacheRequests.WithLabelValues(cache, "hit").Inc() }
func IncCacheMiss(cache string)  { cacheRequests.WithLabelValues(cache, "miss").Inc() }
func IncCacheError(cache string) { cacheRequests.WithLabelValues(cache, "error").Inc() }

func ObserveCacheLookup(cache string, seconds float64) {
	cacheLatency.WithLabelValues(cache).Observe(seconds)
}
