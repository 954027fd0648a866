package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	framesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "loopctl",
			Subsystem: "codec",
			Name:      "frames_built_total",
			Help:      "Frames assembled by the builder.",
		},
		[]string{"complete"},
	)
	chainWalks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "loopctl",
			Subsystem: "codec",
			Name:      "chain_walks_total",
			Help:      "Skip-chain walks over received frames.",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesBuilt, chainWalks)
	})
}

// RecordFrameBuilt counts one builder run; complete is false when the
// destination buffer was smaller than the logical frame.
func RecordFrameBuilt(complete bool) {
	framesBuilt.WithLabelValues(strconv.FormatBool(complete)).Inc()
}

// RecordChainWalk counts one walk over a received frame by outcome
// ("ok", "bad_skipcount", ...).
func RecordChainWalk(outcome string) {
	chainWalks.WithLabelValues(outcome).Inc()
}
