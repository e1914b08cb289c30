package monitoring

import (
	"net/http"
	"sync"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"omni/logx"
)

type OpRejectedReason string

var (
	OpUnauthorized        OpRejectedReason = "unauthorized"
	OpCapExceeded         OpRejectedReason = "cap_exceeded"
	OpInsufficientBalance OpRejectedReason = "insufficient_balance"
	OpSystemPaused        OpRejectedReason = "system_paused"
	OpUnknownPeer         OpRejectedReason = "unknown_peer"
	OpFeeNotPaid          OpRejectedReason = "fee_not_paid"
	OpOverflow            OpRejectedReason = "overflow"
	OpRejectedUnknown     OpRejectedReason = "other"
)

type nodePromMetrics struct {
	nodeUpUnixSeconds    prometheus.Gauge
	circulatingSupply    prometheus.Gauge
	pausedFlag           prometheus.Gauge
	rejectedOpCount      *prometheus.CounterVec
	transferCount        prometheus.Counter
	mintCount            prometheus.Counter
	burnCount            prometheus.Counter
	outboundMessageCount *prometheus.CounterVec
	inboundMessageCount  *prometheus.CounterVec
	panicCount           prometheus.Counter
}

func newNodePromMetrics() *nodePromMetrics {
	return &nodePromMetrics{
		nodeUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "omni_node_up_timestamp_unix_seconds",
				Help: "Unix timestamp of the node",
			},
		),
		circulatingSupply: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "omni_circulating_supply",
				Help: "Local circulating supply of the domain (may lose precision above 2^53)",
			},
		),
		pausedFlag: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "omni_paused",
				Help: "1 when the ledger is paused, 0 otherwise",
			},
		),
		rejectedOpCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omni_rejected_op_count",
				Help: "Number of rejected ledger operations by reason",
			},
			[]string{"reason"},
		),
		transferCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "omni_transfer_count",
				Help: "Number of successful transfers",
			},
		),
		mintCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "omni_mint_count",
				Help: "Number of successful privileged mints",
			},
		),
		burnCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "omni_burn_count",
				Help: "Number of successful privileged burns",
			},
		),
		outboundMessageCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omni_outbound_message_count",
				Help: "Number of cross-chain messages dispatched by destination domain",
			},
			[]string{"destination"},
		),
		inboundMessageCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "omni_inbound_message_count",
				Help: "Number of cross-chain messages credited by origin domain",
			},
			[]string{"origin"},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "omni_panic_count",
				Help: "Number of recovered panics in background goroutines",
			},
		),
	}
}

var (
	nodeMetrics *nodePromMetrics
	initOnce    sync.Once
)

// InitMetrics initializes metrics for the node but does not expose them yet
func InitMetrics() {
	initOnce.Do(func() {
		nodeMetrics = newNodePromMetrics()
		nodeMetrics.nodeUpUnixSeconds.SetToCurrentTime()
	})
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

func SetCirculatingSupply(supply *uint256.Int) {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.circulatingSupply.Set(float64(supply.Uint64()))
}

func SetPaused(paused bool) {
	if nodeMetrics == nil {
		return
	}
	if paused {
		nodeMetrics.pausedFlag.Set(1)
	} else {
		nodeMetrics.pausedFlag.Set(0)
	}
}

func RecordRejectedOp(reason OpRejectedReason) {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.rejectedOpCount.With(prometheus.Labels{
		"reason": string(reason),
	}).Inc()
}

func IncreaseTransferCount() {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.transferCount.Inc()
}

func IncreaseMintCount() {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.mintCount.Inc()
}

func IncreaseBurnCount() {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.burnCount.Inc()
}

func IncreaseOutboundMessageCount(destination string) {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.outboundMessageCount.With(prometheus.Labels{
		"destination": destination,
	}).Inc()
}

func IncreaseInboundMessageCount(origin string) {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.inboundMessageCount.With(prometheus.Labels{
		"origin": origin,
	}).Inc()
}

func IncreasePanicCount() {
	if nodeMetrics == nil {
		return
	}
	nodeMetrics.panicCount.Inc()
}
