package recorder

import (
	"fmt"
	"sync"

	"PointDrift/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// PromRecorder keeps analysis metrics in a private Prometheus registry and
// writes them in textfile-collector format on Flush and Close.
type PromRecorder struct {
	mu       sync.Mutex
	path     string
	registry *prometheus.Registry

	Analyses      *prometheus.CounterVec
	MaxAbsDrift   prometheus.Gauge
	PartnerDrift  *prometheus.GaugeVec
	LiabilityBase prometheus.Gauge
	LastAnalysis  prometheus.Gauge
}

// NewPromRecorder creates a recorder that writes to path.
func NewPromRecorder(path string) (*PromRecorder, error) {
	if path == "" {
		return nil, fmt.Errorf("metrics file path is required")
	}
	r := &PromRecorder{
		path:     path,
		registry: prometheus.NewRegistry(),
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pointdrift_analyses_total",
				Help: "Total number of drift analyses by severity",
			},
			[]string{"severity"},
		),
		MaxAbsDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pointdrift_max_abs_drift_percent",
			Help: "Largest absolute partner drift of the last analysis",
		}),
		PartnerDrift: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pointdrift_partner_drift_percent",
				Help: "Per-partner drift percent of the last analysis",
			},
			[]string{"partner", "currency"},
		),
		LiabilityBase: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pointdrift_liability_base",
			Help: "Base-currency liability of one redemption in the last analysis",
		}),
		LastAnalysis: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pointdrift_last_analysis_timestamp_seconds",
			Help: "Unix time of the last recorded analysis",
		}),
	}
	r.registry.MustRegister(r.Analyses, r.MaxAbsDrift, r.PartnerDrift, r.LiabilityBase, r.LastAnalysis)
	return r, nil
}

// RecordAnalysis updates metrics from res and rewrites the textfile.
func (r *PromRecorder) RecordAnalysis(id string, res *model.AnalysisResult) error {
	r.Analyses.WithLabelValues(string(res.Severity)).Inc()
	r.MaxAbsDrift.Set(res.MaxAbsDrift)
	r.LiabilityBase.Set(res.LiabilityBase)
	for _, p := range res.Partners {
		r.PartnerDrift.WithLabelValues(p.PartnerID, p.Currency).Set(p.DriftPercent)
	}
	r.LastAnalysis.SetToCurrentTime()
	log.Debug().Str("analysis_id", id).Str("severity", string(res.Severity)).Msg("analysis recorded")
	return r.Flush()
}

// Flush writes the current metrics to the textfile.
func (r *PromRecorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := prometheus.WriteToTextfile(r.path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// Close flushes the metrics one last time.
func (r *PromRecorder) Close() error {
	return r.Flush()
}

// Gatherer exposes the underlying registry.
func (r *PromRecorder) Gatherer() prometheus.Gatherer { return r.registry }
