package recorder

import "PointDrift/internal/model"

// NoopRecorder is a no-op implementation used when no metrics file is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ string, _ *model.AnalysisResult) error { return nil }
func (n *NoopRecorder) Close() error                                           { return nil }
