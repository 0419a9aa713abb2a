package recorder

import "PointDrift/internal/model"

// Recorder observes every analysis the application runs.
type Recorder interface {
	RecordAnalysis(id string, res *model.AnalysisResult) error
	Close() error
}
