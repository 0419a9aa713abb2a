package scheduler

import (
	"fmt"
	"io"
	"strings"

	"PointDrift/internal/model"
	"PointDrift/internal/recorder"
	"PointDrift/internal/report"
	"PointDrift/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RenderAnalysis runs one analysis over sess, hands it to rec and writes the report to w.
func RenderAnalysis(w io.Writer, sess *session.Session, rec recorder.Recorder, format string) (*model.AnalysisResult, error) {
	out, res, err := analyzeAndRender(sess, rec, format)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return res, nil
}

func analyzeAndRender(sess *session.Session, rec recorder.Recorder, format string) (string, *model.AnalysisResult, error) {
	id := uuid.NewString()
	res := sess.Analyze()

	log.Debug().
		Str("analysis_id", id).
		Float64("drift_percent", res.DriftPercent).
		Float64("max_abs_drift", res.MaxAbsDrift).
		Str("severity", string(res.Severity)).
		Msg("analysis complete")

	if err := rec.RecordAnalysis(id, res); err != nil {
		log.Error().Err(err).Str("analysis_id", id).Msg("record analysis")
	}

	var b strings.Builder
	if err := report.Render(&b, res, sess.Registry(), format); err != nil {
		return "", nil, fmt.Errorf("render: %w", err)
	}
	return b.String(), res, nil
}
