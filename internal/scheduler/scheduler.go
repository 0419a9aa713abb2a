package scheduler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"PointDrift/internal/recorder"
	"PointDrift/internal/registry"
	"PointDrift/internal/session"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Watcher re-reads a scenario file on a cron schedule and re-renders the
// analysis whenever the file content changes.
type Watcher struct {
	Cron         *cron.Cron
	ScenarioPath string
	Registry     *registry.Registry
	Recorder     recorder.Recorder
	Out          io.Writer
	Format       string

	mu   sync.Mutex
	last []byte
	seen bool
}

// NewWatcher creates a Watcher writing reports to out.
func NewWatcher(reg *registry.Registry, rec recorder.Recorder, out io.Writer, scenarioPath, format string) *Watcher {
	return &Watcher{
		Cron:         cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		ScenarioPath: scenarioPath,
		Registry:     reg,
		Recorder:     rec,
		Out:          out,
		Format:       format,
	}
}

// Register schedules the poll task.
func (w *Watcher) Register(spec string) error {
	if _, err := w.Cron.AddFunc(spec, w.pollTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Info().Str("scenario", w.ScenarioPath).Msg("watcher started")
}

// Stop stops the scheduler and waits for a running poll to finish.
func (w *Watcher) Stop() {
	<-w.Cron.Stop().Done()
	log.Info().Msg("watcher stopped")
}

// RunNow polls immediately.
func (w *Watcher) RunNow() {
	w.pollTask()
}

// Poll reads the scenario file and renders a report if it changed since the
// last successful poll. It reports whether a report was written.
func (w *Watcher) Poll() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := os.ReadFile(w.ScenarioPath)
	if err != nil {
		return false, fmt.Errorf("read scenario: %w", err)
	}
	if w.seen && bytes.Equal(data, w.last) {
		return false, nil
	}

	sc, err := session.ParseScenario(data)
	if err != nil {
		return false, err
	}
	sess := session.New(w.Registry)
	if err := sess.Apply(sc); err != nil {
		return false, fmt.Errorf("apply scenario: %w", err)
	}

	out, res, err := analyzeAndRender(sess, w.Recorder, w.Format)
	if err != nil {
		return false, err
	}
	if _, err := io.WriteString(w.Out, out); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}

	w.last, w.seen = data, true
	log.Info().
		Str("scenario", w.ScenarioPath).
		Str("name", sc.Name).
		Str("severity", string(res.Severity)).
		Msg("scenario changed, report updated")
	return true, nil
}

func (w *Watcher) pollTask() {
	if _, err := w.Poll(); err != nil {
		log.Error().Err(err).Str("scenario", w.ScenarioPath).Msg("watch poll")
	}
}
