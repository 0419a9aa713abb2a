package scheduler

import (
	"fmt"
	"strings"

	"PointDrift/internal/recorder"
	"PointDrift/internal/report"
	"PointDrift/internal/session"
)

const helpText = `Commands:
  set <field> <value>   change an input and recompute (fields: see "fields")
  fields                show current raw inputs
  reset                 restore baseline inputs
  show                  recompute and show the report
  json                  show the report as JSON
  format <text|json>    choose the report format
  partners              list partners
  help                  this text
  quit                  leave`

// Console dispatches interactive commands against one session. Every accepted
// change recomputes the analysis.
type Console struct {
	Session  *session.Session
	Recorder recorder.Recorder
	Format   string
}

// NewConsole creates a Console over sess.
func NewConsole(sess *session.Session, rec recorder.Recorder, format string) *Console {
	return &Console{Session: sess, Recorder: rec, Format: format}
}

// HandleCommand processes a user command and returns a reply.
func (c *Console) HandleCommand(line string) string {
	args := strings.Fields(line)
	if len(args) == 0 {
		return ""
	}
	switch strings.ToLower(args[0]) {
	case "set":
		if len(args) != 3 {
			return "usage: set <field> <value>"
		}
		if err := c.Session.Set(args[1], args[2]); err != nil {
			return fmt.Sprintf("error: %v (try \"fields\")", err)
		}
		return c.render(c.Format)
	case "reset":
		c.Session.Reset()
		return c.render(c.Format)
	case "show":
		return c.render(c.Format)
	case "json":
		return c.render(report.FormatJSON)
	case "format":
		if len(args) != 2 || (args[1] != report.FormatText && args[1] != report.FormatJSON) {
			return "usage: format <text|json>"
		}
		c.Format = args[1]
		return "format: " + c.Format
	case "fields":
		return c.fields()
	case "partners":
		var b strings.Builder
		if err := report.Partners(&b, c.Session.Registry()); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return b.String()
	default:
		return helpText
	}
}

func (c *Console) render(format string) string {
	out, _, err := analyzeAndRender(c.Session, c.Recorder, format)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

func (c *Console) fields() string {
	s := c.Session
	var b strings.Builder
	for _, f := range s.Fields() {
		var v string
		switch f {
		case session.FieldBase:
			v = s.BasePointValue
		case session.FieldCost:
			v = s.PointsCost
		case session.FieldDrift:
			v = s.Drift
		default:
			v = s.Fx[strings.TrimPrefix(f, session.FieldFxPrefix)]
		}
		fmt.Fprintf(&b, "%-8s %s\n", f, v)
	}
	return b.String()
}
