package scheduler

import (
	"encoding/json"
	"testing"

	"PointDrift/internal/recorder"
	"PointDrift/internal/registry"
	"PointDrift/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole() *Console {
	return NewConsole(session.New(registry.Default()), recorder.NewNoopRecorder(), "text")
}

func TestConsole_SetRecomputes(t *testing.T) {
	c := newConsole()

	out := c.HandleCommand("set drift 10")
	assert.Contains(t, out, "PointDrift | FX drift +10%")
	assert.Contains(t, out, "[MEDIUM]")

	out = c.HandleCommand("set fx.eu 2.2")
	assert.Contains(t, out, "[MEDIUM]")
	assert.Equal(t, "2.2", c.Session.Fx["EU"])

	out = c.HandleCommand("set drift -20")
	assert.Contains(t, out, "[HIGH]")
}

func TestConsole_FullNegativeDrift(t *testing.T) {
	c := newConsole()

	var out string
	require.NotPanics(t, func() { out = c.HandleCommand("set drift -100") })
	assert.Contains(t, out, "PointDrift | FX drift -100%")
	assert.Contains(t, out, "[HIGH]")

	out = c.HandleCommand("set drift 10")
	assert.Contains(t, out, "[MEDIUM]")
}

func TestConsole_Errors(t *testing.T) {
	c := newConsole()
	assert.Equal(t, "usage: set <field> <value>", c.HandleCommand("set drift"))
	assert.Contains(t, c.HandleCommand("set speed 3"), "unknown field")
	assert.Equal(t, "usage: format <text|json>", c.HandleCommand("format yaml"))
	assert.Equal(t, "", c.HandleCommand("   "))
	assert.Contains(t, c.HandleCommand("what"), "Commands:")
}

func TestConsole_ResetAndFields(t *testing.T) {
	c := newConsole()
	c.HandleCommand("set drift 50")
	c.HandleCommand("set cost many")

	out := c.HandleCommand("reset")
	assert.Contains(t, out, "[NONE] No drift applied.")

	fields := c.HandleCommand("fields")
	assert.Contains(t, fields, "drift    0\n")
	assert.Contains(t, fields, "cost     10000\n")
	assert.Contains(t, fields, "fx.JP    0.007\n")
}

func TestConsole_JSONAndFormat(t *testing.T) {
	c := newConsole()
	c.HandleCommand("set drift 10")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(c.HandleCommand("json")), &doc))
	assert.Equal(t, "medium", doc["severity"])

	assert.Equal(t, "format: json", c.HandleCommand("format json"))
	require.NoError(t, json.Unmarshal([]byte(c.HandleCommand("show")), &doc))
}

func TestConsole_Partners(t *testing.T) {
	out := newConsole().HandleCommand("partners")
	assert.Contains(t, out, "STREAM_UK")
	assert.Contains(t, out, "GBP")
}
