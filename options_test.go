package alphamin

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	o := ParseOptions([]string{"--ply=4", "--cache", "--risk:0.5", "stray", "-x"})

	assert.Equal(t, 4, o.GetInt("ply", 0))
	assert.True(t, o.GetBool("cache", false), "bare keys read as 1")
	assert.InDelta(t, 0.5, o.GetFloat("risk", 0), 1e-9)
	assert.False(t, o.Exists("stray"))
	assert.False(t, o.Exists("x"))
}

func TestOptionDefaultsAndCoercion(t *testing.T) {
	o := ParseOptions([]string{"--ply=abc"})

	assert.Equal(t, 7, o.GetInt("missing", 7))
	assert.Equal(t, 0, o.GetInt("ply", 7), "set but non-numeric reads as 0")
	assert.Equal(t, "fallback", o.Get("missing", "fallback"))
	assert.True(t, o.GetBool("missing", true))

	o.SetInt("depth", 5)
	o.SetFloat("risk", 0.25)
	o.SetBool("threads", true)
	o.Set("name", "tester")
	assert.Equal(t, 5, o.GetInt("depth", 0))
	assert.InDelta(t, 0.25, o.GetFloat("risk", 0), 1e-9)
	assert.True(t, o.GetBool("threads", false))
	assert.Equal(t, "tester", o.Get("name", ""))

	o.Clear()
	assert.False(t, o.Exists("depth"))
}

func TestOptionsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.txt")

	o := NewOptions()
	o.SetInt("ply", 4)
	o.Set("cache", "1")
	require.NoError(t, o.Write(path))

	back := NewOptions()
	require.NoError(t, back.Read(path))
	assert.Equal(t, 4, back.GetInt("ply", 0))
	assert.True(t, back.GetBool("cache", false))
}

func TestOptionsReadMissingFile(t *testing.T) {
	o := NewOptions()
	assert.Error(t, o.Read(filepath.Join(t.TempDir(), "absent")))
}

func TestEngineConfigMapping(t *testing.T) {
	o := ParseOptions([]string{
		"--ply=4", "--qply=3", "--cache", "--threads",
		"--timeout=2", "--reserve=1", "--risk=0.5",
	})

	cfg, err := o.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, -3, cfg.QMaxDepth)
	assert.True(t, cfg.UseCache)
	assert.True(t, cfg.UseThreads)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.ReservedCores)
	assert.InDelta(t, 0.5, float64(cfg.AcceptableRisk), 1e-6)
}

func TestEngineConfigDefaults(t *testing.T) {
	cfg, err := NewOptions().EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, -2, cfg.QMaxDepth)
	assert.False(t, cfg.UseCache)
	assert.False(t, cfg.UseThreads)
	assert.InDelta(t, 0.25, float64(cfg.AcceptableRisk), 1e-6)
}

func TestEngineConfigRejectsBadValues(t *testing.T) {
	_, err := ParseOptions([]string{"--risk=2"}).EngineConfig()
	assert.Error(t, err)

	_, err = ParseOptions([]string{"--ply=0"}).EngineConfig()
	assert.Error(t, err)
}

func TestMaxRepetitionsOption(t *testing.T) {
	assert.Equal(t, 3, NewOptions().MaxRepetitions())
	assert.Equal(t, 5, ParseOptions([]string{"--maxrep=5"}).MaxRepetitions())
}
