// Package alphamin ties the engine core to a playable game: runtime
// options parsed from the command line, and an arena that runs a game
// between two players (engine or human) over a shared board.
package alphamin

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/alphamin/game"
	"github.com/alphamin/minimax"
)

// Options is a flat string map of runtime settings with typed
// accessors. Keys arrive as "--key=value" arguments; a bare "--key"
// means "1".
type Options struct {
	values map[string]string
}

var optionPattern = regexp.MustCompile(`^--([A-Za-z0-9_]+)(?:[=:](.*))?$`)

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{values: make(map[string]string)}
}

// ParseOptions collects every recognisable --key=value argument.
// Arguments that don't look like options are ignored.
func ParseOptions(args []string) *Options {
	o := NewOptions()
	o.Parse(args)
	return o
}

// Parse folds more arguments into the set; later values win.
func (o *Options) Parse(args []string) {
	for _, arg := range args {
		m := optionPattern.FindStringSubmatch(arg)
		if m == nil {
			continue
		}
		key, value := m[1], m[2]
		if value == "" {
			value = "1"
		}
		o.values[key] = value
	}
}

// Clear forgets every setting.
func (o *Options) Clear() {
	o.values = make(map[string]string)
}

// Exists reports whether the key was set.
func (o *Options) Exists(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get returns the raw value, or def when unset.
func (o *Options) Get(key, def string) string {
	if v, ok := o.values[key]; ok {
		return v
	}
	return def
}

// GetInt returns the value as an integer: def when unset, 0 when set
// but not numeric.
func (o *Options) GetInt(key string, def int) int {
	v, ok := o.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// GetFloat returns the value as a float, or def when unset or
// unparsable.
func (o *Options) GetFloat(key string, def float64) float64 {
	v, ok := o.values[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetBool treats any non-zero integer value as true.
func (o *Options) GetBool(key string, def bool) bool {
	if !o.Exists(key) {
		return def
	}
	return o.GetInt(key, 0) != 0
}

// Set stores a raw value.
func (o *Options) Set(key, value string) { o.values[key] = value }

// SetInt stores an integer value.
func (o *Options) SetInt(key string, value int) { o.values[key] = strconv.Itoa(value) }

// SetFloat stores a float value.
func (o *Options) SetFloat(key string, value float64) {
	o.values[key] = strconv.FormatFloat(value, 'g', -1, 64)
}

// SetBool stores a boolean as 0/1.
func (o *Options) SetBool(key string, value bool) {
	if value {
		o.values[key] = "1"
	} else {
		o.values[key] = "0"
	}
}

// Write saves the settings to a file: each key on its own line,
// followed by its value on the next.
func (o *Options) Write(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "write options %s", filename)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for key, value := range o.values {
		fmt.Fprintln(w, key)
		fmt.Fprintln(w, value)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write options %s", filename)
	}
	return nil
}

// Read replaces the settings with the contents of a file written by
// Write.
func (o *Options) Read(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "read options %s", filename)
	}
	defer f.Close()

	o.Clear()
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		key := sc.Text()
		if !sc.Scan() {
			break
		}
		o.values[key] = sc.Text()
	}
	return errors.Wrapf(sc.Err(), "read options %s", filename)
}

// EngineConfig maps the recognised option keys onto a search
// configuration and validates the result.
//
//	ply      plies to search (max depth)
//	qply     quiescence plies past zero (stored negated)
//	cache    enable the move cache
//	threads  enable the parallel root
//	timeout  seconds of wall-clock budget, 0 = unlimited
//	reserve  cores left idle by the parallel root
//	risk     acceptable cache risk, 0..1
func (o *Options) EngineConfig() (minimax.Config, error) {
	cfg := minimax.DefaultConfig(o.GetInt("ply", 3))
	cfg.QMaxDepth = -o.GetInt("qply", 2)
	cfg.UseCache = o.GetBool("cache", false)
	cfg.UseThreads = o.GetBool("threads", false)
	cfg.Timeout = time.Duration(o.GetInt("timeout", 0)) * time.Second
	cfg.ReservedCores = o.GetInt("reserve", 0)
	cfg.AcceptableRisk = float32(o.GetFloat("risk", 0.25))
	if err := cfg.Validate(); err != nil {
		return minimax.Config{}, err
	}
	return cfg, nil
}

// MaxRepetitions returns the repetition-draw threshold, key "maxrep".
func (o *Options) MaxRepetitions() int {
	return o.GetInt("maxrep", game.DefaultMaxRepetitions)
}
