// Package cache remembers which move was chosen for a position so a
// later search of the same position can skip the work. Each entry
// carries reuse statistics: how often the entry was looked up but
// re-evaluated anyway, and how often that re-evaluation found a
// strictly better move. Their ratio is the entry's risk, which the
// search compares against its acceptable-risk threshold before
// trusting a hit.
package cache

import (
	"log"
	"sync"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat"

	"github.com/alphamin/game"
)

// Entry is one cached decision for a (side, position) key.
type Entry struct {
	Move          game.Move
	MovesExamined int

	// Retries counts lookups that re-evaluated the move anyway;
	// Betters counts how many of those found a strictly better score
	// for the storing side.
	Retries int
	Betters int
}

// IsValid reports whether the entry holds a real move. The zero Entry
// is the "no entry" sentinel.
func (e Entry) IsValid() bool { return e.Move.IsValid() }

// IsValidOn additionally checks the move against a concrete board.
func (e Entry) IsValidOn(b *game.Board) bool { return e.Move.IsValidOn(b) }

// Risk is the fraction of re-evaluations that improved on the stored
// move. An entry that has never been re-evaluated reports 1.0:
// unmeasured is treated as maximally risky.
func (e Entry) Risk() float32 {
	if e.Retries == 0 {
		return 1.0
	}
	r := float32(e.Betters) / float32(e.Retries)
	if math32.IsNaN(r) || math32.IsInf(r, 0) {
		return 1.0
	}
	return r
}

// MoveCache maps (side, canonical position) to an Entry. One
// exclusive lock spans every operation; the per-call work is on the
// order of the key length, so contention stays tolerable. Entries are
// never evicted.
type MoveCache struct {
	mu      sync.Mutex
	entries map[game.Color]map[string]*Entry

	offered int
	lookups int
	found   int
	changed int
}

// New returns an empty cache.
func New() *MoveCache {
	return &MoveCache{entries: make(map[game.Color]map[string]*Entry)}
}

// Key flattens the position into a 64-character string, one symbol
// per square in index order, '.' for empty. Castling and en-passant
// rights are deliberately not part of the key: positions that agree
// on piece placement share an entry even when those rights differ.
func Key(b *game.Board) string {
	var key [game.SquareCount]byte
	for ndx := 0; ndx < game.SquareCount; ndx++ {
		key[ndx] = b.Piece(ndx).Symbol()
	}
	return string(key[:])
}

// Lookup returns the entry for the position, or the zero Entry when
// the position has not been seen.
func (c *MoveCache) Lookup(b *game.Board, side game.Color) Entry {
	key := Key(b)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lookups++
	e := c.entries[side][key]
	if e == nil {
		return Entry{}
	}
	c.found++
	return *e
}

// Offer stores the move for the position if none is stored yet, or
// replaces the stored move when the new value is strictly better for
// the side (larger for white, smaller for black).
func (c *MoveCache) Offer(b *game.Board, move game.Move, side game.Color, value int, movesExamined int) {
	key := Key(b)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.offered++

	sideMap := c.entries[side]
	if sideMap == nil {
		sideMap = make(map[string]*Entry)
		c.entries[side] = sideMap
	}

	move.Value = value
	e := sideMap[key]
	if e == nil {
		sideMap[key] = &Entry{Move: move, MovesExamined: movesExamined}
		return
	}

	better := value > e.Move.Value
	if side == game.Black {
		better = value < e.Move.Value
	}
	if better {
		e.Move = move
		e.MovesExamined = movesExamined
		c.changed++
	}
}

// NoteReuse records that a lookup of this position chose to
// re-evaluate the stored move instead of trusting it.
func (c *MoveCache) NoteReuse(b *game.Board, side game.Color) {
	c.update(b, side, func(e *Entry) { e.Retries++ })
}

// NoteImproved records that a re-evaluation of this position produced
// a strictly better score than the stored move.
func (c *MoveCache) NoteImproved(b *game.Board, side game.Color) {
	c.update(b, side, func(e *Entry) { e.Betters++ })
}

// Risk returns the stored entry's risk, or 1.0 when the position is
// unknown.
func (c *MoveCache) Risk(b *game.Board, side game.Color) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[side][Key(b)]
	if e == nil {
		return 1.0
	}
	return e.Risk()
}

// update applies fn to the stored entry, if any, under the cache lock.
func (c *MoveCache) update(b *game.Board, side game.Color, fn func(*Entry)) {
	key := Key(b)
	c.mu.Lock()
	defer c.mu.Unlock()
	if e := c.entries[side][key]; e != nil {
		fn(e)
	}
}

// Metrics is a snapshot of the cache's lifetime counters plus summary
// statistics over the per-entry risk values.
type Metrics struct {
	Offered int
	Lookups int
	Found   int
	Changed int
	Entries int

	MeanRisk   float64
	RiskStdDev float64
}

// Metrics snapshots the counters under the cache lock.
func (c *MoveCache) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Metrics{
		Offered: c.offered,
		Lookups: c.lookups,
		Found:   c.found,
		Changed: c.changed,
	}

	var risks []float64
	for _, sideMap := range c.entries {
		m.Entries += len(sideMap)
		for _, e := range sideMap {
			risks = append(risks, float64(e.Risk()))
		}
	}
	if len(risks) > 0 {
		m.MeanRisk = stat.Mean(risks, nil)
	}
	if len(risks) > 1 {
		m.RiskStdDev = stat.StdDev(risks, nil)
	}
	return m
}

// ShowMetrics logs the snapshot, one counter per line.
func (c *MoveCache) ShowMetrics(logger *log.Logger) {
	m := c.Metrics()
	logger.Printf("Offered: %d", m.Offered)
	logger.Printf("Lookups: %d", m.Lookups)
	logger.Printf("Changed: %d", m.Changed)
	logger.Printf("Entries: %d", m.Entries)
	logger.Printf("Found  : %d", m.Found)
	logger.Printf("Risk   : mean %.3f stddev %.3f", m.MeanRisk, m.RiskStdDev)
}
