// Package minimax picks moves by alpha-beta minimax search with a
// quiescence extension, an optional move-cache short-circuit, an
// optional worker-parallel root split and a cooperative wall-clock
// deadline.
package minimax

import (
	"log"
	"sync"
	"time"

	"github.com/alphamin/cache"
	"github.com/alphamin/eval"
	"github.com/alphamin/game"
)

// Minimax is the search engine. One instance owns a long-lived move
// cache and, during a BestMove call, the clock, the running best move
// and the examined-move counter the workers share.
type Minimax struct {
	Config

	moveCache *cache.MoveCache
	logger    *log.Logger

	startTime time.Time

	// movesExamined is shared by all workers; each batches its
	// subtree count before taking the lock.
	examinedMu    sync.Mutex
	movesExamined int

	bestMu sync.Mutex
	best   BestMove
}

// New returns an engine searching maxDepth plies with the default
// configuration and a fresh, empty cache.
func New(maxDepth int) *Minimax {
	return &Minimax{
		Config:    DefaultConfig(maxDepth),
		moveCache: cache.New(),
	}
}

// SetLogger directs per-decision summary lines to logger.
func (m *Minimax) SetLogger(logger *log.Logger) { m.logger = logger }

// Cache exposes the engine's move cache, mainly so a driver can log
// its metrics on shutdown.
func (m *Minimax) Cache() *cache.MoveCache { return m.moveCache }

// MovesExamined reports the number of positions examined by the most
// recent BestMove call.
func (m *Minimax) MovesExamined() int {
	m.examinedMu.Lock()
	defer m.examinedMu.Unlock()
	return m.movesExamined
}

func (m *Minimax) addExamined(delta int) {
	if delta == 0 {
		return
	}
	m.examinedMu.Lock()
	m.movesExamined += delta
	m.examinedMu.Unlock()
}

// timedOut reports whether the deadline has passed. Frames at the
// full search depth are exempt so the root always enumerates every
// move.
func (m *Minimax) timedOut(depth int) bool {
	if m.Timeout == 0 || depth == m.MaxDepth {
		return false
	}
	return time.Since(m.startTime) >= m.Timeout
}

// BestMove decides the move for the side to play on b. With no legal
// move it returns the invalid zero Move; with exactly one it returns
// that move without searching. Otherwise it answers from the cache
// when allowed, or runs the serial or parallel root search and offers
// the winner back to the cache.
func (m *Minimax) BestMove(b *game.Board) game.Move {
	maximize := b.Turn == game.White
	m.setBest(NewBestMove(maximize))
	m.examinedMu.Lock()
	m.movesExamined = 0
	m.examinedMu.Unlock()

	if len(b.TurnMoves) == 0 {
		return game.Move{}
	}
	if len(b.TurnMoves) == 1 {
		only := b.TurnMoves[0]
		m.setBest(BestMove{Move: only, Value: only.Value})
		m.addExamined(1)
		return only
	}

	m.startTime = time.Now()

	// Cached answers are only trusted away from the end game; with
	// few moves left every position deserves a fresh search.
	if m.UseCache && len(b.TurnMoves) > 5 {
		if e := m.moveCache.Lookup(b, b.Turn); e.IsValidOn(b) {
			m.addExamined(e.MovesExamined)
			return e.Move
		}
	}

	var move game.Move
	if m.UseThreads {
		move = m.searchParallel(b, maximize)
	} else {
		move = m.searchSerial(b, maximize)
	}

	if m.UseCache && move.IsValidOn(b) {
		m.moveCache.Offer(b, move, b.Turn, move.Value, m.MovesExamined())
	}
	if m.logger != nil {
		m.logger.Printf("turn %d: %s after %d positions", b.Turns, move, m.MovesExamined())
	}
	return move
}

// searchSerial walks the root moves in sorted order on the calling
// goroutine.
func (m *Minimax) searchSerial(b *game.Board, maximize bool) game.Move {
	for i, mv := range b.TurnMoves {
		if m.timedOut(m.MaxDepth) {
			break
		}
		trial := b.Copy()
		trial.Execute(&mv)
		trial.AdvanceTurn()
		m.addExamined(1)

		value := m.minimax(trial, game.MinValue, game.MaxValue, m.MaxDepth, !maximize)
		m.offerRoot(i, value, mv, maximize)
	}
	return m.bestMove()
}

// searchParallel fans one task out per root move, each with its own
// board copy and the full alpha-beta window. The dispatcher blocks on
// a slot whenever workerLimit tasks are in flight, so launch order
// follows sorted-move order and the load stays bounded. Results are
// folded into the shared best as they complete.
func (m *Minimax) searchParallel(b *game.Board, maximize bool) game.Move {
	sem := make(chan struct{}, m.workerLimit())
	var wg sync.WaitGroup

	for i := range b.TurnMoves {
		sem <- struct{}{}
		wg.Add(1)
		go func(index int, mv game.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			trial := b.Copy()
			trial.Execute(&mv)
			trial.AdvanceTurn()
			m.addExamined(1)

			value := m.minimax(trial, game.MinValue, game.MaxValue, m.MaxDepth, !maximize)
			m.offerRoot(index, value, mv, maximize)
		}(i, b.TurnMoves[i])
	}

	wg.Wait()
	return m.bestMove()
}

// offerRoot folds one root result into the shared best move. A result
// wins when it is strictly better for our side, or when it ties the
// current best but came earlier in sorted order; that keeps the
// chosen move identical between serial and parallel runs.
func (m *Minimax) offerRoot(index, value int, move game.Move, maximize bool) {
	m.bestMu.Lock()
	defer m.bestMu.Unlock()

	better := value > m.best.Value
	if !maximize {
		better = value < m.best.Value
	}
	if better || (m.best.index >= 0 && value == m.best.Value && index < m.best.index) {
		move.Value = value
		m.best = BestMove{Move: move, Value: value, index: index}
	}
}

func (m *Minimax) setBest(b BestMove) {
	m.bestMu.Lock()
	m.best = b
	m.bestMu.Unlock()
}

func (m *Minimax) bestMove() game.Move {
	m.bestMu.Lock()
	defer m.bestMu.Unlock()
	return m.best.Move
}

// minimax searches b's move list recursively and returns the best
// achievable score for the side given by maximize. alpha and beta
// bound the scores still worth pursuing; the subtree is cut as soon
// as they cross.
func (m *Minimax) minimax(b *game.Board, alpha, beta, depth int, maximize bool) int {
	local := NewBestMove(maximize)

	for _, mv := range b.TurnMoves {
		// Quiescence gate: past the nominal depth only captures keep
		// the search alive, and only down to QMaxDepth. A quiet move
		// settles the frame at the static evaluation.
		if depth <= 0 && (mv.Value == 0 || depth <= m.QMaxDepth) {
			m.addExamined(local.MovesExamined)
			return eval.Evaluate(b, eval.All)
		}

		if m.timedOut(depth) {
			if local.Value == worstValue(maximize) {
				// Nothing examined here yet: report neutral so peer
				// results dominate at the root.
				return 0
			}
			return local.Value
		}

		gotHit := false
		accepted := false
		cachedValue := 0
		value := 0

		if m.UseCache && len(b.TurnMoves) > 5 {
			if e := m.moveCache.Lookup(b, b.Turn); e.IsValid() {
				gotHit = true
				cachedValue = e.Move.Value
				value = e.Move.Value
				local.Move = e.Move
				local.Value = e.Move.Value
				local.MovesExamined += e.MovesExamined

				if e.Risk() > m.AcceptableRisk {
					// Too risky to trust: count the reuse and verify
					// this move by hand.
					m.moveCache.NoteReuse(b, b.Turn)
				} else {
					accepted = true
				}
			}
		}

		if !accepted {
			trial := b.Copy()
			trial.Execute(&mv)
			trial.AdvanceTurn()
			local.MovesExamined++

			if len(trial.TurnMoves) == 0 {
				// Opponent has no reply: mate or stalemate. Prefer
				// mates found sooner by shading the sentinel with the
				// remaining depth.
				local.Move = mv
				if maximize {
					local.Value = game.MaxValue - (100 - depth)
				} else {
					local.Value = game.MinValue + (100 - depth)
				}
				break
			}

			value = m.minimax(trial, alpha, beta, depth-1, !maximize)

			if (maximize && value > local.Value) || (!maximize && value < local.Value) {
				local.Value = value
				local.Move = mv
				local.Move.Value = value
				if m.UseCache {
					m.moveCache.Offer(b, mv, b.Turn, value, local.MovesExamined)
				}
			}

			if gotHit && ((maximize && value > cachedValue) || (!maximize && value < cachedValue)) {
				m.moveCache.NoteImproved(b, b.Turn)
			}
		}

		if maximize {
			if value > alpha {
				alpha = value
			}
		} else {
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}

	m.addExamined(local.MovesExamined)
	return local.Value
}
