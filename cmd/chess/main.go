// Command chess plays a game of chess in the terminal. Both sides are
// driven by the engine unless --human puts white under keyboard
// control.
//
// Options (as --key=value, bare --key meaning 1):
//
//	ply      search depth in plies (default 3)
//	qply     extra quiescence plies (default 2)
//	cache    enable the move cache
//	threads  search root moves in parallel
//	timeout  seconds per move, 0 = unlimited
//	reserve  cores to leave idle when threaded
//	maxrep   repetition-draw threshold (default 3)
//	risk     acceptable cache risk, 0..1 (default 0.25)
//	human    white is played from stdin
package main

import (
	"log"
	"os"

	alphamin "github.com/alphamin"
	"github.com/alphamin/minimax"
)

func main() {
	opts := alphamin.ParseOptions(os.Args[1:])

	cfg, err := opts.EngineConfig()
	if err != nil {
		log.Fatalf("invalid options: %s", err)
	}

	agent := minimax.New(cfg.MaxDepth)
	agent.Config = cfg
	agent.SetLogger(log.Default())

	var white alphamin.Player = alphamin.NewEnginePlayer("white engine", agent)
	if opts.GetBool("human", false) {
		white = alphamin.NewHumanPlayer("white", os.Stdin, os.Stdout)
	}
	black := alphamin.NewEnginePlayer("black engine", agent)

	arena := alphamin.NewArena(white, black, os.Stdout, log.Default())
	arena.Board.MaxRepetitions = opts.MaxRepetitions()

	outcome, err := arena.Play()
	if err != nil {
		log.Fatalf("game aborted: %s", err)
	}
	log.Printf("%s", outcome)

	if cfg.UseCache {
		agent.Cache().ShowMetrics(log.Default())
	}
	if err := arena.Close(); err != nil {
		log.Printf("shutdown: %s", err)
	}
}
