package alphamin

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/alphamin/game"
	"github.com/alphamin/minimax"
)

// Player produces the next move for the side to play on a board.
// Returning the invalid zero Move means the player has no move (or
// resigns); the arena then settles the game.
type Player interface {
	Name() string
	Move(b *game.Board) (game.Move, error)
}

// Result classifies how a game ended.
type Result int

const (
	Checkmate Result = iota
	Stalemate
	DrawByRepetition
)

func (r Result) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	}
	return "unknown"
}

// Outcome summarises a finished game. Winner is meaningful only for
// Checkmate.
type Outcome struct {
	Result Result
	Winner game.Color
	Turns  int
}

func (o Outcome) String() string {
	if o.Result == Checkmate {
		return fmt.Sprintf("%s, %s wins after %d half-moves", o.Result, o.Winner, o.Turns)
	}
	return fmt.Sprintf("%s after %d half-moves", o.Result, o.Turns)
}

// Arena runs one game between two players over a shared board,
// rendering each position and deciding the result.
type Arena struct {
	Board *game.Board

	white, black Player
	out          io.Writer
	logger       *log.Logger
}

// NewArena sets up a fresh opening position between the two players.
// Rendered positions go to out; progress lines go to logger.
func NewArena(white, black Player, out io.Writer, logger *log.Logger) *Arena {
	return &Arena{
		Board:  game.NewBoard(),
		white:  white,
		black:  black,
		out:    out,
		logger: logger,
	}
}

// Play runs the game to its end and reports the outcome.
func (a *Arena) Play() (Outcome, error) {
	a.show()

	for {
		player := a.white
		if a.Board.Turn == game.Black {
			player = a.black
		}

		move, err := player.Move(a.Board)
		if err != nil {
			return Outcome{}, err
		}
		if !move.IsValidOn(a.Board) {
			return a.settle(), nil
		}
		if a.Board.DrawsByRepetition(move) {
			return Outcome{Result: DrawByRepetition, Turns: a.Board.Turns}, nil
		}

		a.Board.Execute(&move)
		a.Board.AdvanceTurn()
		a.logger.Printf("%s played %s", player.Name(), move)
		a.show()
	}
}

// settle decides what a side with no move means: mate if its king is
// attacked, stalemate otherwise.
func (a *Arena) settle() Outcome {
	b := a.Board
	if b.KingInCheck(b.Turn) {
		return Outcome{Result: Checkmate, Winner: b.Turn.Other(), Turns: b.Turns}
	}
	return Outcome{Result: Stalemate, Turns: b.Turns}
}

// Close releases both players; players that hold no resources are
// skipped.
func (a *Arena) Close() error {
	var errs error
	for _, p := range []Player{a.white, a.black} {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs
}

func (a *Arena) show() {
	if last := a.Board.LastMove(); last.IsValid() {
		fmt.Fprintf(a.out, "Last: %s\n", last)
	}
	for _, line := range game.Render(a.Board) {
		fmt.Fprintln(a.out, line)
	}
	for _, side := range [2]game.Color{game.White, game.Black} {
		if a.Board.KingInCheck(side) {
			fmt.Fprintf(a.out, "%s is in check\n", side)
		}
	}
	fmt.Fprintln(a.out)
}

// EnginePlayer wraps a search engine as a Player.
type EnginePlayer struct {
	name  string
	agent *minimax.Minimax
}

// NewEnginePlayer names an engine-driven player.
func NewEnginePlayer(name string, agent *minimax.Minimax) *EnginePlayer {
	return &EnginePlayer{name: name, agent: agent}
}

func (p *EnginePlayer) Name() string { return p.name }

// Move runs a search on the position.
func (p *EnginePlayer) Move(b *game.Board) (game.Move, error) {
	return p.agent.BestMove(b), nil
}

// HumanPlayer reads coordinate-notation moves ("e2e4") from a reader,
// usually stdin. "resign" or end of input concedes.
type HumanPlayer struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewHumanPlayer wires a named human player to its terminal.
func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string { return p.name }

// Move prompts until the input names a move that is actually
// available in the position.
func (p *HumanPlayer) Move(b *game.Board) (game.Move, error) {
	for {
		fmt.Fprintf(p.out, "%s to move (e.g. e2e4, or resign): ", b.Turn)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Move{}, errors.Wrap(err, "read move")
			}
			return game.Move{}, nil
		}
		text := strings.TrimSpace(p.in.Text())
		if text == "" {
			continue
		}
		if text == "resign" {
			return game.Move{}, nil
		}

		move, err := parseHumanMove(b, text)
		if err != nil {
			fmt.Fprintf(p.out, "cannot play %q: %s\n", text, err)
			continue
		}
		return move, nil
	}
}

// parseHumanMove decodes the text as UCI notation against the live
// position and maps it onto one of the board's available moves.
func parseHumanMove(b *game.Board, text string) (game.Move, error) {
	fenOpt, err := chess.FEN(game.FEN(b))
	if err != nil {
		return game.Move{}, errors.Wrap(err, "encode position")
	}
	pos := chess.NewGame(fenOpt).Position()

	decoded, err := chess.UCINotation{}.Decode(pos, text)
	if err != nil {
		return game.Move{}, errors.Wrapf(err, "parse %q", text)
	}

	from := boardIndex(decoded.S1())
	to := boardIndex(decoded.S2())
	for _, mv := range b.TurnMoves {
		if mv.From() == from && mv.To() == to {
			return mv, nil
		}
	}
	return game.Move{}, errors.Errorf("move %s is not available", text)
}

// boardIndex converts a notnil square (a1 = 0, rank-major upward) to
// this engine's indexing (a8 = 0, rank-major downward).
func boardIndex(sq chess.Square) int {
	file := int(sq) % 8
	rank := int(sq) / 8
	return file + (7-rank)*8
}
