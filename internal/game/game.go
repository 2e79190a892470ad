// Package game owns one live board and the turn state machine around it:
// side to move, the cached set of fully legal moves for that side, move
// history and terminal-state queries.
package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/quillo/chessrules/internal/board"
	"github.com/quillo/chessrules/internal/fen"
)

// Move is an origin/destination pair, the key of the legal-move cache.
type Move struct {
	From board.Square
	To   board.Square
}

// String returns the coordinate text of the move (e.g. "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Game is the turn controller. All mutation goes through ProposeMove;
// callers never reach into the board directly. Operations are synchronous
// and not safe for concurrent use; the owner serializes access.
type Game struct {
	board      *board.Board
	sideToMove board.Color

	// legal is the single source of truth for "is this move allowed".
	// It is regenerated completely after every accepted move; a stale
	// cache is a correctness bug, not a performance shortcut.
	legal   map[Move]struct{}
	inCheck bool

	history   []string
	positions []string

	halfMoveClock  int
	fullMoveNumber int
}

// New creates a game in the standard starting position, White to move.
func New() *Game {
	g := &Game{
		board:          board.StartingBoard(),
		sideToMove:     board.White,
		fullMoveNumber: 1,
	}
	g.regenerate()
	g.positions = []string{g.FEN()}
	return g
}

// Load creates a game from a decoded notation record. Records that failed
// validation are rejected; the previous game, if any, is untouched.
func Load(rec fen.Record) (*Game, error) {
	if !rec.Valid {
		return nil, fmt.Errorf("invalid position %q", rec.Input)
	}
	g := &Game{
		board:          rec.Board.Clone(),
		sideToMove:     rec.SideToMove,
		halfMoveClock:  rec.HalfMoveClock,
		fullMoveNumber: rec.FullMoveNumber,
	}
	g.regenerate()
	g.positions = []string{g.FEN()}
	return g, nil
}

// Restore rebuilds a game from a saved position trail (oldest first) and
// its recorded history. The newest position becomes the live board; every
// entry in the trail must decode validly.
func Restore(fens, history []string) (*Game, error) {
	if len(fens) == 0 {
		return nil, errors.New("no positions to restore")
	}
	for _, s := range fens[:len(fens)-1] {
		if rec := fen.Parse(s); !rec.Valid {
			return nil, fmt.Errorf("invalid position %q in saved game", s)
		}
	}
	g, err := Load(fen.Parse(fens[len(fens)-1]))
	if err != nil {
		return nil, err
	}
	g.positions = append([]string(nil), fens...)
	g.history = append([]string(nil), history...)
	return g, nil
}

// SideToMove returns whose turn it is.
func (g *Game) SideToMove() board.Color {
	return g.sideToMove
}

// Snapshot returns an independent copy of the current board for display;
// mutating it has no effect on the game.
func (g *Game) Snapshot() *board.Board {
	return g.board.Clone()
}

// History returns the recorded move notations, oldest first. Entries have
// the form <from><to>[*][#][promotion]: "*" marks check, "#" checkmate.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// Positions returns the notation string of every position reached,
// starting position first. This trail is the save format.
func (g *Game) Positions() []string {
	return append([]string(nil), g.positions...)
}

// FEN exports the current position.
func (g *Game) FEN() string {
	return fen.Encode(g.board, g.sideToMove, g.halfMoveClock, g.fullMoveNumber)
}

// LegalMoves returns the cached legal moves for the side to move, sorted
// for deterministic iteration.
func (g *Game) LegalMoves() []Move {
	moves := make([]Move, 0, len(g.legal))
	for m := range g.legal {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From.Less(moves[j].From)
		}
		return moves[i].To.Less(moves[j].To)
	})
	return moves
}

// LegalDestinations filters the cache by origin, for square highlighting.
func (g *Game) LegalDestinations(sq board.Square) []board.Square {
	var dests []board.Square
	for m := range g.legal {
		if m.From == sq {
			dests = append(dests, m.To)
		}
	}
	sort.Slice(dests, func(i, j int) bool { return dests[i].Less(dests[j]) })
	return dests
}

// InCheck reports whether the side to move is in check. Like the other
// terminal queries it reads already-cached state.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// InCheckmate reports check with no legal moves.
func (g *Game) InCheckmate() bool {
	return g.inCheck && len(g.legal) == 0
}

// InStalemate reports no legal moves without check.
func (g *Game) InStalemate() bool {
	return !g.inCheck && len(g.legal) == 0
}

// RequiresPromotion reports whether the move is a legal pawn move onto the
// promotion rank, i.e. whether ProposeMove needs a promotion choice.
func (g *Game) RequiresPromotion(from, to board.Square) bool {
	if _, ok := g.legal[Move{From: from, To: to}]; !ok {
		return false
	}
	return g.board.At(from).Type() == board.Pawn &&
		to.Rank == board.PromotionRank(g.sideToMove)
}

// ProposeMove validates (from, to) against the legal-move cache and, if
// accepted, applies it with all side effects, flips the side to move,
// regenerates the cache and records the history entry. Rejected moves
// leave the game completely untouched.
//
// promo selects the replacement piece when a pawn reaches the promotion
// rank; pass board.NoPieceType otherwise. Omitting the choice on a
// promotion move violates the documented precondition and panics.
func (g *Game) ProposeMove(from, to board.Square, promo board.PieceType) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if _, ok := g.legal[Move{From: from, To: to}]; !ok {
		return false
	}

	moved := g.board.At(from)
	isPawn := moved.Type() == board.Pawn
	isCapture := g.board.At(to) != board.NoPiece || (isPawn && from.File != to.File)

	g.board.Apply(from, to, g.sideToMove)

	var promoChar byte
	if isPawn && to.Rank == board.PromotionRank(g.sideToMove) {
		if promo < board.Knight || promo > board.Queen {
			panic(fmt.Sprintf("promotion choice required for %s%s", from, to))
		}
		g.board.Set(to, board.NewPiece(promo, g.sideToMove))
		promoChar = promo.Char()
	}

	if isPawn || isCapture {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}
	if g.sideToMove == board.Black {
		g.fullMoveNumber++
	}

	g.sideToMove = g.sideToMove.Other()
	g.regenerate()

	entry := from.String() + to.String()
	if g.inCheck {
		entry += "*"
		if len(g.legal) == 0 {
			entry += "#"
		}
	}
	if promoChar != 0 {
		entry += string(promoChar)
	}
	g.history = append(g.history, entry)
	g.positions = append(g.positions, g.FEN())

	return true
}

// regenerate rebuilds the legal-move cache for the side to move: a full
// scan of the board collecting every friendly piece's pseudo-moves,
// filtered through the king-safety simulation, plus the legal castling
// destinations.
func (g *Game) regenerate() {
	g.legal = make(map[Move]struct{})
	side := g.sideToMove

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := board.NewSquare(file, rank)
			if !g.board.At(sq).IsSide(side) {
				continue
			}
			for _, to := range g.board.LegalMovesFrom(sq, side) {
				g.legal[Move{From: sq, To: to}] = struct{}{}
			}
		}
	}

	if king, ok := g.board.FindKing(side); ok {
		for _, to := range g.board.CastleMoves(side) {
			g.legal[Move{From: king, To: to}] = struct{}{}
		}
	}

	g.inCheck = g.board.InCheck(side)
}

// Clone returns an independent copy of the game, used by tooling that
// walks move trees without disturbing the live game.
func (g *Game) Clone() *Game {
	c := &Game{
		board:          g.board.Clone(),
		sideToMove:     g.sideToMove,
		inCheck:        g.inCheck,
		history:        append([]string(nil), g.history...),
		positions:      append([]string(nil), g.positions...),
		halfMoveClock:  g.halfMoveClock,
		fullMoveNumber: g.fullMoveNumber,
	}
	c.legal = make(map[Move]struct{}, len(g.legal))
	for m := range g.legal {
		c.legal[m] = struct{}{}
	}
	return c
}
