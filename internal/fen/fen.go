// Package fen converts positions to and from Forsyth-Edwards Notation,
// the only serialization format the engine persists or transmits.
//
// Parsing never fails with an error: it always yields a Record whose Valid
// flag says whether the input survived both the structural checks (field
// and row shape, legal characters, numeric clocks) and the semantic checks
// (exactly one king per side, no back-rank pawns, kings not adjacent). The
// original input is preserved for diagnostic display either way.
package fen

import (
	"strconv"
	"strings"

	"github.com/quillo/chessrules/internal/board"
)

// StartFEN is the notation string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Record is the result of decoding a notation string. Board and the other
// positional fields are meaningful only when Valid is true; BoardValid
// alone means the placement grid decoded cleanly (enough to display) but a
// semantic check failed.
type Record struct {
	Input      string
	Valid      bool
	BoardValid bool

	Board          *board.Board
	SideToMove     board.Color
	HalfMoveClock  int
	FullMoveNumber int
}

// String returns the (whitespace-normalized) input the record was decoded
// from.
func (r Record) String() string {
	return r.Input
}

// Parse decodes a notation string into a Record. It never returns an
// error; check Valid.
func Parse(s string) Record {
	fields := strings.Fields(s)
	rec := Record{Input: strings.Join(fields, " ")}

	if len(fields) != 6 {
		return rec
	}

	b := board.NewBoard()
	if !parsePlacement(b, fields[0]) {
		return rec
	}

	switch fields[1] {
	case "w":
		rec.SideToMove = board.White
	case "b":
		rec.SideToMove = board.Black
	default:
		return rec
	}

	rights, ok := parseRights(fields[2])
	if !ok {
		return rec
	}
	b.SetRights(rights)

	epFile, ok := parseEnPassant(fields[3])
	if !ok {
		return rec
	}
	b.SetEnPassantFile(epFile)

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return rec
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 0 {
		return rec
	}

	rec.Board = b
	rec.HalfMoveClock = half
	rec.FullMoveNumber = full
	rec.BoardValid = true
	rec.Valid = checkSemantics(b)
	return rec
}

// parsePlacement expands the placement field into the grid. Each of the 8
// rows must expand to exactly 8 cells of valid characters.
func parsePlacement(b *board.Board, placement string) bool {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return false
	}

	for i, row := range rows {
		rank := 7 - i // notation starts from rank 8
		file := 0

		for j := 0; j < len(row); j++ {
			c := row[j]
			if file > 7 {
				return false
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := board.PieceFromChar(c)
			if p == board.NoPiece {
				return false
			}
			b.Set(board.NewSquare(file, rank), p)
			file++
		}

		if file != 8 {
			return false
		}
	}

	return true
}

func parseRights(s string) (board.CastlingRights, bool) {
	if s == "-" {
		return board.NoCastling, true
	}
	var rights board.CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			rights |= board.WhiteKingSide
		case 'Q':
			rights |= board.WhiteQueenSide
		case 'k':
			rights |= board.BlackKingSide
		case 'q':
			rights |= board.BlackQueenSide
		default:
			return board.NoCastling, false
		}
	}
	return rights, true
}

// parseEnPassant accepts "-", a file letter, or a full target square. Only
// the file matters to the board; the rank is implied by the side to move.
func parseEnPassant(s string) (int, bool) {
	if s == "-" {
		return -1, true
	}
	if len(s) != 1 && len(s) != 2 {
		return -1, false
	}
	file := int(s[0] - 'a')
	if file < 0 || file > 7 {
		return -1, false
	}
	if len(s) == 2 && (s[1] < '1' || s[1] > '8') {
		return -1, false
	}
	return file, true
}

// checkSemantics runs the piece-level checks a displayable board still has
// to pass before the engine will play on it.
func checkSemantics(b *board.Board) bool {
	var kings [2]int
	var kingSq [2]board.Square

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := board.NewSquare(file, rank)
			p := b.At(sq)
			if p == board.NoPiece {
				continue
			}
			if p.Type() == board.King {
				kings[p.Color()]++
				kingSq[p.Color()] = sq
			}
			if p.Type() == board.Pawn && (rank == 0 || rank == 7) {
				return false
			}
		}
	}

	// Exactly one king per side.
	if kings[board.White] != 1 || kings[board.Black] != 1 {
		return false
	}

	// Opposing kings may not stand next to nor diagonal from each other.
	d := kingSq[board.White].Add(kingSq[board.Black].Scale(-1))
	if abs(d.File) <= 1 && abs(d.Rank) <= 1 {
		return false
	}

	return true
}

// Encode serializes a position into canonical notation: ranks walked high
// to low with empty runs length-encoded, then the remaining five fields in
// fixed order. Encoding a Record parsed from a canonical string reproduces
// that string.
func Encode(b *board.Board, stm board.Color, half, full int) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.At(board.NewSquare(file, rank))
			if p == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if stm == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Rights().String())

	sb.WriteByte(' ')
	sb.WriteString(enPassantTarget(b, stm))

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(half))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(full))

	return sb.String()
}

// enPassantTarget renders the square behind the just-double-advanced pawn.
// The pawn belongs to the side that moved last, so the target rank follows
// from the side to move.
func enPassantTarget(b *board.Board, stm board.Color) string {
	file := b.EnPassantFile()
	if file < 0 {
		return "-"
	}
	rank := 2
	if stm == board.White {
		rank = 5
	}
	return board.NewSquare(file, rank).String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
