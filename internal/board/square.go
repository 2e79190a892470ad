// Package board implements the chess rules engine: an 8x8 mailbox board
// with move generation, attack detection, legality filtering and move
// application including castling, en passant and promotion side effects.
package board

import "fmt"

// Square is a file/rank pair. File 0 is the a-file, rank 0 is White's back
// rank. Vector arithmetic (Add, Scale) may produce coordinates outside the
// board; callers must check Valid before indexing a Board with the result.
type Square struct {
	File int
	Rank int
}

// NoSquare is the invalid sentinel square.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic notation (e.g. "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return Square{File: file, Rank: rank}, nil
}

// Valid returns true if the square lies on the board.
func (sq Square) Valid() bool {
	return sq.File >= 0 && sq.File < 8 && sq.Rank >= 0 && sq.Rank < 8
}

// Add returns the square offset by d.
func (sq Square) Add(d Square) Square {
	return Square{File: sq.File + d.File, Rank: sq.Rank + d.Rank}
}

// Scale returns the square's components multiplied by n. Used to project
// sliding-piece rays from a direction vector.
func (sq Square) Scale(n int) Square {
	return Square{File: sq.File * n, Rank: sq.Rank * n}
}

// Less orders squares file-major, then by rank. Move lists are sorted with
// it so that generation output is deterministic.
func (sq Square) Less(o Square) bool {
	if sq.File != o.File {
		return sq.File < o.File
	}
	return sq.Rank < o.Rank
}

// String returns the algebraic notation for the square (e.g. "e4").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File, '1'+sq.Rank)
}
