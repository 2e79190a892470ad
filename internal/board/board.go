package board

// CastlingRights is a bitmask of the four castling permissions. Bits only
// ever go from set to cleared; nothing restores a revoked right.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has returns true if every right in r is still held.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// String returns the notation form of the rights ("KQkq", "-", ...).
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var b []byte
	if cr.Has(WhiteKingSide) {
		b = append(b, 'K')
	}
	if cr.Has(WhiteQueenSide) {
		b = append(b, 'Q')
	}
	if cr.Has(BlackKingSide) {
		b = append(b, 'k')
	}
	if cr.Has(BlackQueenSide) {
		b = append(b, 'q')
	}
	return string(b)
}

func kingSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

func queenSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// Board owns the dense 8x8 occupancy grid plus the auxiliary state move
// application maintains: castling rights and the per-file en passant
// eligibility vector. It is the only type allowed to mutate occupancy and
// the sole authority on attack detection and legality.
type Board struct {
	grid    [8][8]Piece // indexed [file][rank]
	rights  CastlingRights
	epFiles [8]bool // pawn on this file just double-advanced
}

// NewBoard creates an empty board with all castling rights held.
func NewBoard() *Board {
	return &Board{rights: AllCastling}
}

// StartingBoard creates a board in the standard starting position.
func StartingBoard() *Board {
	b := NewBoard()

	backRow := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.grid[file][0] = NewPiece(backRow[file], White)
		b.grid[file][1] = WhitePawn
		b.grid[file][6] = BlackPawn
		b.grid[file][7] = NewPiece(backRow[file], Black)
	}

	return b
}

// Clone returns an independent copy of the board. Copies are cheap (the
// grid is 64 small values) and back the simulate-and-discard legality
// checks.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// At returns the piece on sq. The caller must pass a valid square; this is
// a low-level primitive and does not re-check.
func (b *Board) At(sq Square) Piece {
	return b.grid[sq.File][sq.Rank]
}

// Set places p on sq. The caller must pass a valid square.
func (b *Board) Set(sq Square, p Piece) {
	b.grid[sq.File][sq.Rank] = p
}

// Rights returns the current castling rights.
func (b *Board) Rights() CastlingRights {
	return b.rights
}

// SetRights replaces the castling rights. Used when restoring a board from
// an imported position.
func (b *Board) SetRights(cr CastlingRights) {
	b.rights = cr
}

// EnPassantFile returns the file whose pawn just double-advanced, or -1.
// At most one file is eligible at any time.
func (b *Board) EnPassantFile() int {
	for file, set := range b.epFiles {
		if set {
			return file
		}
	}
	return -1
}

// SetEnPassantFile marks file as en-passant eligible, clearing any other.
// Pass a negative file to clear all eligibility.
func (b *Board) SetEnPassantFile(file int) {
	b.epFiles = [8]bool{}
	if file >= 0 && file < 8 {
		b.epFiles[file] = true
	}
}

// FindKing locates the king of side c.
func (b *Board) FindKing(c Color) (Square, bool) {
	king := NewPiece(King, c)
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			if b.grid[file][rank] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return NoSquare, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
