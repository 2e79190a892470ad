package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testBoard places the given pieces on an otherwise empty board with no
// castling rights. Castling tests grant rights explicitly.
func testBoard(t *testing.T, pieces map[string]Piece) *Board {
	t.Helper()
	b := NewBoard()
	b.SetRights(NoCastling)
	for name, p := range pieces {
		b.Set(sq(t, name), p)
	}
	return b
}

func TestPseudoMovesStartingPosition(t *testing.T) {
	b := StartingBoard()

	tests := []struct {
		from string
		want []string
	}{
		{"b1", []string{"a3", "c3"}},
		{"g1", []string{"f3", "h3"}},
		{"e2", []string{"e3", "e4"}},
		{"a1", nil},
		{"c1", nil},
		{"d1", nil},
		{"e1", nil},
	}

	for _, tt := range tests {
		got := names(b.PseudoMoves(sq(t, tt.from), White))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PseudoMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
		}
	}
}

func TestPseudoMovesWrongSide(t *testing.T) {
	b := StartingBoard()
	if got := b.PseudoMoves(sq(t, "e7"), White); got != nil {
		t.Errorf("asking White for Black's pawn should yield nil, got %v", names(got))
	}
	if got := b.PseudoMoves(sq(t, "e4"), White); got != nil {
		t.Errorf("asking for an empty square should yield nil, got %v", names(got))
	}
}

func TestSlidingMovesStopRules(t *testing.T) {
	b := testBoard(t, map[string]Piece{
		"d4": WhiteRook,
		"b4": WhitePawn,
		"d6": BlackPawn,
	})

	want := []string{"c4", "d1", "d2", "d3", "d5", "d6", "e4", "f4", "g4", "h4"}
	got := names(b.PseudoMoves(sq(t, "d4"), White))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rook moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		epFile int
		from   string
		c      Color
		want   []string
	}{
		{
			name:   "blocked single advance",
			pieces: map[string]Piece{"e2": WhitePawn, "e3": BlackRook},
			epFile: -1,
			from:   "e2",
			c:      White,
			want:   nil,
		},
		{
			name:   "double advance blocked at far square",
			pieces: map[string]Piece{"e2": WhitePawn, "e4": BlackRook},
			epFile: -1,
			from:   "e2",
			c:      White,
			want:   []string{"e3"},
		},
		{
			name:   "diagonal captures",
			pieces: map[string]Piece{"e4": WhitePawn, "d5": BlackPawn, "f5": BlackKnight, "e5": BlackRook},
			epFile: -1,
			from:   "e4",
			c:      White,
			want:   []string{"d5", "f5"},
		},
		{
			name:   "en passant capture available",
			pieces: map[string]Piece{"e5": WhitePawn, "d5": BlackPawn},
			epFile: 3,
			from:   "e5",
			c:      White,
			want:   []string{"d6", "e6"},
		},
		{
			name:   "en passant needs the capture rank",
			pieces: map[string]Piece{"e4": WhitePawn, "d5": BlackPawn},
			epFile: 3,
			from:   "e4",
			c:      White,
			want:   []string{"d5", "e5"},
		},
		{
			name:   "black en passant",
			pieces: map[string]Piece{"d4": BlackPawn, "e4": WhitePawn},
			epFile: 4,
			from:   "d4",
			c:      Black,
			want:   []string{"d3", "e3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard(t, tt.pieces)
			b.SetEnPassantFile(tt.epFile)
			got := names(b.PseudoMoves(sq(t, tt.from), tt.c))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pawn moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLegalMovesFromPin(t *testing.T) {
	b := testBoard(t, map[string]Piece{
		"e1": WhiteKing,
		"e2": WhiteRook,
		"e8": BlackQueen,
		"a8": BlackKing,
	})

	// The rook is pinned to the e-file: it may slide along the pin,
	// including capturing the pinner, but never sideways.
	want := []string{"e3", "e4", "e5", "e6", "e7", "e8"}
	got := names(b.LegalMovesFrom(sq(t, "e2"), White))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pinned rook moves mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesFromMustResolveCheck(t *testing.T) {
	b := testBoard(t, map[string]Piece{
		"e1": WhiteKing,
		"e8": BlackRook,
		"a8": BlackKing,
		"h2": WhiteKnight,
	})

	// The knight cannot help against the e-file rook from h2.
	if got := b.LegalMovesFrom(sq(t, "h2"), White); len(got) != 0 {
		t.Errorf("knight moves should all be illegal while in check, got %v", names(got))
	}

	// The king must step off the e-file.
	want := []string{"d1", "d2", "f1", "f2"}
	got := names(b.LegalMovesFrom(sq(t, "e1"), White))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("king escape squares mismatch (-want +got):\n%s", diff)
	}
}

func TestCastlingAvailability(t *testing.T) {
	base := map[string]Piece{
		"e1": WhiteKing,
		"a1": WhiteRook,
		"h1": WhiteRook,
		"e8": BlackKing,
	}

	t.Run("both sides open", func(t *testing.T) {
		b := testBoard(t, base)
		b.SetRights(WhiteKingSide | WhiteQueenSide)
		want := []string{"c1", "g1"}
		if diff := cmp.Diff(want, names(b.CastleMoves(White))); diff != "" {
			t.Errorf("castle moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rights revoked", func(t *testing.T) {
		b := testBoard(t, base)
		b.SetRights(NoCastling)
		if got := b.CastleMoves(White); len(got) != 0 {
			t.Errorf("no rights should mean no castle moves, got %v", names(got))
		}
	})

	t.Run("kingside path occupied", func(t *testing.T) {
		b := testBoard(t, base)
		b.SetRights(WhiteKingSide | WhiteQueenSide)
		b.Set(sq(t, "f1"), WhiteBishop)
		if diff := cmp.Diff([]string{"c1"}, names(b.CastleMoves(White))); diff != "" {
			t.Errorf("castle moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("queenside path occupied", func(t *testing.T) {
		// b1 sits between king and rook, so even the rook-only square
		// must be empty.
		b := testBoard(t, base)
		b.SetRights(WhiteKingSide | WhiteQueenSide)
		b.Set(sq(t, "b1"), WhiteKnight)
		if diff := cmp.Diff([]string{"g1"}, names(b.CastleMoves(White))); diff != "" {
			t.Errorf("castle moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cannot castle out of check", func(t *testing.T) {
		b := testBoard(t, base)
		b.SetRights(WhiteKingSide | WhiteQueenSide)
		b.Set(sq(t, "e5"), BlackRook)
		if got := b.CastleMoves(White); len(got) != 0 {
			t.Errorf("castling out of check must be illegal, got %v", names(got))
		}
	})

	t.Run("cannot castle through an attacked square", func(t *testing.T) {
		b := testBoard(t, base)
		b.SetRights(WhiteKingSide | WhiteQueenSide)
		b.Set(sq(t, "f5"), BlackRook)
		if diff := cmp.Diff([]string{"c1"}, names(b.CastleMoves(White))); diff != "" {
			t.Errorf("castle moves mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rook path square may be attacked queenside", func(t *testing.T) {
		// b1 is crossed only by the rook, so an attack on it does not
		// block queenside castling.
		b := testBoard(t, base)
		b.SetRights(WhiteQueenSide)
		b.Set(sq(t, "b5"), BlackRook)
		if diff := cmp.Diff([]string{"c1"}, names(b.CastleMoves(White))); diff != "" {
			t.Errorf("castle moves mismatch (-want +got):\n%s", diff)
		}
	})
}
