package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(squares []Square) []string {
	if len(squares) == 0 {
		return nil
	}
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	parsed, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestKnightReach(t *testing.T) {
	tests := []struct {
		from string
		want []string
	}{
		{"g1", []string{"e2", "f3", "h3"}},
		{"a1", []string{"b3", "c2"}},
		{"d4", []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
	}

	for _, tt := range tests {
		got := names(KnightReach(sq(t, tt.from)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("KnightReach(%s) mismatch (-want +got):\n%s", tt.from, diff)
		}
	}
}

func TestSliderReachCounts(t *testing.T) {
	tests := []struct {
		from   string
		rook   int
		bishop int
	}{
		{"a1", 14, 7},
		{"d4", 14, 13},
		{"h8", 14, 7},
	}

	for _, tt := range tests {
		from := sq(t, tt.from)
		if got := len(RookReach(from)); got != tt.rook {
			t.Errorf("len(RookReach(%s)) = %d, want %d", tt.from, got, tt.rook)
		}
		if got := len(BishopReach(from)); got != tt.bishop {
			t.Errorf("len(BishopReach(%s)) = %d, want %d", tt.from, got, tt.bishop)
		}
		if got := len(QueenReach(from)); got != tt.rook+tt.bishop {
			t.Errorf("len(QueenReach(%s)) = %d, want %d", tt.from, got, tt.rook+tt.bishop)
		}
	}
}

func TestKingReach(t *testing.T) {
	got := names(KingReach(sq(t, "a1")))
	want := []string{"a2", "b1", "b2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KingReach(a1) mismatch (-want +got):\n%s", diff)
	}

	if got := len(KingReach(sq(t, "e4"))); got != 8 {
		t.Errorf("len(KingReach(e4)) = %d, want 8", got)
	}
}

func TestPawnReach(t *testing.T) {
	tests := []struct {
		from string
		c    Color
		want []string
	}{
		{"e2", White, []string{"e3", "e4"}},
		{"e3", White, []string{"e4"}},
		{"d7", Black, []string{"d5", "d6"}},
		{"d6", Black, []string{"d5"}},
	}

	for _, tt := range tests {
		got := names(PawnReach(sq(t, tt.from), tt.c))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PawnReach(%s, %v) mismatch (-want +got):\n%s", tt.from, tt.c, diff)
		}
	}
}
