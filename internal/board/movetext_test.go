package board

import "testing"

func TestParseMoveText(t *testing.T) {
	tests := []struct {
		input string
		from  string
		to    string
		promo PieceType
		ok    bool
	}{
		{"e2e4", "e2", "e4", NoPieceType, true},
		{"g8f6", "g8", "f6", NoPieceType, true},
		{"e7e8q", "e7", "e8", Queen, true},
		{"a2a1n", "a2", "a1", Knight, true},
		{"h7h8b", "h7", "h8", Bishop, true},
		{"b7b8r", "b7", "b8", Rook, true},
		{"e7e8k", "", "", NoPieceType, false},
		{"e7e8Q", "", "", NoPieceType, false},
		{"e2", "", "", NoPieceType, false},
		{"e2e4e5", "", "", NoPieceType, false},
		{"i2i4", "", "", NoPieceType, false},
		{"e2e9", "", "", NoPieceType, false},
		{"", "", "", NoPieceType, false},
	}

	for _, tt := range tests {
		from, to, promo, err := ParseMoveText(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseMoveText(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if from.String() != tt.from || to.String() != tt.to || promo != tt.promo {
			t.Errorf("ParseMoveText(%q) = %v %v %v, want %s %s %v",
				tt.input, from, to, promo, tt.from, tt.to, tt.promo)
		}
	}
}
