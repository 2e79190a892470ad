package advisor

import "testing"

func TestParseBestMove(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"bestmove e2e4", "e2e4", true},
		{"bestmove e7e8q ponder e8d8", "e7e8q", true},
		{"bestmove (none)", "", false},
		{"bestmove 0000", "", false},
		{"bestmove", "", false},
		{"info depth 10 score cp 35", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseBestMove(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseBestMove(%q) = %q, %v; want %q, %v",
				tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
