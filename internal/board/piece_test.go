package board

import "testing"

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt {
				t.Errorf("NewPiece(%v, %v).Type() = %v", pt, c, p.Type())
			}
			if p.Color() != c {
				t.Errorf("NewPiece(%v, %v).Color() = %v", pt, c, p.Color())
			}
		}
	}

	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece(NoPieceType, White) should be NoPiece")
	}
	if NoPiece.Type() != NoPieceType || NoPiece.Color() != NoColor {
		t.Error("NoPiece should decode to NoPieceType/NoColor")
	}
}

func TestPieceFromChar(t *testing.T) {
	chars := "PNBRQKpnbrqk"
	for i := 0; i < len(chars); i++ {
		p := PieceFromChar(chars[i])
		if p == NoPiece {
			t.Errorf("PieceFromChar(%c) = NoPiece", chars[i])
			continue
		}
		if p.String() != string(chars[i]) {
			t.Errorf("PieceFromChar(%c).String() = %q", chars[i], p.String())
		}
	}

	for _, c := range []byte{'x', ' ', '1', '-'} {
		if PieceFromChar(c) != NoPiece {
			t.Errorf("PieceFromChar(%c) should be NoPiece", c)
		}
	}
}

func TestPieceSides(t *testing.T) {
	if !WhiteKnight.IsSide(White) || WhiteKnight.IsSide(Black) {
		t.Error("WhiteKnight side checks failed")
	}
	if !WhiteKnight.IsOpponent(Black) || WhiteKnight.IsOpponent(White) {
		t.Error("WhiteKnight opponent checks failed")
	}
	if NoPiece.IsSide(White) || NoPiece.IsSide(Black) || NoPiece.IsOpponent(White) {
		t.Error("NoPiece belongs to no side")
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other should flip colors")
	}
}
