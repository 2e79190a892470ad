package board

import "testing"

func TestNewBoardIsEmpty(t *testing.T) {
	var zero Piece
	if zero != NoPiece {
		t.Fatal("the zero value of Piece must be the empty cell")
	}

	b := NewBoard()
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := NewSquare(file, rank)
			if got := b.At(sq); got != NoPiece {
				t.Fatalf("new board should be empty, %s holds %v", sq, got)
			}
		}
	}
	if b.Rights() != AllCastling {
		t.Error("new board should hold all castling rights")
	}
	if b.EnPassantFile() != -1 {
		t.Error("new board should have no en passant eligibility")
	}
}

func TestStartingBoardSetup(t *testing.T) {
	b := StartingBoard()

	// The middle four ranks are empty.
	for file := 0; file < 8; file++ {
		for rank := 2; rank <= 5; rank++ {
			sq := NewSquare(file, rank)
			if got := b.At(sq); got != NoPiece {
				t.Errorf("%s should be empty, holds %v", sq, got)
			}
		}
		if b.At(NewSquare(file, 1)) != WhitePawn {
			t.Errorf("file %d rank 2 should hold a white pawn", file)
		}
		if b.At(NewSquare(file, 6)) != BlackPawn {
			t.Errorf("file %d rank 7 should hold a black pawn", file)
		}
	}

	if b.At(NewSquare(4, 0)) != WhiteKing || b.At(NewSquare(4, 7)) != BlackKing {
		t.Error("kings should start on the e-file")
	}
	if b.At(NewSquare(0, 0)) != WhiteRook || b.At(NewSquare(7, 7)) != BlackRook {
		t.Error("rooks should start in the corners")
	}
}
