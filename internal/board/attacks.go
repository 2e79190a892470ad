package board

// IsAttacked reports whether side `by` attacks sq. It re-derives, for each
// enemy piece type, whether that type's attack pattern from some
// enemy-occupied square reaches sq. This is deliberately independent of
// PseudoMoves: attack projection and move generation have different
// stopping rules at the target square (a pawn's diagonal attacks exist
// whether or not the square is capturable, advances never attack).
func (b *Board) IsAttacked(sq Square, by Color) bool {
	// Knights jump, so a fixed-offset probe suffices.
	for _, off := range knightOffsets {
		if p := sq.Add(off); p.Valid() {
			if pc := b.At(p); pc.IsSide(by) && pc.Type() == Knight {
				return true
			}
		}
	}

	// Sliders: walk each ray to the first occupied square and test its
	// identity. Queens attack along both direction sets.
	if b.rayAttacked(sq, by, rookDirections, Rook) {
		return true
	}
	if b.rayAttacked(sq, by, bishopDirections, Bishop) {
		return true
	}

	// Pawns attack the two diagonals toward their own direction of
	// travel, so probe backwards from the target square.
	for _, df := range [2]int{1, -1} {
		p := sq.Add(Square{df, -pawnDir(by)})
		if !p.Valid() {
			continue
		}
		if pc := b.At(p); pc.IsSide(by) && pc.Type() == Pawn {
			return true
		}
	}

	// Enemy king adjacency.
	for _, off := range allDirections {
		if p := sq.Add(off); p.Valid() {
			if pc := b.At(p); pc.IsSide(by) && pc.Type() == King {
				return true
			}
		}
	}

	return false
}

// rayAttacked walks dirs from sq, stopping at the first occupied square,
// and reports whether that square holds an enemy piece of type pt or an
// enemy queen.
func (b *Board) rayAttacked(sq Square, by Color, dirs []Square, pt PieceType) bool {
	for _, dir := range dirs {
		for scale := 1; scale < 8; scale++ {
			ns := sq.Add(dir.Scale(scale))
			if !ns.Valid() {
				break
			}
			pc := b.At(ns)
			if pc == NoPiece {
				continue
			}
			if pc.IsSide(by) && (pc.Type() == pt || pc.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether side c's king is attacked. A board with no king
// for side c is never in check; boards that reached their state through
// legal play always have one (the notation codec enforces it on import).
func (b *Board) InCheck(c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return b.IsAttacked(king, c.Other())
}
