package board

// PseudoMoves generates the pseudo-legal destinations for the piece of
// side c on sq: every square its movement rule reaches, ignoring whether
// the move exposes the mover's own king. Returns nil if sq does not hold a
// piece of side c. Output is sorted.
func (b *Board) PseudoMoves(sq Square, c Color) []Square {
	p := b.At(sq)
	if !p.IsSide(c) {
		return nil
	}

	switch p.Type() {
	case Pawn:
		return b.pawnMoves(sq, c)
	case Knight:
		return b.offsetMoves(sq, c, knightOffsets[:])
	case Bishop:
		return b.slidingMoves(sq, c, bishopDirections)
	case Rook:
		return b.slidingMoves(sq, c, rookDirections)
	case Queen:
		return b.slidingMoves(sq, c, allDirections[:])
	case King:
		return b.offsetMoves(sq, c, allDirections[:])
	}
	return nil
}

// slidingMoves walks each ray square by square: through empty squares,
// stopping short of a friendly piece, stopping on (and including) an
// opposing piece.
func (b *Board) slidingMoves(sq Square, c Color, dirs []Square) []Square {
	var moves []Square
	for _, dir := range dirs {
		for scale := 1; scale < 8; scale++ {
			ns := sq.Add(dir.Scale(scale))
			if !ns.Valid() || b.At(ns).IsSide(c) {
				break
			}
			moves = append(moves, ns)
			if b.At(ns).IsOpponent(c) {
				break
			}
		}
	}
	return sortSquares(moves)
}

// offsetMoves filters a fixed offset set (knight or king) by validity and
// by "not occupied by a friendly piece".
func (b *Board) offsetMoves(sq Square, c Color, offsets []Square) []Square {
	var moves []Square
	for _, off := range offsets {
		ns := sq.Add(off)
		if ns.Valid() && !b.At(ns).IsSide(c) {
			moves = append(moves, ns)
		}
	}
	return sortSquares(moves)
}

// pawnMoves generates pawn advances and captures. Advances need empty
// squares (the double advance also needs the single-step square empty and
// the home rank). Diagonals need an opponent, or an empty square on an
// en-passant-eligible file with the pawn on the rank adjacent to the
// double-advanced pawn.
func (b *Board) pawnMoves(sq Square, c Color) []Square {
	var moves []Square
	dir := pawnDir(c)

	one := sq.Add(Square{0, dir})
	if one.Valid() && b.At(one) == NoPiece {
		moves = append(moves, one)

		if sq.Rank == pawnHomeRank(c) {
			if two := sq.Add(Square{0, 2 * dir}); two.Valid() && b.At(two) == NoPiece {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range [2]int{1, -1} {
		cap := sq.Add(Square{df, dir})
		if !cap.Valid() {
			continue
		}
		if b.At(cap).IsOpponent(c) {
			moves = append(moves, cap)
			continue
		}
		if b.At(cap) == NoPiece && b.epFiles[cap.File] && sq.Rank == epCaptureRank(c) {
			moves = append(moves, cap)
		}
	}

	return sortSquares(moves)
}

// epCaptureRank is the rank a pawn of side c must stand on to capture en
// passant: the rank the opposing double advance just landed on.
func epCaptureRank(c Color) int {
	if c == White {
		return 4
	}
	return 3
}

// rawMove relocates a piece with no side effects. It is the move shape
// used by legality simulation, mirroring how a hypothetical move is tested
// for king safety.
func (b *Board) rawMove(from, to Square) {
	b.Set(to, b.At(from))
	b.Set(from, NoPiece)
}

// LegalMovesFrom returns the pseudo-moves of the piece on sq minus those
// that would leave side c's own king in check, determined by applying each
// candidate on a scratch copy of the board. Castling is not included; see
// CastleMoves.
func (b *Board) LegalMovesFrom(sq Square, c Color) []Square {
	var legal []Square
	for _, to := range b.PseudoMoves(sq, c) {
		probe := b.Clone()
		probe.rawMove(sq, to)
		if !probe.InCheck(c) {
			legal = append(legal, to)
		}
	}
	return legal
}

// CanCastleKingside reports whether side c may castle kingside right now:
// the right is still held, the squares between king and rook are empty,
// and the king is not attacked on its start square, the square it passes
// through, or its destination.
func (b *Board) CanCastleKingside(c Color) bool {
	if !b.rights.Has(kingSideRight(c)) {
		return false
	}
	rank := BackRank(c)
	if !b.squaresEmpty(Square{5, rank}, Square{6, rank}) {
		return false
	}
	return b.castlePathSafe(Square{4, rank}, c,
		Square{4, rank}, Square{5, rank}, Square{6, rank})
}

// CanCastleQueenside is the queenside counterpart of CanCastleKingside.
// Three squares must be empty but only three king squares are checked for
// attack: the b-file square is passed by the rook, not the king.
func (b *Board) CanCastleQueenside(c Color) bool {
	if !b.rights.Has(queenSideRight(c)) {
		return false
	}
	rank := BackRank(c)
	if !b.squaresEmpty(Square{3, rank}, Square{2, rank}, Square{1, rank}) {
		return false
	}
	return b.castlePathSafe(Square{4, rank}, c,
		Square{4, rank}, Square{3, rank}, Square{2, rank})
}

// CastleMoves returns the legal castling destinations of side c's king.
func (b *Board) CastleMoves(c Color) []Square {
	var moves []Square
	rank := BackRank(c)
	if b.CanCastleKingside(c) {
		moves = append(moves, Square{6, rank})
	}
	if b.CanCastleQueenside(c) {
		moves = append(moves, Square{2, rank})
	}
	return sortSquares(moves)
}

func (b *Board) squaresEmpty(sqs ...Square) bool {
	for _, sq := range sqs {
		if b.At(sq) != NoPiece {
			return false
		}
	}
	return true
}

// castlePathSafe simulates the king standing on each square of its path
// and rejects the path if any placement leaves it in check.
func (b *Board) castlePathSafe(kingFrom Square, c Color, path ...Square) bool {
	for _, sq := range path {
		probe := b.Clone()
		probe.Set(kingFrom, NoPiece)
		probe.Set(sq, NewPiece(King, c))
		if probe.InCheck(c) {
			return false
		}
	}
	return true
}
