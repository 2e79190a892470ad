package board

// Apply moves the piece of side c from one square to another, then handles
// the special-case side effects in a fixed order:
//
//  1. a king moving two files relocates the corresponding rook;
//  2. a pawn moving diagonally onto a square that was empty before the
//     move captured en passant, so the passed pawn is removed;
//  3. all en-passant flags are cleared, then set for this file if the move
//     was a pawn double advance;
//  4. castling rights are revoked for king moves and for moves touching
//     the home-corner squares.
//
// Steps 1-3 must run in this order: 2 reads the pre-clear en-passant flags
// and the post-move occupancy. Step 4's sub-rules are idempotent, so their
// ordering does not matter. Apply does not validate the move and never
// performs promotion; the caller overwrites the destination piece when a
// pawn reaches the back rank.
func (b *Board) Apply(from, to Square, c Color) {
	moved := b.At(from)
	destWasEmpty := b.At(to) == NoPiece

	b.Set(to, moved)
	b.Set(from, NoPiece)

	// Castling: the king's two-file move carries the rook over.
	rank := BackRank(c)
	if moved.Type() == King && abs(to.File-from.File) == 2 {
		if to.File > from.File {
			b.Set(Square{7, rank}, NoPiece)
			b.Set(Square{5, rank}, NewPiece(Rook, c))
		} else {
			b.Set(Square{0, rank}, NoPiece)
			b.Set(Square{3, rank}, NewPiece(Rook, c))
		}
	}

	// A pawn landing diagonally on a previously empty square captured en
	// passant; the captured pawn sits one rank behind the destination.
	if moved.Type() == Pawn && from.File != to.File && destWasEmpty && b.epFiles[to.File] {
		b.Set(Square{to.File, to.Rank - pawnDir(c)}, NoPiece)
	}

	// Reset eligibility every ply; at most one file is set per turn.
	b.epFiles = [8]bool{}
	if moved.Type() == Pawn && abs(to.Rank-from.Rank) == 2 {
		b.epFiles[to.File] = true
	}

	// Rights revocation is one-way; clearing a cleared bit is harmless.
	if moved.Type() == King {
		b.rights &^= kingSideRight(c) | queenSideRight(c)
	}

	ownRank, oppRank := BackRank(c), BackRank(c.Other())
	if from == (Square{0, ownRank}) {
		b.rights &^= queenSideRight(c)
	}
	if from == (Square{7, ownRank}) {
		b.rights &^= kingSideRight(c)
	}
	// Landing on an opponent home corner revokes that corner's right even
	// when the piece is not capturing a rook; a later departure does not
	// restore it.
	if to == (Square{0, oppRank}) {
		b.rights &^= queenSideRight(c.Other())
	}
	if to == (Square{7, oppRank}) {
		b.rights &^= kingSideRight(c.Other())
	}
}
