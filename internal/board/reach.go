package board

import "sort"

// Direction vectors shared by move generation and attack detection.
// The first four are the orthogonals, the last four the diagonals.
var allDirections = [8]Square{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var (
	rookDirections   = allDirections[0:4]
	bishopDirections = allDirections[4:8]
)

// Knights move in an L and can jump over pieces.
var knightOffsets = [8]Square{
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
}

func sortSquares(s []Square) []Square {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	return s
}

// rayReach extends each direction from sq to the board edge.
func rayReach(sq Square, dirs []Square) []Square {
	var reach []Square
	for _, dir := range dirs {
		for scale := 1; scale < 8; scale++ {
			ns := sq.Add(dir.Scale(scale))
			if !ns.Valid() {
				break
			}
			reach = append(reach, ns)
		}
	}
	return sortSquares(reach)
}

// RookReach returns every square a rook on sq could reach on an empty
// board. Like the other reach functions it ignores occupancy entirely; the
// Board's generators apply the occupancy-aware stopping rules.
func RookReach(sq Square) []Square {
	return rayReach(sq, rookDirections)
}

// BishopReach returns every square a bishop on sq could reach on an empty
// board.
func BishopReach(sq Square) []Square {
	return rayReach(sq, bishopDirections)
}

// QueenReach returns every square a queen on sq could reach on an empty
// board.
func QueenReach(sq Square) []Square {
	return rayReach(sq, allDirections[:])
}

// KnightReach returns the valid knight destinations from sq.
func KnightReach(sq Square) []Square {
	var reach []Square
	for _, off := range knightOffsets {
		if ns := sq.Add(off); ns.Valid() {
			reach = append(reach, ns)
		}
	}
	return sortSquares(reach)
}

// KingReach returns the valid adjacent squares of sq.
func KingReach(sq Square) []Square {
	var reach []Square
	for _, off := range allDirections {
		if ns := sq.Add(off); ns.Valid() {
			reach = append(reach, ns)
		}
	}
	return sortSquares(reach)
}

// PawnReach returns the forward advance squares of a pawn of side c on sq:
// one step forward, plus two from the side's home rank. Captures are not
// included; the diagonal squares only become reachable against board
// occupancy, so they live in the Board's pawn generator.
func PawnReach(sq Square, c Color) []Square {
	var reach []Square
	one := sq.Add(Square{0, pawnDir(c)})
	if one.Valid() {
		reach = append(reach, one)
		if sq.Rank == pawnHomeRank(c) {
			if two := sq.Add(Square{0, 2 * pawnDir(c)}); two.Valid() {
				reach = append(reach, two)
			}
		}
	}
	return sortSquares(reach)
}
