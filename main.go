// chessrules - an interactive console chess game on top of the rules
// engine. Moves are entered in coordinate form ("e2e4", "e7e8q").
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/quillo/chessrules/internal/advisor"
	"github.com/quillo/chessrules/internal/board"
	"github.com/quillo/chessrules/internal/fen"
	"github.com/quillo/chessrules/internal/game"
	"github.com/quillo/chessrules/internal/storage"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = [2][6]string{
	{whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

var (
	enginePath = flag.String("engine", "", "path to an advisory engine binary for the hint command")
	startFEN   = flag.String("fen", "", "start from this position instead of the default board")
	noStore    = flag.Bool("nostore", false, "disable the preferences/saved-game store")
)

func main() {
	flag.Parse()

	g := game.New()
	if *startFEN != "" {
		loaded, err := game.Load(fen.Parse(*startFEN))
		if err != nil {
			log.Fatal(err)
		}
		g = loaded
	}

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.Open()
		if err != nil {
			log.Printf("Warning: storage unavailable: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	var adv *advisor.Advisor
	if *enginePath != "" {
		var err error
		adv, err = advisor.Start(*enginePath)
		if err != nil {
			log.Fatalf("advisor: %v", err)
		}
		defer adv.Close()
	}

	printBoard(g.Snapshot())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", g.SideToMove())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "quit", "exit":
			return
		case "new":
			g = game.New()
			printBoard(g.Snapshot())
		case "fen":
			if len(parts) < 7 {
				fmt.Println("usage: fen <six-field notation string>")
				continue
			}
			loaded, err := game.Load(fen.Parse(strings.Join(parts[1:], " ")))
			if err != nil {
				fmt.Println(err)
				continue
			}
			g = loaded
			printBoard(g.Snapshot())
		case "export":
			fmt.Println(g.FEN())
		case "history":
			fmt.Println(strings.Join(g.History(), " "))
		case "moves":
			if len(parts) != 2 {
				fmt.Println("usage: moves <square>")
				continue
			}
			sq, err := board.ParseSquare(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, d := range g.LegalDestinations(sq) {
				fmt.Print(d, " ")
			}
			fmt.Println()
		case "save":
			if store == nil || len(parts) != 2 {
				fmt.Println("usage: save <name> (requires storage)")
				continue
			}
			err := store.SaveGame(&storage.SavedGame{
				Name:    parts[1],
				FENs:    g.Positions(),
				History: g.History(),
			})
			if err != nil {
				fmt.Println(err)
			}
		case "load":
			if store == nil || len(parts) != 2 {
				fmt.Println("usage: load <name> (requires storage)")
				continue
			}
			saved, err := store.LoadGame(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			restored, err := game.Restore(saved.FENs, saved.History)
			if err != nil {
				fmt.Println(err)
				continue
			}
			g = restored
			printBoard(g.Snapshot())
		case "games":
			if store == nil {
				fmt.Println("storage disabled")
				continue
			}
			names, err := store.ListGames()
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(strings.Join(names, " "))
		case "hint":
			if adv == nil {
				fmt.Println("no advisory engine (start with -engine)")
				continue
			}
			text, err := adv.Suggest(g.FEN())
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("advisor suggests", text)
			tryMove(g, text)
			printBoard(g.Snapshot())
		default:
			if tryMove(g, line) {
				printBoard(g.Snapshot())
			}
		}

		reportState(g)
	}
}

// tryMove decodes coordinate move text and proposes it. Rejections print
// one line and change nothing.
func tryMove(g *game.Game, text string) bool {
	from, to, promo, err := board.ParseMoveText(text)
	if err != nil {
		fmt.Println(err)
		return false
	}
	if g.RequiresPromotion(from, to) && promo == board.NoPieceType {
		fmt.Printf("promotion required: append a piece letter, e.g. %s%sq\n", from, to)
		return false
	}
	if !g.ProposeMove(from, to, promo) {
		fmt.Println("illegal move")
		return false
	}
	return true
}

func reportState(g *game.Game) {
	switch {
	case g.InCheckmate():
		fmt.Printf("checkmate - %s wins\n", g.SideToMove().Other())
	case g.InStalemate():
		fmt.Println("stalemate - draw")
	case g.InCheck():
		fmt.Printf("%s is in check\n", g.SideToMove())
	}
}

// printBoard renders the board rank 8 first with ANSI-shaded squares.
func printBoard(b *board.Board) {
	for rank := 7; rank >= 0; rank-- {
		fmt.Print(rank + 1, " ")
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			fmt.Print(squareString(b.At(sq), (file+rank)%2 == 0))
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}

func squareString(p board.Piece, darkSquare bool) string {
	s := " "
	if p != board.NoPiece {
		s = chessSymbols[p.Color()][p.Type()]
	}
	s += " "

	const escape = "\x1b"
	const fgBlack = 30
	bgColor := 107 // high-intensity white
	if darkSquare {
		bgColor = 47
	}
	return fmt.Sprintf("%s[%s;%sm%s%s[0m",
		escape, strconv.Itoa(fgBlack), strconv.Itoa(bgColor), s, escape)
}
