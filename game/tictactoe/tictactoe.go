package tictactoe

import (
	"fmt"
	"strings"

	"gamesearch/game"
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Cell is the content of one square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return "_"
	}
}

// Move places the mover's mark at (Row, Col), both 0..2.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// Board is an immutable 3x3 position stored row-major, with the side to move.
type Board struct {
	Cells [9]Cell
	Turn  Cell
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// NewBoard returns the empty board with X to move.
func NewBoard() Board {
	return Board{Turn: X}
}

// Parse reads a board from 9 cells in row-major order ('X', 'O', '_' or '.'),
// ignoring whitespace and '/'. turn is the player to move.
func Parse(cells string, turn string) (Board, error) {
	var b Board
	i := 0
	for _, r := range cells {
		switch r {
		case ' ', '/', '\n', '\t':
			continue
		}
		if i >= len(b.Cells) {
			return Board{}, fmt.Errorf("too many cells in %q", cells)
		}
		switch r {
		case 'X', 'x':
			b.Cells[i] = X
		case 'O', 'o':
			b.Cells[i] = O
		case '_', '.':
			b.Cells[i] = Empty
		default:
			return Board{}, fmt.Errorf("unexpected cell %q in %q", r, cells)
		}
		i++
	}
	if i != len(b.Cells) {
		return Board{}, fmt.Errorf("expected 9 cells, got %d", i)
	}
	switch turn {
	case PlayerX:
		b.Turn = X
	case PlayerO:
		b.Turn = O
	default:
		return Board{}, fmt.Errorf("unknown player %q", turn)
	}
	return b, nil
}

// Winner returns the mark owning a full line, or Empty.
func (b Board) Winner() Cell {
	for _, l := range lines {
		c := b.Cells[l[0]]
		if c != Empty && c == b.Cells[l[1]] && c == b.Cells[l[2]] {
			return c
		}
	}
	return Empty
}

func (b Board) full() bool {
	for _, c := range b.Cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString(" / ")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Cells[r*3+c].String())
		}
	}
	return sb.String()
}

// Game implements game.Game for tic-tac-toe. Utility is +1 for a win, -1 for
// a loss and 0 for a draw.
type Game struct{}

var (
	_ game.Game[Board, Move] = Game{}
	_ game.TwoPlayer         = Game{}
)

func New() Game {
	return Game{}
}

func (Game) ToMove(b Board) string {
	return b.Turn.String()
}

func (Game) Actions(b Board) []Move {
	if b.Winner() != Empty {
		return nil
	}
	moves := make([]Move, 0, 9)
	for i, c := range b.Cells {
		if c == Empty {
			moves = append(moves, Move{Row: i / 3, Col: i % 3})
		}
	}
	return moves
}

// Result places the mark of the player to move. Playing on an occupied or
// out-of-range square panics.
func (Game) Result(b Board, m Move) Board {
	if m.Row < 0 || m.Row > 2 || m.Col < 0 || m.Col > 2 {
		panic(fmt.Sprintf("move %v out of range", m))
	}
	idx := m.Row*3 + m.Col
	if b.Cells[idx] != Empty {
		panic(fmt.Sprintf("square %v is occupied", m))
	}
	// Board is a value, so this writes to a copy.
	b.Cells[idx] = b.Turn
	if b.Turn == X {
		b.Turn = O
	} else {
		b.Turn = X
	}
	return b
}

func (Game) TerminalTest(b Board) bool {
	return b.Winner() != Empty || b.full()
}

func (Game) Utility(b Board, player string) float64 {
	w := b.Winner()
	switch {
	case w == Empty:
		return 0
	case w.String() == player:
		return 1
	default:
		return -1
	}
}

func (Game) Opponent(player string) string {
	return Opponent(player)
}

// Opponent returns the other player.
func Opponent(player string) string {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}
