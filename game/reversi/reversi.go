package reversi

import (
	"fmt"
	"strings"

	"gamesearch/game"
)

const (
	Size = 8

	PlayerBlack = "black"
	PlayerWhite = "white"
)

// Disc is the content of one square.
type Disc uint8

const (
	Empty Disc = iota
	Black
	White
)

func (d Disc) opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (d Disc) player() string {
	if d == Black {
		return PlayerBlack
	}
	return PlayerWhite
}

func discOf(player string) Disc {
	if player == PlayerBlack {
		return Black
	}
	return White
}

// Move places a disc at (Row, Col). Pass is only legal when the mover has no
// placement but the opponent does.
type Move struct {
	Row int
	Col int
}

var Pass = Move{Row: -1, Col: -1}

func (m Move) String() string {
	if m == Pass {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// Board is an immutable position with the side to move.
type Board struct {
	Cells [Size * Size]Disc
	Turn  Disc
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard returns the standard opening position with black to move.
func NewBoard() Board {
	var b Board
	b.set(3, 3, White)
	b.set(4, 4, White)
	b.set(3, 4, Black)
	b.set(4, 3, Black)
	b.Turn = Black
	return b
}

func (b *Board) set(row, col int, d Disc) {
	b.Cells[row*Size+col] = d
}

func (b Board) At(row, col int) Disc {
	return b.Cells[row*Size+col]
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// flips returns the number of discs captured along each direction if d is
// placed at (row, col).
func (b Board) flips(row, col int, d Disc) (total int, perDir [8]int) {
	if b.At(row, col) != Empty {
		return 0, perDir
	}
	opp := d.opponent()
	for i, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		n := 0
		for onBoard(r, c) && b.At(r, c) == opp {
			r += dir[0]
			c += dir[1]
			n++
		}
		if n > 0 && onBoard(r, c) && b.At(r, c) == d {
			perDir[i] = n
			total += n
		}
	}
	return total, perDir
}

func (b Board) placements(d Disc) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if n, _ := b.flips(row, col, d); n > 0 {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Count returns the number of discs of each colour.
func (b Board) Count() (black, white int) {
	for _, d := range b.Cells {
		switch d {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			switch b.At(row, col) {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Game implements game.Game for Reversi. Utility is +1/-1/0 by final disc count.
type Game struct{}

var (
	_ game.Game[Board, Move]           = Game{}
	_ game.PerspectiveHeuristic[Board] = Game{}
	_ game.TwoPlayer                   = Game{}
)

func New() Game {
	return Game{}
}

func (Game) ToMove(b Board) string {
	return b.Turn.player()
}

func (Game) Actions(b Board) []Move {
	if moves := b.placements(b.Turn); len(moves) > 0 {
		return moves
	}
	if len(b.placements(b.Turn.opponent())) > 0 {
		return []Move{Pass}
	}
	return nil
}

// Result plays m for the side to move. Illegal placements panic.
func (Game) Result(b Board, m Move) Board {
	if m == Pass {
		b.Turn = b.Turn.opponent()
		return b
	}
	if !onBoard(m.Row, m.Col) {
		panic(fmt.Sprintf("move %v out of range", m))
	}
	total, perDir := b.flips(m.Row, m.Col, b.Turn)
	if total == 0 {
		panic(fmt.Sprintf("move %v flips nothing", m))
	}
	b.set(m.Row, m.Col, b.Turn)
	for i, n := range perDir {
		r, c := m.Row, m.Col
		for k := 0; k < n; k++ {
			r += directions[i][0]
			c += directions[i][1]
			b.set(r, c, b.Turn)
		}
	}
	b.Turn = b.Turn.opponent()
	return b
}

func (Game) Opponent(player string) string {
	return discOf(player).opponent().player()
}

func (Game) TerminalTest(b Board) bool {
	return len(b.placements(Black)) == 0 && len(b.placements(White)) == 0
}

func (Game) Utility(b Board, player string) float64 {
	black, white := b.Count()
	diff := black - white
	if discOf(player) == White {
		diff = -diff
	}
	switch {
	case diff > 0:
		return 1
	case diff < 0:
		return -1
	default:
		return 0
	}
}

var corners = [4][2]int{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// EvaluateHeuristicFor scores a position for player in [-1, 1], weighting disc
// parity, mobility and corner ownership. The range keeps cutoff values
// comparable with Utility.
func (Game) EvaluateHeuristicFor(b Board, player string) float64 {
	me := discOf(player)
	opp := me.opponent()

	black, white := b.Count()
	mine, theirs := float64(black), float64(white)
	if me == White {
		mine, theirs = theirs, mine
	}
	parity := normalize(mine, theirs)
	mobility := normalize(float64(len(b.placements(me))), float64(len(b.placements(opp))))

	var myCorners, theirCorners float64
	for _, c := range corners {
		switch b.At(c[0], c[1]) {
		case me:
			myCorners++
		case opp:
			theirCorners++
		}
	}
	corner := normalize(myCorners, theirCorners)

	// Stay strictly inside (-1, 1) so a heuristic never ties a proven result.
	return 0.99 * (0.25*parity + 0.35*mobility + 0.4*corner)
}

// normalize scores value relative to other between -1 and 1.
func normalize(value, other float64) float64 {
	total := value + other
	if total == 0 {
		return 0
	}
	return (value - other) / total
}
