package searcher

import (
	"fmt"

	"gamesearch/game"
	"gamesearch/game/tictactoe"
)

// branch describes a game tree: float64 entries are leaves holding the utility
// for "max", nested branches are internal nodes. The root belongs to "max" and
// the players alternate by depth.
type branch []any

// mockGame is a game given by an explicit tree. States are paths from the root
// ("r", "ra", "rab", ...) and actions are the child states themselves.
type mockGame struct {
	children  map[string][]string
	utilities map[string]float64
}

var _ game.Game[string, string] = (*mockGame)(nil)

func newMockGame(root branch) *mockGame {
	g := &mockGame{children: map[string][]string{}, utilities: map[string]float64{}}
	g.build("r", root)
	return g
}

func (g *mockGame) build(state string, b branch) {
	for i, child := range b {
		name := fmt.Sprintf("%s%c", state, 'a'+i)
		g.children[state] = append(g.children[state], name)
		switch c := child.(type) {
		case float64:
			g.utilities[name] = c
		case branch:
			g.build(name, c)
		default:
			panic(fmt.Sprintf("unexpected tree entry %T", child))
		}
	}
}

func (g *mockGame) ToMove(state string) string {
	if len(state)%2 == 1 {
		return "max"
	}
	return "min"
}

func (g *mockGame) Actions(state string) []string {
	return g.children[state]
}

func (g *mockGame) Result(state string, action string) string {
	return action
}

func (g *mockGame) TerminalTest(state string) bool {
	return len(g.children[state]) == 0
}

func (g *mockGame) Utility(state string, player string) float64 {
	if player == "max" {
		return g.utilities[state]
	}
	return -g.utilities[state]
}

// heuristicGame adds the plain heuristic capability to mockGame.
type heuristicGame struct {
	*mockGame
	values map[string]float64
	calls  int
}

func (g *heuristicGame) EvaluateHeuristic(state string) float64 {
	g.calls++
	return g.values[state]
}

// perspectiveGame offers both capabilities; the plain one disagrees on purpose.
type perspectiveGame struct {
	*heuristicGame
}

func (g *perspectiveGame) EvaluateHeuristic(state string) float64 {
	return 1
}

func (g *perspectiveGame) EvaluateHeuristicFor(state string, player string) float64 {
	g.calls++
	if player == "max" {
		return g.values[state]
	}
	return -g.values[state]
}

// textbookTree is the two-ply example whose minimax value is 3 with the
// first move, and where alpha-beta skips two of the nine leaves.
var textbookTree = branch{
	branch{3.0, 12.0, 8.0},
	branch{2.0, 4.0, 6.0},
	branch{14.0, 5.0, 2.0},
}

func mustParse(cells string, turn string) tictactoe.Board {
	b, err := tictactoe.Parse(cells, turn)
	if err != nil {
		panic(err)
	}
	return b
}

// boardAfterPlies returns every board reachable from the empty board in n
// plies, in action order.
func boardsAfterPlies(n int) []tictactoe.Board {
	g := tictactoe.New()
	boards := []tictactoe.Board{tictactoe.NewBoard()}
	for i := 0; i < n; i++ {
		var next []tictactoe.Board
		for _, b := range boards {
			for _, m := range g.Actions(b) {
				next = append(next, g.Result(b, m))
			}
		}
		boards = next
	}
	return boards
}

var (
	// O wins at once with (1,2); (0,1) also wins by force through a double threat.
	forcedWinBoard = mustParse("X _ X / O O _ / _ _ _", tictactoe.PlayerO)
	forcedWinMoves = []tictactoe.Move{{Row: 0, Col: 1}, {Row: 1, Col: 2}}

	// (1,2) is the only winning move for O.
	singleWinBoard = mustParse("X X _ / O O _ / X _ _", tictactoe.PlayerO)
	singleWinMove  = tictactoe.Move{Row: 1, Col: 2}
)
