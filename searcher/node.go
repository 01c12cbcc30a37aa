package searcher

import "gamesearch/game"

const noParent = -1

// node is one state of the MCTS tree. Nodes live in the tree's arena and refer
// to each other by index: children are owned by their parent, parent is only
// followed during backpropagation.
type node[S any, A comparable] struct {
	state      S
	parent     int
	children   []int
	visits     int
	wins       float64
	player     string // to move at this node
	move       A      // move that produced this node from its parent
	unexplored []A
	terminal   bool
}

// tree is discarded when the search call returns.
type tree[S any, A comparable] struct {
	game  game.Game[S, A]
	nodes []node[S, A]
}

func newTree[S any, A comparable](g game.Game[S, A], state S) *tree[S, A] {
	t := &tree[S, A]{game: g}
	var none A
	t.add(noParent, state, none)
	return t
}

func (t *tree[S, A]) add(parent int, state S, move A) int {
	terminal := t.game.TerminalTest(state)
	var unexplored []A
	if !terminal {
		unexplored = t.game.Actions(state)
	}
	t.nodes = append(t.nodes, node[S, A]{
		state:      state,
		parent:     parent,
		player:     t.game.ToMove(state),
		move:       move,
		unexplored: unexplored,
		terminal:   terminal,
	})
	return len(t.nodes) - 1
}

// expand creates a child for every unexplored move of node i, in action order,
// and returns the number of nodes added.
func (t *tree[S, A]) expand(i int) int {
	moves := t.nodes[i].unexplored
	t.nodes[i].unexplored = nil
	for _, move := range moves {
		state := t.game.Result(t.nodes[i].state, move)
		child := t.add(i, state, move) // may reallocate t.nodes
		t.nodes[i].children = append(t.nodes[i].children, child)
	}
	return len(moves)
}

// selectChild returns the child of node i with the greatest UCB1 value. The
// first unvisited child wins outright, and ties keep the earlier child.
func (t *tree[S, A]) selectChild(i int, c float64) int {
	parent := &t.nodes[i]
	policy := newUCB1(c, parent.visits)
	best := parent.children[0]
	bestScore := t.score(policy, best)
	for _, child := range parent.children[1:] {
		if bestScore == infinity {
			break
		}
		if s := t.score(policy, child); s > bestScore {
			best, bestScore = child, s
		}
	}
	return best
}

func (t *tree[S, A]) score(policy ucb1, i int) float64 {
	return policy.evaluate(t.nodes[i].wins, t.nodes[i].visits)
}

// backpropagate adds one visit and the reward to node i and every ancestor.
func (t *tree[S, A]) backpropagate(i int, reward float64) {
	for i != noParent {
		t.nodes[i].visits++
		t.nodes[i].wins += reward
		i = t.nodes[i].parent
	}
}
