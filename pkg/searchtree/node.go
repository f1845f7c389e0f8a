// Package searchtree implements the information-set search tree node:
// selection by UCB1 with availability counts, expansion, and
// backpropagation, independent of any particular game's rules. The ISMCTS
// engine in pkg/ismcts drives a tree of these nodes over pkg/coup states.
package searchtree

import (
	"math"

	"github.com/ryanjlittle/coup-ismcts/pkg/coup"
)

// Node is one vertex of the shared information-set search tree. The root
// has a nil Move and PlayerJustMoved == 0 (the environment player id),
// which keeps it from ever being credited a win during backpropagation.
type Node struct {
	Move           *coup.Move
	Parent         *Node
	Children       []*Node
	Wins           float64
	Visits         int
	Avails         int
	PlayerJustMoved int
}

// NewRoot returns a fresh, parentless root node.
func NewRoot() *Node {
	return &Node{Avails: 1}
}

// Untried returns the subset of legal that no existing child's Move
// matches.
func (n *Node) Untried(legal []coup.Move) []coup.Move {
	out := make([]coup.Move, 0, len(legal))
	for _, m := range legal {
		if n.childFor(m) == nil {
			out = append(out, m)
		}
	}
	return out
}

func (n *Node) childFor(move coup.Move) *Node {
	for _, c := range n.Children {
		if c.Move != nil && c.Move.Equal(move) {
			return c
		}
	}
	return nil
}

// UCBSelect restricts the candidate children to those whose Move is a
// member of legal, increments every such child's Avails (the
// availability side effect required for ISMCTS correctness across
// determinizations), and returns the one maximizing
// wins/visits + exploration*sqrt(ln(avails)/visits). Ties are broken by
// the first maximizer in Children order. Returns nil if no child matches
// a legal move (the caller should expand instead).
func (n *Node) UCBSelect(legal []coup.Move, exploration float64) *Node {
	var candidates []*Node
	for _, c := range n.Children {
		if c.Move == nil {
			continue
		}
		if !containsMove(legal, *c.Move) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	bestScore := best.ucb1(exploration)
	for _, c := range candidates[1:] {
		score := c.ucb1(exploration)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	for _, c := range candidates {
		c.Avails++
	}
	return best
}

func (n *Node) ucb1(exploration float64) float64 {
	if n.Visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.Wins / float64(n.Visits)
	explorationTerm := exploration * math.Sqrt(math.Log(float64(n.Avails))/float64(n.Visits))
	return exploitation + explorationTerm
}

// AddChild appends and returns a freshly-created child for move, credited
// to playerJustMoved (the player who supplied move, for scoring during
// backpropagation).
func (n *Node) AddChild(move coup.Move, playerJustMoved int) *Node {
	m := move
	child := &Node{
		Move:            &m,
		Parent:          n,
		Avails:          1,
		PlayerJustMoved: playerJustMoved,
	}
	n.Children = append(n.Children, child)
	return child
}

// Update records one visit and, unless this is the root (PlayerJustMoved
// == the environment player id and Parent == nil), adds the result of
// terminal from PlayerJustMoved's point of view.
func (n *Node) Update(terminal *coup.State) {
	n.Visits++
	if n.Parent == nil {
		return
	}
	n.Wins += float64(terminal.Result(n.PlayerJustMoved))
}

// MostVisitedChild returns the child with the highest Visits count, the
// criterion the engine uses to pick its final move (not highest mean,
// which is noisier at low iteration counts). Ties are broken by Children
// order.
func (n *Node) MostVisitedChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	best := n.Children[0]
	for _, c := range n.Children[1:] {
		if c.Visits > best.Visits {
			best = c
		}
	}
	return best
}

func containsMove(moves []coup.Move, m coup.Move) bool {
	for _, candidate := range moves {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}
