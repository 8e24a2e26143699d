package anim

import "fmt"

// Chain owns a fixed ordered run of nodes and the traversal cursor.
// current always indexes a valid node; direction is +1 or -1 and only
// flips at index 0 or len-1.
type Chain struct {
	nodes     []Node
	current   int
	direction int
}

// NewChain builds n linked nodes, all idle at 0, with the cursor on node 0
// moving forward.
func NewChain(n int, rate float64) *Chain {
	if n < 1 {
		panic(fmt.Sprintf("anim: chain needs at least one node, got %d", n))
	}
	c := &Chain{nodes: make([]Node, n), direction: 1}
	for i := range c.nodes {
		c.nodes[i] = Node{index: i, prev: i - 1, next: i + 1, state: NewScaleState(rate)}
	}
	c.nodes[n-1].next = -1
	return c
}

func (c *Chain) Len() int           { return len(c.nodes) }
func (c *Chain) Current() int       { return c.current }
func (c *Chain) Direction() int     { return c.direction }
func (c *Chain) Node(i int) *Node   { return &c.nodes[i] }
func (c *Chain) CurrentNode() *Node { return &c.nodes[c.current] }

// Draw hands every node to d in index order.
func (c *Chain) Draw(d Drawer) {
	for i := range c.nodes {
		c.nodes[i].Draw(d)
	}
}

// Update advances the current node one frame. When its step settles the
// cursor moves to the neighbor in the traversal direction; at either end the
// cursor stays and the direction flips instead.
func (c *Chain) Update() AdvanceResult {
	res := c.nodes[c.current].Update()
	if !res.Settled() {
		return res
	}
	next, boundary := c.nodes[c.current].Neighbor(c.direction)
	if boundary {
		c.direction = -c.direction
	}
	c.current = next
	return res
}

// BeginStep starts the current node's step. False means it was already moving.
func (c *Chain) BeginStep() bool {
	return c.nodes[c.current].BeginStep()
}
