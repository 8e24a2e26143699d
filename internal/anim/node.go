package anim

// Drawer receives one node's index and normalized scale per frame.
type Drawer interface {
	DrawNode(index int, scale float64)
}

// Node is one element of the fixed chain. prev and next are indices into
// the owning Chain, -1 at the two ends.
type Node struct {
	index int
	prev  int
	next  int
	state ScaleState
}

func (n *Node) Index() int            { return n.index }
func (n *Node) State() *ScaleState    { return &n.state }
func (n *Node) Draw(d Drawer)         { d.DrawNode(n.index, n.state.Scale()) }
func (n *Node) Update() AdvanceResult { return n.state.Advance() }
func (n *Node) BeginStep() bool       { return n.state.BeginStep() }

// Neighbor returns the adjacent index in direction dir (+1 next, -1 prev).
// At the end of the chain it returns the node's own index and boundary true,
// which tells the caller to flip its traversal direction.
func (n *Node) Neighbor(dir int) (idx int, boundary bool) {
	idx = n.prev
	if dir > 0 {
		idx = n.next
	}
	if idx < 0 {
		return n.index, true
	}
	return idx, false
}
