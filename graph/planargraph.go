package graph

import "github.com/spatialcore/overlay/geom"

// PlanarGraph owns the nodes, edges and directed edges built for a single
// overlay invocation (spec.md §3). All of its state is scoped to that
// invocation; nothing is retained once the overlay returns (spec.md §5).
type PlanarGraph struct {
	nodeIndex map[geom.XY]*Node
	nodes     []*Node

	edges         []*Edge
	directedEdges []*DirectedEdge
}

// NewPlanarGraph returns an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodeIndex: make(map[geom.XY]*Node)}
}

// FindNode returns the node at coord and true if one has already been
// added, or (nil, false) otherwise.
func (g *PlanarGraph) FindNode(coord geom.XY) (*Node, bool) {
	n, ok := g.nodeIndex[coord]
	return n, ok
}

// AddNode returns the node at coord, creating and registering a new one
// if none exists yet.
func (g *PlanarGraph) AddNode(coord geom.XY) *Node {
	if n, ok := g.nodeIndex[coord]; ok {
		return n
	}
	n := NewNode(coord)
	g.nodeIndex[coord] = n
	g.nodes = append(g.nodes, n)
	return n
}

// InsertPoint registers coord as an isolated node carrying onLoc for
// argument argIndex, per spec.md §4.1 step 1 ("copy nodes": protecting the
// Boundary Determination Rule for isolated points).
func (g *PlanarGraph) InsertPoint(argIndex int, coord geom.XY, onLoc geom.Location) {
	n := g.AddNode(coord)
	n.MergeLabel(NewLabel(argIndex, onLoc))
}

// Nodes returns every node added to the graph, in insertion order.
func (g *PlanarGraph) Nodes() []*Node { return g.nodes }

// Edges returns every edge added to the graph, in insertion order.
func (g *PlanarGraph) Edges() []*Edge { return g.edges }

// DirectedEdges returns every directed edge in the graph, two per edge, in
// the order their owning edges were added.
func (g *PlanarGraph) DirectedEdges() []*DirectedEdge { return g.directedEdges }

// AddEdges links each edge's two directed edges into their origin nodes'
// stars and registers them as each other's Sym, per spec.md §4.2's
// "graph.addEdges(edgeList) links each edge with its two directed edges
// and attaches them to node stars".
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		g.addEdge(e)
	}
}

func (g *PlanarGraph) addEdge(e *Edge) {
	coords := e.Coordinates()
	if len(coords) < 2 {
		return
	}
	g.edges = append(g.edges, e)

	deForward := NewDirectedEdge(e, true)
	deReverse := NewDirectedEdge(e, false)
	deForward.sym = deReverse
	deReverse.sym = deForward

	originNode := g.AddNode(coords[0])
	destNode := g.AddNode(coords[len(coords)-1])
	originNode.AddDirectedEdge(deForward)
	destNode.AddDirectedEdge(deReverse)

	g.directedEdges = append(g.directedEdges, deForward, deReverse)
}

// ComputeNodeLabelling runs node-level labelling across every node in the
// graph, per spec.md §4.2.
func (g *PlanarGraph) ComputeNodeLabelling() {
	for _, n := range g.nodes {
		n.ComputeLabellingFromStar()
	}
}

// IncompleteNodes returns every node whose label is still null for at
// least one argument, the candidates for spec.md §4.2's incomplete-node
// labelling step.
func (g *PlanarGraph) IncompleteNodes() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.label.IsNull(0) || n.label.IsNull(1) {
			out = append(out, n)
		}
	}
	return out
}

// PropagateNodeLocation sets the location of argument arg to loc on n's
// own label and propagates it to the edges incident to n: each incident
// edge whose label has no location yet for arg gets loc as its On
// location. Edges already labelled for arg, and the Left/Right positions,
// are left unchanged.
func (g *PlanarGraph) PropagateNodeLocation(n *Node, arg int, loc geom.Location) {
	n.SetLabelLocation(arg, loc)
	for _, de := range n.Star().Edges() {
		if de.edge.Label().IsNull(arg) {
			de.edge.Label().SetLocation(arg, PosOn, loc)
		}
	}
}

// LinkResultDirectedEdges runs spec.md §4.4 step 1 ("link result directed
// edges") across every node in the graph.
func (g *PlanarGraph) LinkResultDirectedEdges() error {
	for _, n := range g.nodes {
		if err := n.Star().LinkResultDirectedEdges(n.Coordinate()); err != nil {
			return err
		}
	}
	return nil
}
