package world

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Waypoint is a node of the navigation graph.
type Waypoint struct {
	Name     string
	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

// Waynet is the waypoint graph. Route queries are served by A* with a
// euclidean heuristic; maxNodes bounds the search so a malformed graph can
// never stall a tick.
type Waynet struct {
	log       *slog.Logger
	waypoints []*Waypoint
	byName    map[string]int
	edges     map[int][]int
	maxNodes  int

	// lookup resolves off-waynet route endpoints by scene object name.
	lookup func(name string) (mgl64.Vec3, bool)
}

// NewWaynet creates an empty waynet.
func NewWaynet(log *slog.Logger) *Waynet {
	if log == nil {
		log = slog.Default()
	}
	return &Waynet{
		log:      log.With("subsystem", "waynet"),
		byName:   make(map[string]int),
		edges:    make(map[int][]int),
		maxNodes: 4096,
	}
}

// SetObjectLookup wires the scene-object index used to resolve route
// endpoints that name something off the waynet (freepoints, characters).
func (n *Waynet) SetObjectLookup(lookup func(name string) (mgl64.Vec3, bool)) {
	if n == nil {
		return
	}
	n.lookup = lookup
}

// AddWaypoint inserts a node and returns its index.
func (n *Waynet) AddWaypoint(wp Waypoint) int {
	if n == nil || wp.Name == "" {
		return -1
	}
	idx := len(n.waypoints)
	w := wp
	n.waypoints = append(n.waypoints, &w)
	n.byName[wp.Name] = idx
	return idx
}

// Connect adds an undirected edge between two named waypoints. Unknown names
// are logged and skipped; legacy waynets reference missing nodes.
func (n *Waynet) Connect(a, b string) {
	if n == nil {
		return
	}
	ia, okA := n.byName[a]
	ib, okB := n.byName[b]
	if !okA || !okB {
		n.log.Warn("waynet edge references unknown waypoint", "from", a, "to", b)
		return
	}
	n.edges[ia] = append(n.edges[ia], ib)
	n.edges[ib] = append(n.edges[ib], ia)
}

// FindWaypoint resolves a waypoint by name.
func (n *Waynet) FindWaypoint(name string) (*Waypoint, bool) {
	if n == nil {
		return nil, false
	}
	idx, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.waypoints[idx], true
}

// FindClosestWaypointTo returns the waypoint nearest to pos.
func (n *Waynet) FindClosestWaypointTo(pos mgl64.Vec3) (*Waypoint, bool) {
	if n == nil || len(n.waypoints) == 0 {
		return nil, false
	}
	best := -1
	bestSq := math.MaxFloat64
	for i, wp := range n.waypoints {
		d := wp.Position.Sub(pos)
		if sq := d.Dot(d); sq < bestSq {
			bestSq = sq
			best = i
		}
	}
	return n.waypoints[best], true
}

// FindWay computes the waypoint route between two nodes. An empty route
// means no path exists; that is a content gap, not an error.
func (n *Waynet) FindWay(from, to *Waypoint) []*Waypoint {
	if n == nil || from == nil || to == nil {
		return nil
	}
	start, okS := n.byName[from.Name]
	goal, okG := n.byName[to.Name]
	if !okS || !okG {
		return nil
	}
	if start == goal {
		return []*Waypoint{n.waypoints[start]}
	}

	open := []int{start}
	inOpen := map[int]bool{start: true}
	cameFrom := make(map[int]int, 64)
	gScore := map[int]float64{start: 0}
	fScore := map[int]float64{start: n.heuristic(start, goal)}

	for iterations := 0; len(open) > 0 && iterations < n.maxNodes; iterations++ {
		// pick the open node with the lowest fScore
		bestIdx := 0
		bestScore := math.MaxFloat64
		for i, node := range open {
			if f, ok := fScore[node]; ok && f < bestScore {
				bestScore = f
				bestIdx = i
			}
		}
		current := open[bestIdx]
		open = append(open[:bestIdx], open[bestIdx+1:]...)
		delete(inOpen, current)

		if current == goal {
			return n.reconstruct(cameFrom, current, start)
		}

		for _, next := range n.edges[current] {
			tentative := gScore[current] + n.distance(current, next)
			prev, seen := gScore[next]
			if seen && tentative >= prev {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			fScore[next] = tentative + n.heuristic(next, goal)
			if !inOpen[next] {
				open = append(open, next)
				inOpen[next] = true
			}
		}
	}
	return nil
}

// FindWayByName computes a route between two named endpoints. Endpoints that
// are not waypoints fall back to the scene-object index and route from the
// nearest waypoint; unresolvable endpoints yield an empty route.
func (n *Waynet) FindWayByName(from, to string) []*Waypoint {
	if n == nil {
		return nil
	}
	wpFrom, okFrom := n.FindWaypoint(from)
	wpTo, okTo := n.FindWaypoint(to)

	if !okFrom {
		wpFrom, okFrom = n.closestToObject(from)
	}
	if !okTo {
		wpTo, okTo = n.closestToObject(to)
	}
	if !okFrom || !okTo {
		return nil
	}
	return n.FindWay(wpFrom, wpTo)
}

// RouteTo computes the route positions from an arbitrary position to a named
// destination, ending at the destination waypoint.
func (n *Waynet) RouteTo(from mgl64.Vec3, to string) []mgl64.Vec3 {
	if n == nil {
		return nil
	}
	start, ok := n.FindClosestWaypointTo(from)
	if !ok {
		return nil
	}
	dest, ok := n.FindWaypoint(to)
	if !ok {
		dest, ok = n.closestToObject(to)
	}
	if !ok {
		return nil
	}
	way := n.FindWay(start, dest)
	route := make([]mgl64.Vec3, 0, len(way))
	for _, wp := range way {
		route = append(route, wp.Position)
	}
	return route
}

func (n *Waynet) closestToObject(name string) (*Waypoint, bool) {
	if n.lookup == nil {
		return nil, false
	}
	pos, ok := n.lookup(name)
	if !ok {
		return nil, false
	}
	return n.FindClosestWaypointTo(pos)
}

func (n *Waynet) reconstruct(cameFrom map[int]int, current, start int) []*Waypoint {
	path := []*Waypoint{n.waypoints[current]}
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			return nil
		}
		current = prev
		path = append(path, n.waypoints[current])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (n *Waynet) heuristic(a, b int) float64 {
	return n.distance(a, b)
}

func (n *Waynet) distance(a, b int) float64 {
	return n.waypoints[b].Position.Sub(n.waypoints[a].Position).Len()
}

// Waypoints returns all nodes, for debug drawing.
func (n *Waynet) Waypoints() []*Waypoint {
	if n == nil {
		return nil
	}
	return n.waypoints
}

// Edges visits every undirected edge once, for debug drawing.
func (n *Waynet) Edges(visit func(a, b *Waypoint)) {
	if n == nil || visit == nil {
		return
	}
	for from, tos := range n.edges {
		for _, to := range tos {
			if from < to {
				visit(n.waypoints[from], n.waypoints[to])
			}
		}
	}
}
