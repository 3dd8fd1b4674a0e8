package world

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// gridWaynet builds a small graph with a long detour and a shortcut:
//
//	A --- B --- C
//	 \         /
//	  D ----- E
//
// going A to C through D/E is shorter than through B.
func gridWaynet(t *testing.T) *Waynet {
	t.Helper()
	n := NewWaynet(slog.Default())
	n.AddWaypoint(Waypoint{Name: "WP_A", Position: mgl64.Vec3{0, 0, 0}})
	n.AddWaypoint(Waypoint{Name: "WP_B", Position: mgl64.Vec3{10, 0, 10}})
	n.AddWaypoint(Waypoint{Name: "WP_C", Position: mgl64.Vec3{20, 0, 0}})
	n.AddWaypoint(Waypoint{Name: "WP_D", Position: mgl64.Vec3{5, 0, -2}})
	n.AddWaypoint(Waypoint{Name: "WP_E", Position: mgl64.Vec3{15, 0, -2}})
	n.Connect("WP_A", "WP_B")
	n.Connect("WP_B", "WP_C")
	n.Connect("WP_A", "WP_D")
	n.Connect("WP_D", "WP_E")
	n.Connect("WP_E", "WP_C")
	return n
}

func routeNames(way []*Waypoint) []string {
	names := make([]string, 0, len(way))
	for _, wp := range way {
		names = append(names, wp.Name)
	}
	return names
}

func TestFindWayPicksShorterRoute(t *testing.T) {
	n := gridWaynet(t)
	from, _ := n.FindWaypoint("WP_A")
	to, _ := n.FindWaypoint("WP_C")

	way := n.FindWay(from, to)
	want := []string{"WP_A", "WP_D", "WP_E", "WP_C"}
	got := routeNames(way)
	if len(got) != len(want) {
		t.Fatalf("route %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("route %v, want %v", got, want)
		}
	}
}

func TestFindWayToSelf(t *testing.T) {
	n := gridWaynet(t)
	wp, _ := n.FindWaypoint("WP_B")

	way := n.FindWay(wp, wp)
	if len(way) != 1 || way[0].Name != "WP_B" {
		t.Fatalf("self route = %v, want just WP_B", routeNames(way))
	}
}

func TestFindWayAcrossDisconnectedGraph(t *testing.T) {
	n := gridWaynet(t)
	n.AddWaypoint(Waypoint{Name: "WP_ISLAND", Position: mgl64.Vec3{100, 0, 100}})
	from, _ := n.FindWaypoint("WP_A")
	to, _ := n.FindWaypoint("WP_ISLAND")

	if way := n.FindWay(from, to); len(way) != 0 {
		t.Fatalf("route across disconnected components: %v", routeNames(way))
	}
}

func TestFindClosestWaypointTo(t *testing.T) {
	n := gridWaynet(t)

	wp, ok := n.FindClosestWaypointTo(mgl64.Vec3{4, 0, -1})
	if !ok || wp.Name != "WP_D" {
		t.Fatalf("closest = %v, want WP_D", wp)
	}

	empty := NewWaynet(slog.Default())
	if _, ok := empty.FindClosestWaypointTo(mgl64.Vec3{}); ok {
		t.Fatalf("empty waynet produced a closest waypoint")
	}
}

func TestFindWayByNameObjectFallback(t *testing.T) {
	n := gridWaynet(t)
	n.SetObjectLookup(func(name string) (mgl64.Vec3, bool) {
		if name == "FP_CAMPFIRE" {
			// next to WP_C
			return mgl64.Vec3{21, 0, 1}, true
		}
		return mgl64.Vec3{}, false
	})

	way := n.FindWayByName("WP_A", "FP_CAMPFIRE")
	if len(way) == 0 {
		t.Fatalf("no route to freepoint destination")
	}
	if last := way[len(way)-1].Name; last != "WP_C" {
		t.Fatalf("route ends at %s, want the waypoint closest to the freepoint", last)
	}

	if way := n.FindWayByName("WP_A", "MISSING"); len(way) != 0 {
		t.Fatalf("route to unresolvable destination: %v", routeNames(way))
	}
}

func TestRouteToEndsAtDestination(t *testing.T) {
	n := gridWaynet(t)

	route := n.RouteTo(mgl64.Vec3{1, 0, 1}, "WP_C")
	if len(route) == 0 {
		t.Fatalf("no route")
	}
	if route[len(route)-1] != (mgl64.Vec3{20, 0, 0}) {
		t.Fatalf("route ends at %v, want WP_C's position", route[len(route)-1])
	}

	if route := n.RouteTo(mgl64.Vec3{}, "MISSING"); len(route) != 0 {
		t.Fatalf("route to unknown destination: %v", route)
	}
}

func TestConnectSkipsUnknownWaypoints(t *testing.T) {
	n := gridWaynet(t)
	n.Connect("WP_A", "WP_GHOST")

	from, _ := n.FindWaypoint("WP_A")
	to, _ := n.FindWaypoint("WP_C")
	if way := n.FindWay(from, to); len(way) == 0 {
		t.Fatalf("graph corrupted by an edge to an unknown waypoint")
	}
}
