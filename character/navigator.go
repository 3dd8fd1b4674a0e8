package character

import "github.com/go-gl/mathgl/mgl64"

// Teleport places the character at a named scene point, facing the way the
// point faces but kept upright. A missing name is logged and ignored:
// legacy content references waypoints that never existed, and a hard error
// here would break otherwise playable data. Any in-flight route is
// cancelled.
func (c *Character) Teleport(name string) {
	if c == nil {
		return
	}
	if c.lookup == nil {
		c.log.Warn("teleport failed, no scene lookup wired", "waypoint", name)
		return
	}
	obj, ok := c.lookup.FindObjectByName(name)
	if !ok {
		c.log.Warn("teleport failed, waypoint doesn't exist", "waypoint", name)
		return
	}

	c.transform.Pos = obj.Transform.Pos

	forward := obj.Transform.Forward()
	forward[1] = 0
	c.transform.SetForward(forward)

	c.route = nil
}

// InstantTurnToPosition yaws the character toward a point while keeping it
// upright.
func (c *Character) InstantTurnToPosition(p mgl64.Vec3) {
	if c == nil {
		return
	}
	level := p
	level[1] = c.transform.Pos.Y()
	c.transform.LookAt(level)
}

// GoToPositionStraight turns toward a point and walks forward. Returns
// whether the character has arrived; callers invoke it every tick until it
// does.
func (c *Character) GoToPositionStraight(p mgl64.Vec3) bool {
	if c == nil {
		return false
	}
	c.InstantTurnToPosition(p)
	c.GoForward()
	return c.IsAtPosition(p)
}

// GotoWaypoint starts path following toward a named destination. The route
// comes from the waynet service; an unresolvable destination rejects the
// request. A new route replaces any previous one.
func (c *Character) GotoWaypoint(name string) bool {
	if c == nil {
		return false
	}
	if c.router == nil {
		c.log.Warn("goto failed, no route service wired", "waypoint", name)
		return false
	}
	route := c.router.RouteTo(c.transform.Pos, name)
	if len(route) == 0 {
		c.log.Warn("goto failed, no route", "waypoint", name)
		return false
	}
	c.route = route
	return true
}

// HasRoute reports whether path following is in progress.
func (c *Character) HasRoute() bool {
	return c != nil && len(c.route) > 0
}

// followRoute advances path following by one tick: steer toward the next
// route point, pop it once reached, stop at the end of the route.
func (c *Character) followRoute() {
	if len(c.route) == 0 {
		return
	}
	if !c.GoToPositionStraight(c.route[0]) {
		return
	}
	c.route = c.route[1:]
	if len(c.route) == 0 {
		c.Stop()
	}
}
