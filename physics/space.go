package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// skin keeps the swept circle from ending flush against a wall, which would
// make the next sweep start inside the shape.
const skin = 0.01

// HeightFunc samples ground height at a horizontal position.
type HeightFunc func(x, z float64) float64

// SpaceController resolves character moves against a Chipmunk space. Walls
// are static segment shapes on the ground plane; the vertical axis is
// resolved separately against a ground heightfield, since characters never
// tumble and only need wall sliding plus ground contact.
type SpaceController struct {
	space   *cp.Space
	radius  float64
	ground  HeightFunc
	ceiling float64
}

var _ Controller = (*SpaceController)(nil)

// NewSpaceController creates a controller for a character of the given
// radius. A nil ground function means flat ground at height zero.
func NewSpaceController(radius float64, ground HeightFunc) *SpaceController {
	if radius <= 0 {
		radius = 0.35
	}
	return &SpaceController{
		space:   cp.NewSpace(),
		radius:  radius,
		ground:  ground,
		ceiling: math.Inf(1),
	}
}

// SetCeiling installs a flat ceiling at the given height.
func (c *SpaceController) SetCeiling(height float64) {
	if c == nil {
		return
	}
	c.ceiling = height
}

// AddWall adds a static wall segment on the ground plane.
func (c *SpaceController) AddWall(ax, az, bx, bz float64) {
	if c == nil || c.space == nil {
		return
	}
	shape := cp.NewSegment(c.space.StaticBody, cp.Vector{X: ax, Y: az}, cp.Vector{X: bx, Y: bz}, 0)
	c.space.AddShape(shape)
}

// Move resolves a per-tick motion. Horizontal motion is swept against the
// walls with a single slide iteration; vertical motion lands on the ground
// heightfield.
func (c *SpaceController) Move(from mgl64.Vec3, motion mgl64.Vec3) (mgl64.Vec3, CollisionFlags) {
	var flags CollisionFlags
	if c == nil {
		return from, flags
	}

	start := cp.Vector{X: from.X(), Y: from.Z()}
	delta := cp.Vector{X: motion.X(), Y: motion.Z()}
	resolved := c.sweep(start, delta, &flags)

	y := from.Y() + motion.Y()
	groundY := c.groundHeight(resolved.X, resolved.Y)
	if y <= groundY {
		y = groundY
		flags.Below = true
	}
	if y+c.radius > c.ceiling {
		y = c.ceiling - c.radius
		flags.Above = true
	}

	return mgl64.Vec3{resolved.X, y, resolved.Y}, flags
}

// sweep casts the character circle along delta, stopping short of the first
// wall hit and sliding the remainder along the wall tangent.
func (c *SpaceController) sweep(start, delta cp.Vector, flags *CollisionFlags) cp.Vector {
	length := delta.Length()
	if length < 1e-9 {
		return start
	}
	end := start.Add(delta)

	info := c.space.SegmentQueryFirst(start, end, c.radius, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return end
	}
	flags.Sides = true

	dir := delta.Mult(1 / length)
	allowed := math.Max(0, info.Alpha*length-skin)
	stopped := start.Add(dir.Mult(allowed))

	remaining := length - allowed
	tangent := cp.Vector{X: -info.Normal.Y, Y: info.Normal.X}
	slide := tangent.Mult(remaining * dir.Dot(tangent))

	slideLen := slide.Length()
	if slideLen < 1e-9 {
		return stopped
	}
	slideEnd := stopped.Add(slide)
	second := c.space.SegmentQueryFirst(stopped, slideEnd, c.radius, cp.SHAPE_FILTER_ALL)
	if second.Shape == nil {
		return slideEnd
	}
	slideDir := slide.Mult(1 / slideLen)
	return stopped.Add(slideDir.Mult(math.Max(0, second.Alpha*slideLen-skin)))
}

func (c *SpaceController) groundHeight(x, z float64) float64 {
	if c.ground == nil {
		return 0
	}
	return c.ground(x, z)
}
