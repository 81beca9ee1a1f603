package mapgen

// Curve is a piecewise-linear mapping from [0,1] to [0,1], used to shape
// normalized noise into terrain height (flat water planes, steep peaks).
// Points must be sorted by X; evaluation clamps outside the defined range.
type Curve struct {
	points [][2]float32
}

// NewCurve builds a curve from (x, y) control points sorted by x.
// A nil or empty point list yields the identity curve.
func NewCurve(points [][2]float32) Curve {
	return Curve{points: points}
}

// Eval returns the curve value at t.
func (c Curve) Eval(t float32) float32 {
	if len(c.points) == 0 {
		return t
	}
	if t <= c.points[0][0] {
		return c.points[0][1]
	}
	last := c.points[len(c.points)-1]
	if t >= last[0] {
		return last[1]
	}
	for i := 1; i < len(c.points); i++ {
		if t <= c.points[i][0] {
			p0 := c.points[i-1]
			p1 := c.points[i]
			span := p1[0] - p0[0]
			if span <= 0 {
				return p1[1]
			}
			f := (t - p0[0]) / span
			return p0[1] + (p1[1]-p0[1])*f
		}
	}
	return last[1]
}
