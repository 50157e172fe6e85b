// Package paths generates and samples the 3D curves particles travel along.
//
// A Path is an ordered sequence of control points with smooth Catmull-Rom
// interpolation between them. Closed paths wrap the normalized parameter t
// into [0,1); open paths clamp at the ends. Paths are immutable once built
// and shared by reference between every particle.
package paths

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Path is an interpolatable 3D curve sampled by normalized parameter t.
type Path struct {
	points []r3.Vec
	closed bool
}

// New builds a path from control points. Fewer than two points yields a
// degenerate path that samples to a single position.
func New(points []r3.Vec, closed bool) *Path {
	pts := make([]r3.Vec, len(points))
	copy(pts, points)
	return &Path{points: pts, closed: closed}
}

// Closed reports whether the path wraps around at t=1.
func (p *Path) Closed() bool { return p.closed }

// Len returns the number of control points.
func (p *Path) Len() int { return len(p.points) }

// PointAt returns the interpolated position at t. Defined for all real t:
// closed paths wrap t into [0,1), open paths clamp to their endpoints.
func (p *Path) PointAt(t float64) r3.Vec {
	if len(p.points) == 0 {
		return r3.Vec{}
	}
	if len(p.points) == 1 {
		return p.points[0]
	}
	i, u := p.segment(t)
	p0, p1, p2, p3 := p.controls(i)
	return catmullRom(p0, p1, p2, p3, u)
}

// TangentAt returns the normalized direction of travel at t.
func (p *Path) TangentAt(t float64) r3.Vec {
	if len(p.points) < 2 {
		return r3.Vec{X: 1}
	}
	i, u := p.segment(t)
	p0, p1, p2, p3 := p.controls(i)
	d := catmullRomDeriv(p0, p1, p2, p3, u)
	n := r3.Norm(d)
	if n < 1e-12 {
		return r3.Vec{X: 1}
	}
	return r3.Scale(1/n, d)
}

// segment maps t to a segment index and local parameter u in [0,1].
func (p *Path) segment(t float64) (int, float64) {
	if p.closed {
		t = t - math.Floor(t)
		f := t * float64(len(p.points))
		i := int(f)
		if i >= len(p.points) {
			i = len(p.points) - 1
		}
		return i, f - float64(i)
	}

	// Open: clamp to [0,1] over len-1 segments
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return len(p.points) - 2, 1
	}
	f := t * float64(len(p.points)-1)
	i := int(f)
	if i > len(p.points)-2 {
		i = len(p.points) - 2
	}
	return i, f - float64(i)
}

// controls returns the four Catmull-Rom control points around segment i.
// Closed paths wrap the indices; open paths duplicate the endpoints.
func (p *Path) controls(i int) (r3.Vec, r3.Vec, r3.Vec, r3.Vec) {
	n := len(p.points)
	if p.closed {
		return p.points[((i-1)%n+n)%n], p.points[i%n], p.points[(i+1)%n], p.points[(i+2)%n]
	}
	clamp := func(j int) int {
		if j < 0 {
			return 0
		}
		if j >= n {
			return n - 1
		}
		return j
	}
	return p.points[clamp(i-1)], p.points[clamp(i)], p.points[clamp(i+1)], p.points[clamp(i+2)]
}

// catmullRom evaluates the uniform Catmull-Rom spline through p1..p2 at u.
func catmullRom(p0, p1, p2, p3 r3.Vec, u float64) r3.Vec {
	u2 := u * u
	u3 := u2 * u
	a := r3.Scale(2, p1)
	b := r3.Scale(u, r3.Sub(p2, p0))
	c := r3.Scale(u2, r3.Add(r3.Sub(r3.Scale(2, p0), r3.Scale(5, p1)), r3.Sub(r3.Scale(4, p2), p3)))
	d := r3.Scale(u3, r3.Add(r3.Sub(r3.Scale(3, p1), p0), r3.Sub(p3, r3.Scale(3, p2))))
	return r3.Scale(0.5, r3.Add(r3.Add(a, b), r3.Add(c, d)))
}

// catmullRomDeriv evaluates the spline derivative at u.
func catmullRomDeriv(p0, p1, p2, p3 r3.Vec, u float64) r3.Vec {
	u2 := u * u
	b := r3.Sub(p2, p0)
	c := r3.Scale(2*u, r3.Add(r3.Sub(r3.Scale(2, p0), r3.Scale(5, p1)), r3.Sub(r3.Scale(4, p2), p3)))
	d := r3.Scale(3*u2, r3.Add(r3.Sub(r3.Scale(3, p1), p0), r3.Sub(p3, r3.Scale(3, p2))))
	return r3.Scale(0.5, r3.Add(b, r3.Add(c, d)))
}

// Centroid returns the mean of the control points. Used as the camera target.
func (p *Path) Centroid() r3.Vec {
	if len(p.points) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, pt := range p.points {
		sum = r3.Add(sum, pt)
	}
	return r3.Scale(1/float64(len(p.points)), sum)
}
