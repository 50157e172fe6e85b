// Package camera provides an orbit camera for viewing the path from outside.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// pitchLimit keeps the camera off the poles, where the up vector degenerates.
const pitchLimit = math.Pi/2 - 0.05

// Orbit circles a target point at a controlled distance. Yaw advances slowly
// on its own each frame; the user can drag to steer and scroll to zoom.
type Orbit struct {
	Target   r3.Vec
	Distance float64
	Yaw      float64 // radians around the Y axis
	Pitch    float64 // radians above the horizon

	MinDistance, MaxDistance float64

	// OrbitSpeed is the auto-orbit rate in radians per second (0 = static).
	OrbitSpeed float64
}

// New creates a camera orbiting target at the given distance.
func New(target r3.Vec, distance, orbitSpeed float64) *Orbit {
	return &Orbit{
		Target:      target,
		Distance:    distance,
		Pitch:       0.35,
		MinDistance: distance * 0.2,
		MaxDistance: distance * 4,
		OrbitSpeed:  orbitSpeed,
	}
}

// Update advances the auto-orbit by dt seconds.
func (o *Orbit) Update(dt float64) {
	o.Yaw += o.OrbitSpeed * dt
	if o.Yaw > 2*math.Pi {
		o.Yaw -= 2 * math.Pi
	}
}

// Drag steers the camera by screen-space deltas.
func (o *Orbit) Drag(dx, dy float64) {
	o.Yaw -= dx * 0.005
	o.Pitch += dy * 0.005
	if o.Pitch > pitchLimit {
		o.Pitch = pitchLimit
	}
	if o.Pitch < -pitchLimit {
		o.Pitch = -pitchLimit
	}
}

// Zoom moves the camera along its view ray, clamped to the distance bounds.
func (o *Orbit) Zoom(delta float64) {
	o.Distance -= delta * o.Distance * 0.1
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

// Eye returns the camera position in world space.
func (o *Orbit) Eye() r3.Vec {
	cp := math.Cos(o.Pitch)
	return r3.Add(o.Target, r3.Vec{
		X: o.Distance * cp * math.Cos(o.Yaw),
		Y: o.Distance * math.Sin(o.Pitch),
		Z: o.Distance * cp * math.Sin(o.Yaw),
	})
}

// Retarget recenters the orbit, keeping the current angles and distance.
func (o *Orbit) Retarget(target r3.Vec) {
	o.Target = target
}
