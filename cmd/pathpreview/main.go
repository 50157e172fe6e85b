// Path preview tool - interactive curve tuning with sliders.
//
// Usage: go run ./cmd/pathpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"lumen/config"
	"lumen/paths"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

var familyNames = []string{"ribbon", "attractor", "lemniscate"}

// familyIndex maps a config family key to its combo slot, defaulting to
// ribbon for unknown keys the same way paths.FromConfig does.
func familyIndex(key string) int32 {
	for i, name := range familyNames {
		if name == key {
			return int32(i)
		}
	}
	return 0
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Path Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	config.MustInit("")
	pc := &config.Cfg().Path

	familyIdx := familyIndex(pc.Family)
	planeIdx := int32(0)
	path := paths.FromConfig(pc)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			path = paths.FromConfig(pc)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPathProjection(path, int(planeIdx))
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats under the preview
		statsY := int32(previewSize + 25)
		closed := "open"
		if path.Closed() {
			closed = "closed"
		}
		rl.DrawText(fmt.Sprintf("Points: %d  (%s)", path.Len(), closed), 15, statsY, 16, rl.DarkGray)
		c := path.Centroid()
		rl.DrawText(fmt.Sprintf("Centroid: (%.2f, %.2f, %.2f)", c.X, c.Y, c.Z), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Path Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Family", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFamily := gui.ComboBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 24},
			"ribbon;attractor;lemniscate",
			familyIdx,
		)
		if newFamily != familyIdx {
			familyIdx = newFamily
			pc.Family = familyNames[familyIdx]
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Projection plane", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		planeIdx = gui.ComboBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 24},
			"XY;XZ;YZ",
			planeIdx,
		)
		panelY += 35

		switch pc.Family {
		case "attractor":
			panelY = paramSlider(panelX, panelY, "Rho", &pc.Attractor.Rho, 14, 45, &needsRegen)
			panelY = paramSlider(panelX, panelY, "Sigma", &pc.Attractor.Sigma, 4, 18, &needsRegen)
			panelY = paramSlider(panelX, panelY, "Beta", &pc.Attractor.Beta, 0.5, 6, &needsRegen)
			panelY = paramSlider(panelX, panelY, "Dt", &pc.Attractor.Dt, 0.002, 0.02, &needsRegen)
		case "lemniscate":
			panelY = paramSlider(panelX, panelY, "Width", &pc.Lemniscate.Width, 2, 20, &needsRegen)
			panelY = paramSlider(panelX, panelY, "Height", &pc.Lemniscate.Height, 1, 12, &needsRegen)
		default:
			panelY = paramSlider(panelX, panelY, "Scale", &pc.Ribbon.Scale, 1, 12, &needsRegen)
		}

		rl.EndDrawing()
	}
}

// paramSlider draws one labelled slider bound to a float64 config field and
// returns the next panel y.
func paramSlider(panelX, panelY float32, label string, value *float64, min, max float32, needsRegen *bool) float32 {
	rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	newVal := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.3g", min), fmt.Sprintf("%.3g", max),
		float32(*value), min, max,
	)
	rl.DrawText(fmt.Sprintf("%.3f", *value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
	if float64(newVal) != *value {
		*value = float64(newVal)
		*needsRegen = true
	}
	return panelY + 35
}

// drawPathProjection renders the sampled path as a 2D polyline, auto-fitted
// to the preview square.
func drawPathProjection(p *paths.Path, plane int) {
	const steps = 600

	pts := make([]rl.Vector2, 0, steps+1)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for i := 0; i <= steps; i++ {
		v := p.PointAt(float64(i) / steps)
		x, y := project(v, plane)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		pts = append(pts, rl.Vector2{X: float32(x), Y: float32(y)})
	}

	spanX := maxX - minX
	spanY := maxY - minY
	span := math.Max(spanX, spanY)
	if span <= 0 {
		span = 1
	}
	scale := float32((previewSize - 40) / span)
	offX := float32(10+previewSize/2) - float32((minX+maxX)/2)*scale
	offY := float32(10+previewSize/2) + float32((minY+maxY)/2)*scale

	for i := 0; i+1 < len(pts); i++ {
		a := rl.Vector2{X: pts[i].X*scale + offX, Y: -pts[i].Y*scale + offY}
		b := rl.Vector2{X: pts[i+1].X*scale + offX, Y: -pts[i+1].Y*scale + offY}
		rl.DrawLineV(a, b, rl.Color{R: 40, G: 80, B: 200, A: 255})
	}
}

// project drops one axis of the 3D point for the selected plane.
func project(v r3.Vec, plane int) (float64, float64) {
	switch plane {
	case 1:
		return v.X, v.Z
	case 2:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}
