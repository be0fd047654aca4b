package tocicon

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
const sdfAntialiasWidth = 0.7

// Shapes are described by their pixel box with inclusive bounds: a box
// from x0 to x1 covers the pixels x0..x1, and pixel (x, y) is sampled at
// the integer point (x, y). Under hard coverage a pixel belongs to a shape
// when its signed distance is <= 0, so straight edges land exactly on the
// box and a corner arc of radius r excludes the box corner pixel for any
// r >= 1.

// sdfRRect computes the signed distance from a point to a rounded rectangle.
// Negative values are inside, positive values are outside.
func sdfRRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	outside := math.Sqrt(math.Max(dx, 0)*math.Max(dx, 0) + math.Max(dy, 0)*math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// sdfEllipse computes the signed distance from a point to an axis-aligned
// ellipse. It is exact for circles and a first-order approximation
// otherwise. A zero radius collapses the ellipse to a segment.
func sdfEllipse(px, py, cx, cy, rx, ry float64) float64 {
	if rx == ry {
		return math.Hypot(px-cx, py-cy) - rx
	}
	if rx == 0 || ry == 0 {
		return sdfRRect(px, py, cx, cy, rx, ry, 0)
	}
	k := math.Hypot((px-cx)/rx, (py-cy)/ry)
	return (k - 1) * math.Min(rx, ry)
}

// hardCoverage maps a signed distance to full or zero coverage.
func hardCoverage(sdf float64) float64 {
	if sdf <= 0 {
		return 1
	}
	return 0
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
