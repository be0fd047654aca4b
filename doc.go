// Package tocicon draws the "table of contents" app icon at any size.
//
// # Overview
//
// The icon is a blue rounded plate carrying five white bars with round
// bullets, laid out like an outline with heading levels H1, H2, H2, H3, H1.
// Every coordinate is a proportion of the icon size, so one design serves
// the 16, 32, 48 and 128 pixel variants a browser extension ships.
//
// # Quick Start
//
//	import "github.com/gogpu/tocicon"
//
//	// Render a single icon
//	c, err := tocicon.Render(128)
//	if err != nil {
//	    return err
//	}
//	err = c.SavePNG("icon128.png")
//
//	// Write the default batch into icons/
//	n, err := tocicon.Generate(tocicon.DefaultSizes, tocicon.DefaultOutputDir)
//
// # Rendering
//
// Shapes are rasterized from signed distance functions evaluated at
// integer pixel coordinates. By default coverage is hard (a pixel is in or
// out), which keeps the output crisp at 16 pixels and leaves the plate
// corners fully transparent. WithAntialias switches to smoothstep edges.
//
// Rendering is deterministic: the same size and options always produce
// identical pixels.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
package tocicon

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
