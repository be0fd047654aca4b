package tocicon

import "io"

// RenderOption configures a single Render call.
//
// Example:
//
//	// Default hard-edged rendering
//	c, err := tocicon.Render(128)
//
//	// Smooth edges
//	c, err := tocicon.Render(128, tocicon.WithAntialias(true))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	antialias bool
}

func defaultRenderOptions() renderOptions {
	return renderOptions{antialias: false}
}

// WithAntialias enables smoothstep edges on every shape. Hard edges keep
// the outer corners fully transparent; smooth edges leave a faint fringe
// on the smallest sizes.
func WithAntialias(on bool) RenderOption {
	return func(o *renderOptions) {
		o.antialias = on
	}
}

// GeneratorOption configures a Generator during creation.
//
// Example:
//
//	g := tocicon.NewGenerator(
//	    tocicon.WithProgress(os.Stdout),
//	    tocicon.WithConcurrency(4),
//	)
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	render      []RenderOption
	progress    io.Writer
	concurrency int
}

func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		progress:    io.Discard,
		concurrency: 1, // sequential, sizes in list order
	}
}

// WithRenderOptions passes opts to every Render call of the batch.
func WithRenderOptions(opts ...RenderOption) GeneratorOption {
	return func(o *generatorOptions) {
		o.render = append(o.render, opts...)
	}
}

// WithProgress sets where the generator reports each written file.
// A nil writer disables reporting.
func WithProgress(w io.Writer) GeneratorOption {
	return func(o *generatorOptions) {
		if w == nil {
			w = io.Discard
		}
		o.progress = w
	}
}

// WithConcurrency sets how many sizes are rendered and written at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.concurrency = max(n, 1)
	}
}
