package octree

const (
	// Default maximum depth for subdividing nodes.
	DefaultMaxDepth = 8

	// Default number of faces a leaf may hold before it is split.
	DefaultMaxFacesPerNode = 500

	// Default padding applied around the mesh bounds when sizing the root.
	DefaultMargin = 10.0

	// The root bounds are padded by Margin on the min side but only by
	// maxMarginScale * Margin on the max side.
	maxMarginScale = 0.9
)

// Options control how the octree subdivides the mesh.
type Options struct {
	// Nodes at this depth are never split.
	MaxDepth int

	// A leaf is split once it holds more than this many faces.
	MaxFacesPerNode int

	// Padding applied to the mesh bounds when sizing the root node.
	Margin float64
}

// An Option mutates the build options.
type Option func(*Options)

// Get the default build options.
func DefaultOptions() Options {
	return Options{
		MaxDepth:        DefaultMaxDepth,
		MaxFacesPerNode: DefaultMaxFacesPerNode,
		Margin:          DefaultMargin,
	}
}

// Set the maximum subdivision depth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// Set the number of faces a leaf may hold before being split.
func WithMaxFacesPerNode(count int) Option {
	return func(opts *Options) {
		opts.MaxFacesPerNode = count
	}
}

// Set the root bounds padding.
func WithMargin(margin float64) Option {
	return func(opts *Options) {
		opts.Margin = margin
	}
}

// Replace all options at once.
func WithOptions(o Options) Option {
	return func(opts *Options) {
		*opts = o
	}
}
