package octree

import "errors"

var (
	ErrNotBuilt = errors.New("octree: tree not built")
)
