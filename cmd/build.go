package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/meshpick/asset/mesh"
	"github.com/achilleasa/meshpick/octree"
	"github.com/achilleasa/meshpick/types"
	"github.com/urfave/cli"
)

// Flags controlling octree construction. They are shared by all commands
// that build a tree.
var BuildFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "max-depth",
		Value: octree.DefaultMaxDepth,
		Usage: "maximum octree subdivision depth",
	},
	cli.IntFlag{
		Name:  "max-faces",
		Value: octree.DefaultMaxFacesPerNode,
		Usage: "split a leaf once it holds more than this many faces",
	},
	cli.Float64Flag{
		Name:  "margin",
		Value: octree.DefaultMargin,
		Usage: "padding applied around the mesh bounds when sizing the root node",
	},
}

// Map the build flags to octree options.
func buildOptions(ctx *cli.Context) octree.Options {
	return octree.Options{
		MaxDepth:        ctx.Int("max-depth"),
		MaxFacesPerNode: ctx.Int("max-faces"),
		Margin:          ctx.Float64("margin"),
	}
}

// Load the mesh named by the first command argument and build an octree
// for it.
func loadTree(ctx *cli.Context) (*mesh.Mesh, *octree.Octree, error) {
	meshFile := ctx.Args().First()
	if meshFile == "" {
		return nil, nil, fmt.Errorf("missing mesh file argument")
	}

	m, err := mesh.ReadMesh(meshFile)
	if err != nil {
		return nil, nil, err
	}

	opts := buildOptions(ctx)
	if opts.MaxDepth < 0 || opts.MaxFacesPerNode < 1 {
		return nil, nil, fmt.Errorf("invalid build options: max-depth must be >= 0 and max-faces >= 1")
	}

	logger.Infof("building octree for %d triangles (maxDepth: %d, maxFaces: %d, margin: %g)", m.FaceCount(), opts.MaxDepth, opts.MaxFacesPerNode, opts.Margin)
	return m, octree.Build(m.Vertices, m.Indices, octree.WithOptions(opts)), nil
}

// Parse a vector given as "x,y,z".
func parseVec3Flag(name, value string) (types.Vec3, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf(`invalid value %q for flag "%s"; expected x,y,z`, value, name)
	}

	var v types.Vec3
	for index, token := range tokens {
		coord, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return types.Vec3{}, fmt.Errorf(`invalid value %q for flag "%s"; %s`, value, name, err.Error())
		}
		v[index] = coord
	}
	return v, nil
}

func fmtVec3(v types.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
