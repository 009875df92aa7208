package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build an octree for a mesh and print its statistics.
func MeshStats(ctx *cli.Context) error {
	setupLogging(ctx)

	m, tree, err := loadTree(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	stats := tree.BuildStats()
	bounds := tree.Bounds()
	opts := tree.Options()

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Stat", "Depth", "Value"})
	table.Append([]string{"Vertices", "", fmt.Sprint(m.VertexCount())})
	table.Append([]string{"Triangles", "", fmt.Sprint(m.FaceCount())})
	table.Append([]string{"Groups", "", fmt.Sprint(len(m.Groups))})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Depth limit", "", fmt.Sprint(opts.MaxDepth)})
	table.Append([]string{"Faces per node limit", "", fmt.Sprint(opts.MaxFacesPerNode)})
	table.Append([]string{"Margin", "", fmt.Sprint(opts.Margin)})
	table.Append([]string{"Root min", "", fmtVec3(bounds.Min)})
	table.Append([]string{"Root max", "", fmtVec3(bounds.Max)})
	table.Append([]string{"Nodes", "", fmt.Sprint(stats.Nodes)})
	table.Append([]string{"Leafs", "", fmt.Sprint(stats.Leafs)})
	table.Append([]string{"Max depth", "", fmt.Sprint(stats.MaxDepth)})
	table.Append([]string{" ", " ", " "})
	for depth, faces := range stats.FacesPerDepth {
		label := ""
		if depth == 0 {
			label = "Faces"
		}
		table.Append([]string{label, fmt.Sprint(depth), fmt.Sprint(faces)})
	}
	table.SetFooter([]string{"Build time", " ", stats.BuildTime.String()})
	table.Render()

	return nil
}
