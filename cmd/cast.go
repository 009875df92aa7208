package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build an octree for a mesh and cast a single ray against it.
func CastRay(ctx *cli.Context) error {
	setupLogging(ctx)

	origin, err := parseVec3Flag("origin", ctx.String("origin"))
	if err != nil {
		logger.Error(err)
		return err
	}
	dir, err := parseVec3Flag("dir", ctx.String("dir"))
	if err != nil {
		logger.Error(err)
		return err
	}

	_, tree, err := loadTree(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	hit, rayStats, err := tree.CastRay(origin, dir)
	if err != nil {
		logger.Error(err)
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Ray", "Value"})
	table.Append([]string{"Origin", fmtVec3(origin)})
	table.Append([]string{"Direction", fmtVec3(dir)})
	table.Append([]string{" ", " "})
	if hit.IsHit() {
		table.Append([]string{"Hit point", fmtVec3(origin.Add(dir.Mul(hit.T)))})
		table.Append([]string{"Distance (t)", fmt.Sprintf("%g", hit.T)})
		table.Append([]string{"Normal", fmtVec3(hit.Normal)})
	} else {
		table.Append([]string{"Hit point", "no hit"})
	}
	table.Append([]string{" ", " "})
	table.Append([]string{"Tested boxes", fmt.Sprint(rayStats.TestedBoxes)})
	table.Append([]string{"Tested triangles", fmt.Sprint(rayStats.TestedTriangles)})
	table.Render()

	return nil
}

// Flags for the cast command.
var CastFlags = append([]cli.Flag{
	cli.StringFlag{
		Name:  "origin, o",
		Value: "0,0,0",
		Usage: "ray origin as x,y,z",
	},
	cli.StringFlag{
		Name:  "dir, d",
		Value: "0,0,-1",
		Usage: "ray direction as x,y,z",
	},
}, BuildFlags...)
