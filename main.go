package main

import (
	"os"

	"github.com/achilleasa/meshpick/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "meshpick"
	app.Usage = "cast rays against triangle meshes using an octree"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build an octree for a mesh and print its statistics",
			Description: `
Parse a mesh from a wavefront obj file (local path or http/https URL), partition
its triangles into an octree and print a summary of the resulting tree.`,
			ArgsUsage: "mesh.obj",
			Flags:     cmd.BuildFlags,
			Action:    cmd.MeshStats,
		},
		{
			Name:  "cast",
			Usage: "cast a ray against a mesh and report the nearest hit",
			Description: `
Build an octree for the mesh and cast a single ray against it. The nearest hit
point is reported together with the number of box and triangle tests that were
needed to find it.`,
			ArgsUsage: "mesh.obj",
			Flags:     cmd.CastFlags,
			Action:    cmd.CastRay,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
