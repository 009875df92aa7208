package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/meshpick/types"
	"github.com/urfave/cli"
)

const cubeObj = `o cube
v -0.5 -0.5 -0.5
v 0.5 -0.5 -0.5
v 0.5 0.5 -0.5
v -0.5 0.5 -0.5
v -0.5 -0.5 0.5
v 0.5 -0.5 0.5
v 0.5 0.5 0.5
v -0.5 0.5 0.5
f 5 6 7 8
f 1 4 3 2
f 2 3 7 6
f 1 5 8 4
f 4 8 7 3
f 1 2 6 5
`

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
	}
	app.Commands = []cli.Command{
		{Name: "stats", Flags: BuildFlags, Action: MeshStats},
		{Name: "cast", Flags: CastFlags, Action: CastRay},
	}
	return app
}

func writeCube(t *testing.T) string {
	meshFile := filepath.Join(t.TempDir(), "cube.obj")
	if err := os.WriteFile(meshFile, []byte(cubeObj), 0644); err != nil {
		t.Fatal(err)
	}
	return meshFile
}

func TestParseVec3Flag(t *testing.T) {
	v, err := parseVec3Flag("origin", "1, -2.5,3")
	if err != nil {
		t.Fatal(err)
	}
	if exp := (types.Vec3{1, -2.5, 3}); v != exp {
		t.Fatalf("expected %v; got %v", exp, v)
	}

	expError := `invalid value "1,2" for flag "origin"; expected x,y,z`
	if _, err = parseVec3Flag("origin", "1,2"); err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	if _, err = parseVec3Flag("origin", "1,2,z"); err == nil {
		t.Fatal("expected to get a parse error")
	}
}

func TestCastCommandHit(t *testing.T) {
	var out bytes.Buffer
	meshFile := writeCube(t)

	err := newTestApp(&out).Run([]string{"meshpick", "cast", "--origin", "0,0,5", "--dir", "0,0,-1", meshFile})
	if err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{"(0, 0, 0.5)", "4.5", "Tested triangles"} {
		if !strings.Contains(out.String(), exp) {
			t.Fatalf("expected output to contain %q; got:\n%s", exp, out.String())
		}
	}
}

func TestCastCommandMiss(t *testing.T) {
	var out bytes.Buffer
	meshFile := writeCube(t)

	err := newTestApp(&out).Run([]string{"meshpick", "cast", "--origin", "0,0,5", "--dir", "0,0,1", meshFile})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no hit") {
		t.Fatalf("expected output to report a miss; got:\n%s", out.String())
	}
}

func TestCastCommandErrors(t *testing.T) {
	var out bytes.Buffer
	meshFile := writeCube(t)

	specs := [][]string{
		{"meshpick", "cast", "--origin", "0,0", meshFile},
		{"meshpick", "cast"},
		{"meshpick", "cast", "--max-faces", "0", meshFile},
		{"meshpick", "cast", filepath.Join(t.TempDir(), "missing.obj")},
	}
	for _, args := range specs {
		if err := newTestApp(&out).Run(args); err == nil {
			t.Fatalf("expected args %v to fail", args)
		}
	}
}

func TestCastCommandVerticesOnlyMesh(t *testing.T) {
	var out bytes.Buffer
	meshFile := filepath.Join(t.TempDir(), "points.obj")
	if err := os.WriteFile(meshFile, []byte("v 0 0 1\nv 1 0 1\nv 0 1 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := newTestApp(&out).Run([]string{"meshpick", "cast", "--origin", "0.2,0.2,5", "--dir", "0,0,-1", meshFile})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no hit") {
		t.Fatalf("expected a mesh without faces to report a miss; got:\n%s", out.String())
	}
}

func TestStatsCommand(t *testing.T) {
	var out bytes.Buffer
	meshFile := writeCube(t)

	err := newTestApp(&out).Run([]string{"meshpick", "stats", "--max-depth", "4", "--margin", "2.5", meshFile})
	if err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{"Triangles", "12", "Nodes", "Depth limit", "Margin", "2.5", "Build time"} {
		if !strings.Contains(out.String(), exp) {
			t.Fatalf("expected output to contain %q; got:\n%s", exp, out.String())
		}
	}
}
