package mesh

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/meshpick/asset"
	"github.com/achilleasa/meshpick/log"
	"github.com/achilleasa/meshpick/types"
)

type wavefrontReader struct {
	logger log.Logger

	// The parsed mesh.
	mesh *Mesh

	// Number of vertices parsed so far.
	vertexCount int

	// An error stack that provides additional error information when
	// mesh files include other files.
	errStack []string
}

// Create a new wavefront mesh reader.
func newWavefrontReader() *wavefrontReader {
	return &wavefrontReader{
		logger:   log.New("wavefront"),
		mesh:     &Mesh{Indices: []uint32{}},
		errStack: make([]string, 0),
	}
}

// Read mesh geometry. Only vertex positions and faces are kept; texture
// coordinates, normals and materials are skipped.
func (r *wavefrontReader) Read(res *asset.Resource) (*Mesh, error) {
	r.logger.Infof("parsing mesh from %s", res.Path())
	start := time.Now()

	err := r.parse(res)
	if err != nil {
		return nil, err
	}
	r.closeGroup()

	r.logger.Noticef(
		"parsed %d vertices and %d triangles from %s in %d ms",
		r.mesh.VertexCount(), r.mesh.FaceCount(), res.Path(), time.Since(start).Nanoseconds()/1e6,
	)
	return r.mesh, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	return fmt.Errorf("%s", strings.Trim(
		fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
		"\n",
	))
}

// Push a frame to the error stack.
func (r *wavefrontReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse wavefront object format.
func (r *wavefrontReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	// Included files use 1-based indices relative to their own vertices.
	relVertexOffset := r.vertexCount

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.mesh.Vertices = append(r.mesh.Vertices, v[0], v[1], v[2])
			r.vertexCount++
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			r.openGroup(lineTokens[1])
		case "f":
			indices, err := r.parseFace(lineTokens, relVertexOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			// If no group has been defined create a default one
			if len(r.mesh.Groups) == 0 {
				r.openGroup("default")
			}
			r.mesh.Indices = append(r.mesh.Indices, indices...)
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	return nil
}

// Close the current group and start a new one.
func (r *wavefrontReader) openGroup(name string) {
	r.closeGroup()
	r.mesh.Groups = append(r.mesh.Groups, Group{
		Name:      name,
		FirstFace: r.mesh.FaceCount(),
	})
}

// Finalize the face count of the last group, dropping it if it holds no
// faces.
func (r *wavefrontReader) closeGroup() {
	last := len(r.mesh.Groups) - 1
	if last < 0 {
		return
	}

	group := &r.mesh.Groups[last]
	group.FaceCount = r.mesh.FaceCount() - group.FirstFace
	if group.FaceCount == 0 {
		r.mesh.Groups = r.mesh.Groups[:last]
	}
}

// Parse a face definition and return its vertex indices. Faces with more
// than 3 vertices are split into a triangle fan around the first vertex.
func (r *wavefrontReader) parseFace(lineTokens []string, relVertexOffset int) ([]uint32, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected at least 3 arguments; got %d`, len(lineTokens)-1)
	}

	polygon := make([]uint32, 0, len(lineTokens)-1)
	expIndices := 0
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], r.vertexCount, relVertexOffset)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		polygon = append(polygon, uint32(vOffset))
	}

	indices := make([]uint32, 0, (len(polygon)-2)*3)
	for fanIndex := 1; fanIndex+1 < len(polygon); fanIndex++ {
		indices = append(indices, polygon[0], polygon[fanIndex], polygon[fanIndex+1])
	}
	return indices, nil
}

// Convert a 1-based (or negative, relative to the end of the list) face
// index into an offset into the coordinate list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if index == 0 || vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}
