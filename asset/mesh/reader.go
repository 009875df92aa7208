package mesh

import (
	"fmt"
	"strings"

	"github.com/achilleasa/meshpick/asset"
)

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh geometry from a resource.
	Read(*asset.Resource) (*Mesh, error)
}

// Read a mesh from a local file or an http(s) URL.
func ReadMesh(pathToMesh string) (*Mesh, error) {
	// Select reader based on file extension
	var reader Reader
	if strings.HasSuffix(strings.ToLower(pathToMesh), ".obj") {
		reader = newWavefrontReader()
	} else {
		return nil, fmt.Errorf("readMesh: unsupported file format")
	}

	res, err := asset.NewResource(pathToMesh, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
