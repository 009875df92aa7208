package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Remote mesh fetches give up after this long.
const fetchTimeout = 30 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// A Resource is a streamable mesh source backed by a local file or an
// http(s) URL. Callers must Close it once done reading.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path or URL of this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a mesh resource. If relTo is specified and pathToResource is not an
// absolute URL, the resource path is resolved against the directory of relTo.
// Both local files and http/https URLs are supported.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	if resURL.Scheme == "" && relTo != nil {
		resURL, err = resolveRelative(resURL.Path, relTo)
		if err != nil {
			return nil, err
		}
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := httpClient.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Resolve relPath against the directory containing relTo.
func resolveRelative(relPath string, relTo *Resource) (*url.URL, error) {
	if relTo.IsRemote() {
		resolved := *relTo.url
		resolved.Path = path.Join(path.Dir(relTo.url.Path), relPath)
		return &resolved, nil
	}

	if filepath.IsAbs(relPath) {
		return &url.URL{Path: relPath}, nil
	}

	parentPath, err := filepath.Abs(relTo.url.Path)
	if err != nil {
		return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", relTo.url.String(), err.Error())
	}
	return &url.URL{Path: filepath.Join(filepath.Dir(parentPath), relPath)}, nil
}

// Create a resource from a reader. Relative includes are resolved against
// name.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, err := url.Parse(name)
	if err != nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}
