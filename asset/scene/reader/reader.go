package reader

import (
	"fmt"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/asset/scene"
	core "github.com/achilleasa/spheretrace/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Document, error)
}

// Get a reader for the given file extension.
func ForExt(ext string) (Reader, error) {
	switch ext {
	case ".json":
		return newJSONSceneReader(), nil
	case ".yaml", ".yml":
		return newYAMLSceneReader(), nil
	case ".zip":
		return newZipSceneReader(), nil
	}
	return nil, fmt.Errorf("reader: unsupported scene format %q", ext)
}

// Read and validate a scene document from a local file or an http(s) URL.
func ReadDocument(filename string) (*scene.Document, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	defer res.Close()

	return ReadDocumentFrom(res)
}

// Read and validate a scene document from an open resource. The decoder is
// selected based on the resource extension.
func ReadDocumentFrom(res *asset.Resource) (*scene.Document, error) {
	reader, err := ForExt(res.Ext())
	if err != nil {
		return nil, err
	}

	doc, err := reader.Read(res)
	if err != nil {
		return nil, fmt.Errorf("reader: failed to parse %q: %w", res.Path(), err)
	}
	if err = doc.Validate(); err != nil {
		return nil, fmt.Errorf("reader: invalid scene %q: %w", res.Path(), err)
	}
	return doc, nil
}

// Read scene from file.
func ReadScene(filename string) (*core.Scene, error) {
	doc, err := ReadDocument(filename)
	if err != nil {
		return nil, err
	}
	return doc.Scene()
}
