package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/spheretrace/asset/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Document) error
}

// Write scene to a json, yaml or zip bundle file based on the filename extension.
func WriteScene(doc *scene.Document, filename string) error {
	var writer Writer
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		writer = newDocumentWriter(filename, (*scene.Document).EncodeJSON)
	case ".yaml", ".yml":
		writer = newDocumentWriter(filename, (*scene.Document).EncodeYAML)
	case ".zip":
		writer = newZipSceneWriter(filename)
	default:
		return fmt.Errorf("writer: unsupported scene format %q", ext)
	}
	return writer.Write(doc)
}

// Create a file, run fn against it and close it, reporting the first error.
func withFile(filename string, fn func(f *os.File) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return fn(f)
}
