package reader

import (
	"time"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/log"
)

type jsonSceneReader struct {
	logger log.Logger
}

// Create a new json scene reader
func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("reader"),
	}
}

// Read scene definition from a json document.
func (r *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Document, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	doc, err := scene.DecodeJSON(sceneRes)
	if err != nil {
		return nil, err
	}

	r.logger.Infof("parsed %d objects in %d ms", len(doc.Objects), time.Since(start).Nanoseconds()/1e6)
	return doc, nil
}

type yamlSceneReader struct {
	logger log.Logger
}

// Create a new yaml scene reader
func newYAMLSceneReader() *yamlSceneReader {
	return &yamlSceneReader{
		logger: log.New("reader"),
	}
}

// Read scene definition from a yaml document.
func (r *yamlSceneReader) Read(sceneRes *asset.Resource) (*scene.Document, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	doc, err := scene.DecodeYAML(sceneRes)
	if err != nil {
		return nil, err
	}

	r.logger.Infof("parsed %d objects in %d ms", len(doc.Objects), time.Since(start).Nanoseconds()/1e6)
	return doc, nil
}
