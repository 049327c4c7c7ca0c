package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/log"
)

type zipSceneReader struct {
	logger log.Logger
}

// Create a new zip scene reader
func newZipSceneReader() *zipSceneReader {
	return &zipSceneReader{
		logger: log.New("reader"),
	}
}

// Read scene definition from a zip bundle. The bundle must contain exactly
// one scene document (scene.json, scene.yaml or scene.yml).
func (p *zipSceneReader) Read(sceneRes *asset.Resource) (*scene.Document, error) {
	p.logger.Noticef(`unpacking scene bundle "%s"`, sceneRes.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var doc *scene.Document
	for _, f := range zr.File {
		var reader Reader
		switch f.Name {
		case "scene.json", "scene.yaml", "scene.yml":
			reader, _ = ForExt(path.Ext(f.Name))
		default:
			p.logger.Warningf("unknown file %s in scene bundle; skipping", f.Name)
			continue
		}

		if doc != nil {
			return nil, fmt.Errorf("zip reader: bundle contains more than one scene document")
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		doc, err = reader.Read(asset.NewResourceFromStream(f.Name, rc))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zip reader: failed to load %s: %w", f.Name, err)
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("zip reader: bundle does not contain a scene document")
	}

	p.logger.Infof("unpacked scene bundle in %d ms", time.Since(start).Nanoseconds()/1e6)
	return doc, nil
}
