package writer

import (
	"archive/zip"
	"os"
	"time"

	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/log"
)

const (
	dataFile = "scene.json"
)

type zipSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new zip scene writer
func newZipSceneWriter(sceneFile string) *zipSceneWriter {
	return &zipSceneWriter{
		logger:    log.New("writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to a compressed zip bundle.
func (w *zipSceneWriter) Write(doc *scene.Document) error {
	w.logger.Noticef("writing compressed scene to %s", w.sceneFile)
	start := time.Now()

	err := withFile(w.sceneFile, func(f *os.File) error {
		zw := zip.NewWriter(f)

		cw, err := zw.Create(dataFile)
		if err != nil {
			zw.Close()
			return err
		}
		if err = doc.EncodeJSON(cw); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	})
	if err != nil {
		return err
	}

	w.logger.Infof("compressed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
