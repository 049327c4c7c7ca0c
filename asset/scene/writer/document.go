package writer

import (
	"io"
	"os"

	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/log"
)

type encodeFn func(*scene.Document, io.Writer) error

type documentWriter struct {
	logger    log.Logger
	sceneFile string
	encode    encodeFn
}

// Create a writer emitting a plain scene document.
func newDocumentWriter(sceneFile string, encode encodeFn) *documentWriter {
	return &documentWriter{
		logger:    log.New("writer"),
		sceneFile: sceneFile,
		encode:    encode,
	}
}

// Write scene definition.
func (w *documentWriter) Write(doc *scene.Document) error {
	w.logger.Noticef("writing scene with %d objects to %s", len(doc.Objects), w.sceneFile)
	return withFile(w.sceneFile, func(f *os.File) error {
		return w.encode(doc, f)
	})
}
