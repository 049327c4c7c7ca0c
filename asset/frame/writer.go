package frame

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var logger = log.New("frame writer")

// Encode img using the format implied by the extension (.png, .bmp, .tif or .tiff).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("frame: unsupported image format %q", ext)
}

// Write img to a file. The image format is selected by the file extension.
func Write(img image.Image, filename string) (err error) {
	ext := filepath.Ext(filename)
	if !Supported(ext) {
		return fmt.Errorf("frame: unsupported image format %q", ext)
	}

	start := time.Now()
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	bw := bufio.NewWriter(f)
	if err = Encode(bw, img, ext); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}

	logger.Noticef("wrote %dx%d frame to %s in %d ms", img.Bounds().Dx(), img.Bounds().Dy(), filename, time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Check whether an image extension is supported.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}
