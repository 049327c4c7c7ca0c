package reader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/asset/scene/writer"
	"github.com/achilleasa/spheretrace/types"
)

const sceneJSON = `{
  "camera": {"look_from": [0, 0, 0], "look_at": [0, 0, -1], "vup": [0, 1, 0], "vfov": 90, "aspect_ratio": 2},
  "objects": [
    {"center": [0, 0, -1], "radius": 0.5, "material": {"Lambertian": {"albedo": [0.5, 0.5, 0.5]}}}
  ]
}`

func TestReadSceneFormats(t *testing.T) {
	dir := t.TempDir()
	doc := scene.Generate(types.NewRandomSource(7, 7))

	for _, name := range []string{"scene.json", "scene.yaml", "scene.yml", "bundle.zip"} {
		path := filepath.Join(dir, name)
		if err := writer.WriteScene(doc, path); err != nil {
			t.Fatalf("[%s] write failed: %v", name, err)
		}

		sc, err := ReadScene(path)
		if err != nil {
			t.Fatalf("[%s] read failed: %v", name, err)
		}
		if len(sc.Objects) != len(doc.Objects) {
			t.Fatalf("[%s] expected %d objects; got %d", name, len(doc.Objects), len(sc.Objects))
		}
		if sc.Camera.VFov != doc.Camera.VFov || sc.Camera.FocusDist != doc.Camera.FocusDist {
			t.Fatalf("[%s] unexpected camera %+v", name, sc.Camera)
		}
	}
}

func TestReadSceneOverHttp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scenes/one.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sceneJSON))
	}))
	defer server.Close()

	sc, err := ReadScene(server.URL + "/scenes/one.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Objects) != 1 || sc.Objects[0].Radius != 0.5 {
		t.Fatalf("unexpected scene objects %+v", sc.Objects)
	}

	if _, err = ReadScene(server.URL + "/scenes/missing.json"); err == nil {
		t.Fatal("expected an error for a missing remote scene")
	}
}

func TestReadSceneErrors(t *testing.T) {
	dir := t.TempDir()

	type spec struct {
		name    string
		payload string
		expErr  string
	}
	specs := []spec{
		{"scene.obj", sceneJSON, "unsupported scene format"},
		{"broken.json", `{"camera": `, "failed to parse"},
		{"empty.json", `{"camera": {"look_from": [0, 0, 0], "look_at": [0, 0, -1], "vup": [0, 1, 0], "vfov": 90, "aspect_ratio": 2}, "objects": []}`, "does not define any objects"},
		{"negative.yaml", "camera: {look_from: [0, 0, 0], look_at: [0, 0, -1], vup: [0, 1, 0], vfov: 90, aspect_ratio: 2}\nobjects:\n  - {center: [0, 0, 0], radius: -1, material: {Lambertian: {albedo: [1, 1, 1]}}}\n", "radius must not be negative"},
		{"empty.yaml", "", "does not define any objects"},
	}

	for index, s := range specs {
		path := filepath.Join(dir, s.name)
		if err := os.WriteFile(path, []byte(s.payload), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadScene(path)
		if err == nil || !strings.Contains(err.Error(), s.expErr) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", index, s.expErr, err)
		}
	}

	if _, err := ReadScene(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteSceneRejectsUnknownFormat(t *testing.T) {
	doc := scene.Generate(types.NewRandomSource(1, 1))
	if err := writer.WriteScene(doc, filepath.Join(t.TempDir(), "scene.txt")); err == nil {
		t.Fatal("expected an error for an unknown scene format")
	}
}
