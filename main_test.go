package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func writeScene(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
	return path
}

const boxObj = `c 1 1 1
e 0
v 0 0 0
v 555 0 0
v 555 0 555
v 0 0 555
f 1 2 3 4
v 0 555 0
v 555 555 0
v 555 555 555
v 0 555 555
f 8 7 6 5
`

func TestSolveFileObj(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "box.obj", boxObj)

	patches, err := solveFile(path, pipelineConfig{PatchSize: 200, Iterations: 1, ColorBlending: true}, false, discardLogger())
	if err != nil {
		t.Fatalf("solveFile() error = %v", err)
	}
	if len(patches) == 0 {
		t.Fatal("expected at least one patch")
	}
}

func TestSolveFilePat(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "room.pat", "c 1 1 1\np 0 0 0 0 1 0 1 1 0 1 0 0 1\n")

	patches, err := solveFile(path, pipelineConfig{PatchSize: 1, Iterations: 1, ColorBlending: true}, false, discardLogger())
	if err != nil {
		t.Fatalf("solveFile() error = %v", err)
	}
	if len(patches) != 1 {
		t.Fatalf("len(patches) = %d, want 1", len(patches))
	}
}

func TestSolveFileUnrecognizedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.txt", "not a scene\n")

	_, err := solveFile(path, pipelineConfig{PatchSize: 1, Iterations: 1}, false, discardLogger())
	if err == nil {
		t.Fatal("expected an error for an unrecognized extension")
	}
}

func TestSolveFileMissingFile(t *testing.T) {
	_, err := solveFile(filepath.Join(t.TempDir(), "missing.obj"), pipelineConfig{PatchSize: 1, Iterations: 1}, false, discardLogger())
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
