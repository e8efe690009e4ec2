package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/internal/generator"
)

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, data, want)
	}
}

func TestMaterialize_CreatesSkeletonAndFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-app")
	artifacts := []generator.Artifact{
		{Path: "package.json", Content: []byte("{}\n")},
		{Path: "src/main.tsx", Content: []byte("main\n")},
		{Path: "src/lib/deep/file.ts", Content: []byte("deep\n")},
	}

	result, err := NewMaterializer(nil).Materialize(context.Background(), root, artifacts)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	for _, dir := range defs.SkeletonDirs {
		if !dirExists(filepath.Join(root, "src", dir)) {
			t.Errorf("expected directory src/%s", dir)
		}
	}
	if len(result.CreatedDirs) != len(defs.SkeletonDirs) {
		t.Errorf("CreatedDirs = %d, want %d", len(result.CreatedDirs), len(defs.SkeletonDirs))
	}
	if result.CreatedDirs[0] != "src/components" {
		t.Errorf("CreatedDirs[0] = %q, want src/components", result.CreatedDirs[0])
	}

	assertFileContent(t, filepath.Join(root, "package.json"), "{}\n")
	assertFileContent(t, filepath.Join(root, "src", "main.tsx"), "main\n")
	assertFileContent(t, filepath.Join(root, "src", "lib", "deep", "file.ts"), "deep\n")

	want := []string{"package.json", "src/main.tsx", "src/lib/deep/file.ts"}
	if len(result.CreatedFiles) != len(want) {
		t.Fatalf("CreatedFiles = %v, want %v", result.CreatedFiles, want)
	}
	for i := range want {
		if result.CreatedFiles[i] != want[i] {
			t.Errorf("CreatedFiles[%d] = %q, want %q", i, result.CreatedFiles[i], want[i])
		}
	}
	if result.Root != root {
		t.Errorf("Root = %q, want %q", result.Root, root)
	}
}

func TestMaterialize_TargetExists(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
	}{
		{
			name: "empty directory",
			setup: func(t *testing.T, root string) {
				if err := os.Mkdir(root, 0o755); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "regular file",
			setup: func(t *testing.T, root string) {
				if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), "taken")
			tt.setup(t, root)

			_, err := NewMaterializer(nil).Materialize(context.Background(), root, []generator.Artifact{
				{Path: "package.json", Content: []byte("{}")},
			})
			if !errors.Is(err, ErrTargetExists) {
				t.Fatalf("Materialize() error = %v, want ErrTargetExists", err)
			}
			if _, statErr := os.Stat(filepath.Join(root, "package.json")); statErr == nil {
				t.Error("package.json written despite existing target")
			}
			if dirExists(filepath.Join(root, "src")) {
				t.Error("skeleton created despite existing target")
			}
		})
	}
}

func TestMaterialize_RejectsEscapingPaths(t *testing.T) {
	for _, p := range []string{"../outside.txt", "/abs/path", ""} {
		t.Run(p, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), "app")
			_, err := NewMaterializer(nil).Materialize(context.Background(), root, []generator.Artifact{
				{Path: p, Content: []byte("x")},
			})
			if !errors.Is(err, ErrInvalidArtifactPath) {
				t.Errorf("Materialize(%q) error = %v, want ErrInvalidArtifactPath", p, err)
			}
		})
	}
}

func TestMaterialize_KeepsPartialOutput(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	result, err := NewMaterializer(nil).Materialize(context.Background(), root, []generator.Artifact{
		{Path: "package.json", Content: []byte("{}\n")},
		{Path: "../escape", Content: []byte("x")},
	})
	if !errors.Is(err, ErrInvalidArtifactPath) {
		t.Fatalf("Materialize() error = %v, want ErrInvalidArtifactPath", err)
	}

	assertFileContent(t, filepath.Join(root, "package.json"), "{}\n")
	for _, dir := range defs.SkeletonDirs {
		if !dirExists(filepath.Join(root, "src", dir)) {
			t.Errorf("src/%s removed after failed write", dir)
		}
	}
	if result == nil || len(result.CreatedFiles) != 1 || result.CreatedFiles[0] != "package.json" {
		t.Errorf("result = %+v, want only package.json created", result)
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(root), "escape")); statErr == nil {
		t.Error("escaping artifact written outside root")
	}
}

func TestMaterialize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := filepath.Join(t.TempDir(), "app")
	_, err := NewMaterializer(nil).Materialize(ctx, root, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Materialize() error = %v, want context.Canceled", err)
	}
	if _, statErr := os.Stat(root); statErr == nil {
		t.Error("root created despite cancelled context")
	}
}
