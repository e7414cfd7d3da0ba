package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/loader"
)

func TestSaveBoardSnapshot_SVGAndPNG(t *testing.T) {
	b, err := loader.Default().Board("softdev", "veis")
	if err != nil {
		t.Fatalf("Board: %v", err)
	}

	tmp := t.TempDir()
	cases := []struct {
		name string
		file string
	}{
		{"svg", "veis.svg"},
		{"png", "veis.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(tmp, tc.file)
			err := SaveBoardSnapshot(SnapshotOptions{
				Path:          out,
				Board:         b,
				WorkspaceName: "Softdev",
				Visibility:    board.VisibilityFor("softdev"),
			})
			if err != nil {
				t.Fatalf("SaveBoardSnapshot error: %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("output not created: %v", err)
			}
			if info.Size() == 0 {
				t.Fatalf("output file is empty")
			}
		})
	}

	data, err := os.ReadFile(filepath.Join(tmp, "veis.svg"))
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	for _, want := range []string{"Working on it (1)", "New (4)", "VEIS-102"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, "VEIS-101-1") {
		t.Error("child items should not appear on the kanban snapshot")
	}
}

func TestSaveBoardSnapshot_InvalidFormat(t *testing.T) {
	b, _ := loader.Default().Board("hr", "onboarding")
	err := SaveBoardSnapshot(SnapshotOptions{
		Path:   filepath.Join(t.TempDir(), "board.txt"),
		Format: "txt",
		Board:  b,
	})
	if err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestExportAll(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := ExportAll(context.Background(), loader.Default(), dir, "svg", log)
	if err != nil {
		t.Fatalf("ExportAll error: %v", err)
	}

	want := []string{"softdev-azdoc.svg", "softdev-veis.svg", "hr-recruitment.svg", "hr-onboarding.svg"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, name := range want {
		if filepath.Base(paths[i]) != name {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], name)
		}
		if _, err := os.Stat(paths[i]); err != nil {
			t.Errorf("missing %s: %v", paths[i], err)
		}
	}
	if !strings.Contains(buf.String(), "export complete") {
		t.Errorf("expected completion log, got %s", buf.String())
	}

	if _, err := ExportAll(context.Background(), loader.Default(), dir, "gif", log); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate = %q", got)
	}
}
