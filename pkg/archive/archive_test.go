package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vdibart/wp2md/pkg/naming"
)

func mustName(t *testing.T, title, date string) naming.Name {
	t.Helper()
	n, err := naming.New(title, date)
	if err != nil {
		t.Fatalf("naming.New failed: %v", err)
	}
	return n
}

func TestDocument(t *testing.T) {
	got := Document("Hello, World!", "Thursday 8th July 2021", "Hi")
	want := "# Hello, World!\n\n## Thursday 8th July 2021\n\nHi"
	if got != want {
		t.Errorf("Document = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	w := New(root, &out)

	path, err := w.Write("Hello, World!", mustName(t, "Hello, World!", "2021-07-08T10:00:00"), "Hi")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := filepath.Join(root, "2021", "2021-07", "2021-07-08 Hello World.md")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "# Hello, World!\n\n## Thursday 8th July 2021\n\nHi" {
		t.Errorf("file content = %q", data)
	}

	progress := out.String()
	for _, want := range []string{
		"Creating Parent Path for 2021\n",
		"Creating Child Path for 2021-07\n",
		path + "\n",
	} {
		if !strings.Contains(progress, want) {
			t.Errorf("progress %q missing %q", progress, want)
		}
	}
}

func TestEnsureDirs_Idempotent(t *testing.T) {
	root := t.TempDir()
	w := New(root, nil)
	name := mustName(t, "Post", "2020-02-02")

	created, err := w.EnsureDirs(name)
	if err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}
	if len(created) != 2 {
		t.Errorf("first call created %v, want year and month", created)
	}

	created, err = w.EnsureDirs(name)
	if err != nil {
		t.Fatalf("second EnsureDirs failed: %v", err)
	}
	if len(created) != 0 {
		t.Errorf("second call created %v, want none", created)
	}
}

func TestEnsureDirs_AnnouncesOnce(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	w := New(root, &out)

	for _, date := range []string{"2020-02-02", "2020-02-03", "2020-03-01"} {
		if _, err := w.Write("Post", mustName(t, "Post", date), "body"); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	progress := out.String()
	if n := strings.Count(progress, "Creating Parent Path for 2020\n"); n != 1 {
		t.Errorf("year directory announced %d times, want 1\n%s", n, progress)
	}
	for _, month := range []string{"2020-02", "2020-03"} {
		if n := strings.Count(progress, "Creating Child Path for "+month+"\n"); n != 1 {
			t.Errorf("month %s announced %d times, want 1\n%s", month, n, progress)
		}
	}
}

func TestWrite_Overwrites(t *testing.T) {
	root := t.TempDir()
	w := New(root, nil)
	name := mustName(t, "Same", "2020-02-02")

	if _, err := w.Write("Same", name, "first version, longer than the second"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	path, err := w.Write("Same", name, "second")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.HasSuffix(string(data), "\n\nsecond") {
		t.Errorf("file was not overwritten: %q", data)
	}
}

func TestWrite_DryRun(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	w := New(root, &out)
	w.DryRun = true

	path, err := w.Write("Post", mustName(t, "Post", "2020-02-02"), "body")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "2020")); !os.IsNotExist(err) {
		t.Error("dry run created a directory")
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("dry run did not report %q: %q", path, out.String())
	}
}

func TestWrite_UnwritableRoot(t *testing.T) {
	root := t.TempDir()
	// A file where the year directory should go
	if err := os.WriteFile(filepath.Join(root, "2020"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	w := New(root, nil)

	if _, err := w.Write("Post", mustName(t, "Post", "2020-02-02"), "body"); err == nil {
		t.Error("expected error when year path is a file")
	}
}
