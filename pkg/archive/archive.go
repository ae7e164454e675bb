// Package archive writes converted posts into a year/month directory tree.
package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/vdibart/wp2md/pkg/naming"
)

// Writer places Markdown files under Root and reports progress to Out.
type Writer struct {
	Root string
	Out  io.Writer
	// DryRun reports paths without touching the filesystem.
	DryRun bool
}

// New returns a Writer for root that reports to out. A nil out discards progress.
func New(root string, out io.Writer) *Writer {
	if out == nil {
		out = io.Discard
	}
	return &Writer{Root: root, Out: out}
}

// Document lays out a post file: title heading, date subheading, body.
func Document(title, date, body string) string {
	return "# " + title + "\n\n" + "## " + date + "\n\n" + body
}

// EnsureDirs creates the year and month directories for name when they
// are missing and returns the ones it created. Existing directories are fine.
func (w *Writer) EnsureDirs(name naming.Name) ([]string, error) {
	dirs := []struct {
		path    string
		message string
	}{
		{name.YearDir(w.Root), "Creating Parent Path for " + name.Year},
		{name.MonthDir(w.Root), "Creating Child Path for " + name.Year + "-" + name.Month},
	}

	var created []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir.path); err == nil {
			if !info.IsDir() {
				return created, fmt.Errorf("%s exists and is not a directory", dir.path)
			}
			continue
		}
		if err := os.MkdirAll(dir.path, 0755); err != nil {
			return created, fmt.Errorf("failed to create directory: %w", err)
		}
		fmt.Fprintln(w.Out, dir.message)
		created = append(created, dir.path)
	}
	return created, nil
}

// Write stores a post at its archive path, replacing any existing file,
// and returns the path.
func (w *Writer) Write(title string, name naming.Name, body string) (string, error) {
	path := name.Path(w.Root)
	if w.DryRun {
		fmt.Fprintf(w.Out, "%s (dry run)\n", path)
		return path, nil
	}

	if _, err := w.EnsureDirs(name); err != nil {
		return "", err
	}

	content := Document(title, name.Display(), body)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write post file: %w", err)
	}

	fmt.Fprintln(w.Out, path)
	return path, nil
}
