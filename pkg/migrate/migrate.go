// Package migrate converts a WordPress export into a Markdown archive.
package migrate

import (
	"fmt"
	"io"

	"github.com/vdibart/wp2md/pkg/archive"
	"github.com/vdibart/wp2md/pkg/export"
	"github.com/vdibart/wp2md/pkg/naming"
	"github.com/vdibart/wp2md/pkg/normalize"
	"github.com/vdibart/wp2md/pkg/render"
)

// Options configures a migration run.
type Options struct {
	Source    string
	OutputDir string
	Out       io.Writer // progress; nil discards
	DryRun    bool
}

// PostResult describes one written post.
type PostResult struct {
	Path  string       `json:"path"`
	Title string       `json:"title"`
	Date  string       `json:"date"`
	Stats render.Stats `json:"stats"`
}

// MigrationResult contains the results of a migration.
type MigrationResult struct {
	Source      string       `json:"source"`
	OutputDir   string       `json:"output_dir"`
	Items       int          `json:"items"`
	Attachments int          `json:"attachments_skipped"`
	Written     int          `json:"posts_written"`
	DryRun      bool         `json:"dry_run"`
	Posts       []PostResult `json:"posts"`
}

// Converted is a post ready to be written.
type Converted struct {
	Post export.Post
	Name naming.Name
	Body string
}

// Convert normalizes, converts and names a single post.
func Convert(p export.Post) (*Converted, error) {
	body, err := render.ToMarkdown(normalize.Content(p.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to convert %q: %w", p.Title, err)
	}

	name, err := naming.New(p.Title, p.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to name %q: %w", p.Title, err)
	}

	return &Converted{Post: p, Name: name, Body: body}, nil
}

// Run loads opts.Source and writes every post under opts.OutputDir.
func Run(opts Options) (*MigrationResult, error) {
	e, err := export.LoadFile(opts.Source)
	if err != nil {
		return nil, err
	}

	w := archive.New(opts.OutputDir, opts.Out)
	w.DryRun = opts.DryRun

	result, err := Migrate(e, w)
	result.Source = opts.Source
	return result, err
}

// Migrate writes the posts of e one at a time in document order. The first
// failure stops the run; the result still lists what was written before it.
func Migrate(e *export.Export, w *archive.Writer) (*MigrationResult, error) {
	result := &MigrationResult{
		OutputDir:   w.Root,
		Items:       e.Len(),
		Attachments: e.Attachments(),
		DryRun:      w.DryRun,
		Posts:       []PostResult{},
	}

	for post, err := range e.Posts() {
		if err != nil {
			return result, err
		}

		c, err := Convert(post)
		if err != nil {
			return result, err
		}

		path, err := w.Write(post.Title, c.Name, c.Body)
		if err != nil {
			return result, fmt.Errorf("failed to write %q: %w", post.Title, err)
		}

		result.Written++
		result.Posts = append(result.Posts, PostResult{
			Path:  path,
			Title: post.Title,
			Date:  c.Name.Display(),
			Stats: render.Inspect(c.Body),
		})
	}

	return result, nil
}
