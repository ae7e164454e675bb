// Package export reads WordPress export (WXR) documents.
package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/net/html/charset"
)

// Attachment is the post type WordPress uses for uploaded media.
const Attachment = "attachment"

// Untitled replaces missing or empty post titles.
const Untitled = "Untitled"

// ErrMalformed is returned for input that is not a single well-formed XML document.
var ErrMalformed = errors.New("export is not a well-formed XML document")

// ErrMissingDate is returned for an item without a publish date.
var ErrMissingDate = errors.New("post has no publish date")

// Post is a single non-attachment item from the export.
type Post struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"-"`
}

// item mirrors the parts of a WXR <item> we read. Fields without a
// namespace match on local name, so wp:post_type works for every WXR
// version. content:encoded needs its namespace to keep excerpt:encoded out.
type item struct {
	Title    string  `xml:"title"`
	PostType string  `xml:"post_type"`
	PostDate *string `xml:"post_date"`
	Content  string  `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

// Export holds every item of a parsed document.
type Export struct {
	items []item
}

// LoadFile parses the export document at path.
func LoadFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a whole export document. Items are collected wherever they
// appear in the tree. A malformed document fails before any item is returned.
func Load(r io.Reader) (*Export, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	e := &Export{}
	depth := 0
	rooted := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse export: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if rooted {
					return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformed, t.Name.Local)
				}
				rooted = true
			}
			if t.Name.Local != "item" {
				depth++
				continue
			}

			// DecodeElement consumes the matching end tag, so depth is unchanged.
			var it item
			if err := dec.DecodeElement(&it, &t); err != nil {
				return nil, fmt.Errorf("failed to parse export item: %w", err)
			}
			e.items = append(e.items, it)
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
		}
	}

	if !rooted {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return e, nil
}

// Len returns the number of items in the document, attachments included.
func (e *Export) Len() int {
	return len(e.items)
}

// Attachments returns the number of attachment items.
func (e *Export) Attachments() int {
	n := 0
	for _, it := range e.items {
		if it.PostType == Attachment {
			n++
		}
	}
	return n
}

// Posts yields the non-attachment items in document order. An item
// without a publish date yields ErrMissingDate.
func (e *Export) Posts() iter.Seq2[Post, error] {
	return func(yield func(Post, error) bool) {
		for _, it := range e.items {
			if it.PostType == Attachment {
				continue
			}
			if !yield(it.post()) {
				return
			}
		}
	}
}

func (it item) post() (Post, error) {
	title := it.Title
	if title == "" {
		title = Untitled
	}

	if it.PostDate == nil || *it.PostDate == "" {
		return Post{}, fmt.Errorf("%q: %w", title, ErrMissingDate)
	}

	return Post{
		Type:    it.PostType,
		Title:   title,
		Date:    *it.PostDate,
		Content: it.Content,
	}, nil
}
