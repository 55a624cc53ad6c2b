package extractor

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// adjacency tolerance, as a fraction of the font size
const glyphGapRatio = 0.2

type pdfPageReader struct{}

// ReadPages returns the text items of each page in content-stream order.
// Glyphs that continue each other on the same baseline form one item.
func (pdfPageReader) ReadPages(data []byte) (pages [][]string, err error) {
	// the reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	n := r.NumPage()
	pages = make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, groupGlyphs(p.Content().Text))
	}
	return pages, nil
}

func groupGlyphs(glyphs []pdf.Text) []string {
	var (
		items []string
		cur   strings.Builder
		prev  *pdf.Text
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			items = append(items, s)
		}
		cur.Reset()
		prev = nil
	}

	for i := range glyphs {
		g := &glyphs[i]
		// TJ arrays end with a synthetic newline glyph
		if g.S == "\n" || g.S == "\r" {
			flush()
			continue
		}
		if prev != nil && !continues(prev, g) {
			flush()
		}
		cur.WriteString(g.S)
		prev = g
	}
	flush()
	return items
}

// continues reports whether next is drawn right after prev on the same line.
func continues(prev, next *pdf.Text) bool {
	tol := math.Max(glyphGapRatio*math.Abs(prev.FontSize), 0.5)
	if math.Abs(next.Y-prev.Y) > tol {
		return false
	}
	return math.Abs(next.X-(prev.X+prev.W)) <= tol
}
