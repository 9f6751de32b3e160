package extract

import "context"

// BBox is a line bounding hint in page pixel coordinates: x0, y0, x1, y1.
type BBox [4]float64

// Line is one OCR text line with its bounding hint.
type Line struct {
	Text string
	BBox BBox
}

// Page is the OCR output for one rendered page. A dropped page keeps its
// number with empty text.
type Page struct {
	Number int
	Text   string
	Lines  []Line
}

// PageExtractor is the OCR collaborator contract: page-ordered text with
// bounding hints. Per-page failures are absorbed (empty page + warning);
// an error is returned only when every page failed.
type PageExtractor interface {
	ExtractPages(ctx context.Context, pdfPath string) (pages []Page, warnings []string, err error)
}
