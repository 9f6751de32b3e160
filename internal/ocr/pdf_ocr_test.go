package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/medassure/bill-verifier/internal/common"
)

// stubRunner fakes pdftoppm (by touching page files) and tesseract (by
// returning canned TSV per page).
type stubRunner struct {
	dir      string
	pages    int
	tsvByImg map[string]string
	errByImg map[string]error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= s.pages; i++ {
			path := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	// tesseract <img> stdout ...
	img := args[0]
	if err := s.errByImg[filepath.Base(img)]; err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(s.tsvByImg[filepath.Base(img)]), nil, nil
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"

func tsvWord(block, par, line int, left, top, w, h int, word string) string {
	return fmt.Sprintf("5\t1\t%d\t%d\t%d\t1\t%d\t%d\t%d\t%d\t90\t%s\n",
		block, par, line, left, top, w, h, word)
}

func testExtractor(t *testing.T, s *stubRunner) (*Extractor, string) {
	t.Helper()
	dir := t.TempDir()
	pdf := filepath.Join(dir, "original.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := common.OCRConfig{Pdftoppm: "pdftoppm", Tesseract: "tesseract", DPI: 300, Language: "eng"}
	return NewExtractor(cfg, nil).WithRunCommand(s.Run), pdf
}

func TestExtractPagesMergesLines(t *testing.T) {
	tsv := tsvHeader +
		tsvWord(1, 1, 1, 10, 10, 50, 12, "MRI") +
		tsvWord(1, 1, 1, 70, 10, 60, 12, "BRAIN") +
		tsvWord(1, 1, 2, 10, 30, 40, 12, "8500")
	s := &stubRunner{pages: 1, tsvByImg: map[string]string{"page-1.png": tsv}}
	e, pdf := testExtractor(t, s)

	pages, warnings, err := e.ExtractPages(context.Background(), pdf)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("pages = %+v", pages)
	}
	if pages[0].Text != "MRI BRAIN\n8500" {
		t.Errorf("text = %q", pages[0].Text)
	}
	if len(pages[0].Lines) != 2 {
		t.Fatalf("lines = %+v", pages[0].Lines)
	}
	if got := pages[0].Lines[0].BBox; got != [4]float64{10, 10, 130, 22} {
		t.Errorf("merged bbox = %v", got)
	}
}

func TestExtractPagesAbsorbsPartialFailure(t *testing.T) {
	tsv := tsvHeader + tsvWord(1, 1, 1, 0, 0, 10, 10, "ok")
	s := &stubRunner{
		pages:    2,
		tsvByImg: map[string]string{"page-2.png": tsv},
		errByImg: map[string]error{"page-1.png": errors.New("bad page")},
	}
	e, pdf := testExtractor(t, s)

	pages, warnings, err := e.ExtractPages(context.Background(), pdf)
	if err != nil {
		t.Fatalf("partial failure must not error: %v", err)
	}
	if len(pages) != 2 || pages[0].Text != "" || pages[1].Text != "ok" {
		t.Errorf("pages = %+v", pages)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "page 1") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestExtractPagesFailsWhenEveryPageFails(t *testing.T) {
	s := &stubRunner{
		pages: 2,
		errByImg: map[string]error{
			"page-1.png": errors.New("bad"),
			"page-2.png": errors.New("bad"),
		},
	}
	e, pdf := testExtractor(t, s)

	_, _, err := e.ExtractPages(context.Background(), pdf)
	if !errors.Is(err, common.ErrOCRFailure) {
		t.Fatalf("expected OCR failure, got %v", err)
	}
}
