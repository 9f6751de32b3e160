// Package ocr renders PDF pages and OCRs them with external tools
// (pdftoppm + tesseract). It implements the page-extractor contract the
// pipeline consumes.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/extract"
)

// runCommand invokes one external tool; tests stub this to fake
// pdftoppm and tesseract without the binaries installed.
type runCommand func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Extractor shells out per page so a single bad page cannot sink the
// whole document.
type Extractor struct {
	cfg    common.OCRConfig
	run    runCommand
	logger *slog.Logger
}

func NewExtractor(cfg common.OCRConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, run: runTool, logger: logger}
}

// WithRunCommand swaps the tool invoker (tests).
func (e *Extractor) WithRunCommand(run runCommand) *Extractor {
	e.run = run
	return e
}

func runTool(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// exec runs one tool invocation with OCR-scoped logging: which tool ran
// against which target, how long it took, and capped stderr on failure.
func (e *Extractor) exec(ctx context.Context, tool, target string, args ...string) ([]byte, error) {
	start := time.Now()
	out, errb, err := e.run(ctx, tool, args...)
	if err != nil {
		e.logger.Error("ocr.tool_failed",
			"tool", tool,
			"target", filepath.Base(target),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
			"stderr", capOutput(string(errb), 2<<10),
		)
		return nil, fmt.Errorf("%s: %v: %s", tool, err, capOutput(string(errb), 512))
	}
	e.logger.Debug("ocr.tool_ok",
		"tool", tool,
		"target", filepath.Base(target),
		"elapsed_ms", time.Since(start).Milliseconds(),
		"stdout_bytes", len(out),
	)
	return out, nil
}

// RenderPages rasterizes the PDF into page images under dir and returns
// the ordered image paths.
func (e *Extractor) RenderPages(ctx context.Context, pdfPath, dir string) ([]string, error) {
	prefix := filepath.Join(dir, "page")
	if _, err := e.exec(ctx, e.cfg.Pdftoppm, pdfPath,
		"-r", strconv.Itoa(e.cfg.DPI), "-png", pdfPath, prefix); err != nil {
		return nil, err
	}
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		e.logger.Warn("ocr.page_cap", "rendered", len(matches), "cap", e.cfg.MaxPages)
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no images")
	}
	return matches, nil
}

// ExtractPages renders the PDF and OCRs each page. A failed page yields
// an empty page plus a warning; the call errors only when every page
// failed.
func (e *Extractor) ExtractPages(ctx context.Context, pdfPath string) ([]extract.Page, []string, error) {
	images, err := e.RenderPages(ctx, pdfPath, filepath.Dir(pdfPath))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrOCRFailure, err)
	}

	pages := make([]extract.Page, 0, len(images))
	var warnings []string
	failed := 0
	for i, img := range images {
		page := extract.Page{Number: i + 1}
		text, lines, err := e.ocrImage(ctx, img)
		if err != nil {
			failed++
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i+1, err))
		} else {
			page.Text = text
			page.Lines = lines
		}
		pages = append(pages, page)
	}
	if failed == len(images) {
		return nil, warnings, fmt.Errorf("%w: all %d pages failed", common.ErrOCRFailure, len(images))
	}
	if failed > 0 {
		e.logger.Warn("ocr.partial_failure", "pdf", pdfPath, "failed", failed, "total", len(images))
	}
	return pages, warnings, nil
}

// ocrImage runs tesseract in TSV mode so line text comes with bounding
// boxes.
func (e *Extractor) ocrImage(ctx context.Context, imgPath string) (string, []extract.Line, error) {
	out, err := e.exec(ctx, e.cfg.Tesseract, imgPath,
		imgPath, "stdout", "-l", e.cfg.Language, "--psm", "6", "tsv")
	if err != nil {
		return "", nil, err
	}
	text, lines := parseTSV(string(out))
	return text, lines, nil
}

// parseTSV folds tesseract TSV word rows into lines with merged boxes.
func parseTSV(tsv string) (string, []extract.Line) {
	type lineKey struct{ block, par, line int }

	var order []lineKey
	words := map[lineKey][]string{}
	boxes := map[lineKey]extract.BBox{}

	rows := strings.Split(tsv, "\n")
	for i, row := range rows {
		if i == 0 || strings.TrimSpace(row) == "" {
			continue // header / trailing blank
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}
		level, _ := strconv.Atoi(cols[0])
		if level != 5 { // word level
			continue
		}
		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}
		block, _ := strconv.Atoi(cols[2])
		par, _ := strconv.Atoi(cols[3])
		line, _ := strconv.Atoi(cols[4])
		left, _ := strconv.ParseFloat(cols[6], 64)
		top, _ := strconv.ParseFloat(cols[7], 64)
		width, _ := strconv.ParseFloat(cols[8], 64)
		height, _ := strconv.ParseFloat(cols[9], 64)

		k := lineKey{block, par, line}
		if _, seen := words[k]; !seen {
			order = append(order, k)
			boxes[k] = extract.BBox{left, top, left + width, top + height}
		} else {
			b := boxes[k]
			if left < b[0] {
				b[0] = left
			}
			if top < b[1] {
				b[1] = top
			}
			if left+width > b[2] {
				b[2] = left + width
			}
			if top+height > b[3] {
				b[3] = top + height
			}
			boxes[k] = b
		}
		words[k] = append(words[k], word)
	}

	var lines []extract.Line
	var b strings.Builder
	for _, k := range order {
		text := strings.Join(words[k], " ")
		lines = append(lines, extract.Line{Text: text, BBox: boxes[k]})
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}
	return b.String(), lines
}

func capOutput(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
