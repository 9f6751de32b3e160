// Package catalog loads per-hospital tie-up rate sheets and builds the
// hospital, category, and item vector indices the verifier searches.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/medassure/bill-verifier/constants"
	"github.com/medassure/bill-verifier/internal/common"
	"github.com/medassure/bill-verifier/internal/embedding"
	"github.com/medassure/bill-verifier/internal/entity"
	"github.com/medassure/bill-verifier/internal/match"
	"github.com/medassure/bill-verifier/internal/normalize"
)

// ItemRef locates a tie-up item inside a hospital's sheet.
type ItemRef struct {
	Category int
	Item     int
}

// Hospital is one loaded rate sheet plus its prebuilt indices.
type Hospital struct {
	Name string
	Slug string

	Sheet entity.RateSheet

	CategoryIndex *match.Index   // ID = category ordinal
	ItemIndexes   []*match.Index // per category; ID = item ordinal
	UnionIndex    *match.Index   // all items; ID = ordinal into UnionRefs
	UnionRefs     []ItemRef
}

// Item resolves a (category, item) ref.
func (h *Hospital) Item(ref ItemRef) entity.TieUpItem {
	return h.Sheet.Categories[ref.Category].Items[ref.Item]
}

// Catalog is an immutable snapshot of every loaded hospital.
type Catalog struct {
	ModelID  string
	LoadedAt time.Time

	Hospitals     []*Hospital
	HospitalIndex *match.Index // ID = hospital ordinal

	byKey map[string]*Hospital // CollapseKey(name)
}

// Get resolves a hospital by case-insensitive, whitespace-collapsed name.
func (c *Catalog) Get(hospitalName string) (*Hospital, error) {
	h, ok := c.byKey[normalize.CollapseKey(hospitalName)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrHospitalNotFound, hospitalName)
	}
	return h, nil
}

// Names lists loaded hospital names in load order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Hospitals))
	for i, h := range c.Hospitals {
		out[i] = h.Name
	}
	return out
}

// Loader builds catalogs from a tie-up directory.
type Loader struct {
	Dir      string
	Embedder embedding.Embedder
	Cache    *EmbedCache
	Logger   *slog.Logger
}

// Load reads every *.json sheet under dir, validates it, and builds all
// indices. Any invalid file fails the whole load.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	paths, err := filepath.Glob(filepath.Join(l.Dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: scan %s: %v", common.ErrCatalogLoad, l.Dir, err)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no rate sheets found in %s", common.ErrCatalogLoad, l.Dir)
	}

	schema := rateSheetSchema(constants.TieUpItemTypes)
	cat := &Catalog{
		ModelID:  l.Embedder.ModelID(),
		LoadedAt: start,
		byKey:    map[string]*Hospital{},
	}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", common.ErrCatalogLoad, path, err)
		}
		if err := validateAgainstSchema(schema, raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrCatalogLoad, filepath.Base(path), err)
		}
		var sheet entity.RateSheet
		if err := jsonUnmarshalStrict(raw, &sheet); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", common.ErrCatalogLoad, filepath.Base(path), err)
		}

		key := normalize.CollapseKey(sheet.HospitalName)
		if _, dup := cat.byKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate hospital %q (%s)",
				common.ErrCatalogLoad, sheet.HospitalName, filepath.Base(path))
		}

		h, err := l.buildHospital(ctx, sheet)
		if err != nil {
			return nil, err
		}
		cat.Hospitals = append(cat.Hospitals, h)
		cat.byKey[key] = h
	}

	// Hospital-name index over all loaded sheets.
	hospIx := match.NewIndex("hospitals")
	var texts []string
	for _, h := range cat.Hospitals {
		texts = append(texts, normalize.Normalize(h.Name))
	}
	vecs, err := l.Cache.EmbedThrough(ctx, l.Embedder, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embed hospital names: %v", common.ErrCatalogLoad, err)
	}
	for i, v := range vecs {
		hospIx.Add(i, texts[i], v)
	}
	cat.HospitalIndex = hospIx

	logger.Info("catalog.loaded",
		"hospitals", len(cat.Hospitals),
		"dir", l.Dir,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cat, nil
}

// buildHospital embeds every category and item name (normalized, plus the
// medical core form for items) and assembles the per-hospital indices.
func (l *Loader) buildHospital(ctx context.Context, sheet entity.RateSheet) (*Hospital, error) {
	h := &Hospital{
		Name:  sheet.HospitalName,
		Slug:  Slug(sheet.HospitalName),
		Sheet: sheet,
	}

	// Collect all texts first so embedding happens in as few batches as
	// possible: category names, then item forms.
	type pending struct {
		index *match.Index
		id    int
		text  string
	}
	var todo []pending

	catIx := match.NewIndex("categories:" + h.Slug)
	for ci, c := range sheet.Categories {
		todo = append(todo, pending{catIx, ci, normalize.Normalize(c.CategoryName)})
	}
	h.CategoryIndex = catIx

	for ci, c := range sheet.Categories {
		itemIx := match.NewIndex(fmt.Sprintf("items:%s:%d", h.Slug, ci))
		for ii, it := range c.Items {
			forms := normalize.Forms(it.ItemName)
			if len(forms) == 0 {
				forms = []string{normalize.CollapseKey(it.ItemName)}
			}
			for _, f := range forms {
				todo = append(todo, pending{itemIx, ii, f})
			}
		}
		h.ItemIndexes = append(h.ItemIndexes, itemIx)
	}

	texts := make([]string, len(todo))
	for i, p := range todo {
		texts[i] = p.text
	}
	vecs, err := l.Cache.EmbedThrough(ctx, l.Embedder, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embed %s: %v", common.ErrCatalogLoad, h.Name, err)
	}
	for i, p := range todo {
		p.index.Add(p.id, p.text, vecs[i])
	}

	// Union index across every category for the low-similarity fallback.
	for ci, c := range sheet.Categories {
		for ii := range c.Items {
			h.UnionRefs = append(h.UnionRefs, ItemRef{Category: ci, Item: ii})
		}
	}
	refOrdinal := map[ItemRef]int{}
	for i, r := range h.UnionRefs {
		refOrdinal[r] = i
	}
	h.UnionIndex = match.Merge("items:"+h.Slug+":union", h.ItemIndexes, func(part, id int) int {
		return refOrdinal[ItemRef{Category: part, Item: id}]
	})
	return h, nil
}

// Store holds the process-wide catalog snapshot. Reload prepares a full
// new catalog off to the side and swaps the pointer; readers see either
// the old or the new catalog, never a partial one.
type Store struct {
	loader Loader
	ptr    atomic.Pointer[Catalog]
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Load populates the snapshot for the first time (or replaces it).
func (s *Store) Load(ctx context.Context) error {
	cat, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	s.ptr.Store(cat)
	return nil
}

// Reload is Load with reload semantics: on error the old snapshot stays.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Snapshot returns the current catalog. Nil until the first Load.
func (s *Store) Snapshot() *Catalog {
	return s.ptr.Load()
}

func jsonUnmarshalStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
