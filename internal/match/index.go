package match

// Entry is one indexed text with its stored vector. Several entries may
// share an ID: an item is indexed under both its normalized form and its
// medical core, and the matcher keeps the best score per ID.
type Entry struct {
	ID     int
	Text   string
	Vector []float32
}

// Index is a flat, immutable-after-build vector index. Stored vectors are
// L2-normalized so cosine similarity is a dot product.
type Index struct {
	Name    string
	entries []Entry
	size    int // highest ID + 1
}

func NewIndex(name string) *Index {
	return &Index{Name: name}
}

// Add appends an entry. IDs are caller-assigned ordinals.
func (ix *Index) Add(id int, text string, vector []float32) {
	ix.entries = append(ix.entries, Entry{ID: id, Text: text, Vector: vector})
	if id+1 > ix.size {
		ix.size = id + 1
	}
}

// Len is the highest added ID + 1 (the ID space), not a count of distinct
// IDs.
func (ix *Index) Len() int { return ix.size }

// Entries exposes the raw entries for scoring.
func (ix *Index) Entries() []Entry { return ix.entries }

// Merge builds a union index over several indices. remap translates
// (source ordinal, source ID) to the union ID.
func Merge(name string, parts []*Index, remap func(part, id int) int) *Index {
	u := NewIndex(name)
	for p, part := range parts {
		if part == nil {
			continue
		}
		for _, e := range part.entries {
			u.Add(remap(p, e.ID), e.Text, e.Vector)
		}
	}
	return u
}
