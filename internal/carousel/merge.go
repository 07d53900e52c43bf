// Package carousel builds the "Our Products" carousel: it merges a cart's
// product list with a random sample of it and lays the result out in pages.
package carousel

import "github.com/exclusive-store/server/internal/model"

// Merge combines base and sample into one list with unique ids.
//
// Entries are taken from base followed by sample. The first entry seen for an
// id keeps its position. A later duplicate flagged IsNew replaces the content
// at that position; a later duplicate that is not new is dropped. Neither
// input is modified.
func Merge(base, sample model.ProductList) model.ProductList {
	out := make(model.ProductList, 0, len(base)+len(sample))
	index := make(map[string]int, len(base)+len(sample))

	add := func(p model.Product) {
		i, seen := index[p.ID]
		if !seen {
			index[p.ID] = len(out)
			out = append(out, p)
			return
		}
		if p.IsNew {
			out[i] = p
		}
	}

	for _, p := range base {
		add(p)
	}
	for _, p := range sample {
		add(p)
	}
	return out
}

// MarkNotNew returns a copy of list with every IsNew flag cleared.
func MarkNotNew(list model.ProductList) model.ProductList {
	out := list.Clone()
	for i := range out {
		out[i].IsNew = false
	}
	return out
}
