package search

import (
	"errors"
	"fmt"

	"github.com/blevesearch/bleve/v2"

	"github.com/figtreehq/figtree/figma"
	"github.com/figtreehq/figtree/tree"
)

// DefaultLimit bounds result sets when the caller does not pick a limit.
const DefaultLimit = 10

// ErrEmptyQuery reports a blank search string.
var ErrEmptyQuery = errors.New("search: empty query")

// Doc is the indexed projection of one node.
type Doc struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Page       string `json:"page"`
	Characters string `json:"characters"`
}

// Hit is one ranked match.
type Hit struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Page  string  `json:"page"`
	Score float64 `json:"score"`
}

// Index is an in-memory full-text index over one document tree.
type Index struct {
	idx  bleve.Index
	docs map[string]Doc
}

// New creates an empty index.
func New() (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("search: creating index: %w", err)
	}
	return &Index{idx: idx, docs: make(map[string]Doc)}, nil
}

// AddDocument walks the document tree and indexes every node under its
// owning page, returning the number of nodes indexed. The root document
// node itself is skipped; it carries no searchable content.
func (ix *Index) AddDocument(root *figma.Node) (int, error) {
	if root == nil {
		return 0, nil
	}

	indexed := 0
	for _, page := range root.Children {
		if page == nil {
			continue
		}
		pageName := page.Name
		err := tree.Walk(page, func(n *figma.Node) {
			if n.ID == "" {
				return
			}
			doc := Doc{
				Name:       n.Name,
				Type:       n.Type,
				Page:       pageName,
				Characters: n.Characters,
			}
			if err := ix.idx.Index(n.ID, doc); err != nil {
				return
			}
			ix.docs[n.ID] = doc
			indexed++
		})
		if err != nil {
			return indexed, err
		}
	}
	return indexed, nil
}

// Search runs a match query and returns up to limit ranked hits. A
// non-positive limit falls back to DefaultLimit.
func (ix *Index) Search(query string, limit int) ([]Hit, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	res, err := ix.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		doc, ok := ix.docs[match.ID]
		if !ok {
			continue
		}
		hits = append(hits, Hit{
			ID:    match.ID,
			Name:  doc.Name,
			Type:  doc.Type,
			Page:  doc.Page,
			Score: match.Score,
		})
	}
	return hits, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Close releases the underlying index.
func (ix *Index) Close() error {
	return ix.idx.Close()
}
