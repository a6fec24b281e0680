package normalize

import (
	"sort"
	"strings"

	"catalogfeed_api/internal/catalog/models"
	"catalogfeed_api/internal/feed/model"
)

// BuildDepthTree reconstructs the category hierarchy from a flat collection
// of categories carrying depth (1-3), sortOrder and a path-like URL. Depth-1
// categories become roots; a deeper category nests under the node whose URL
// is a prefix of its own. Siblings are ordered by ascending sortOrder, with
// the incoming order kept on ties.
func BuildDepthTree(categories []models.RawCategory) []model.CategoryNode {
	var depth1, depth2, depth3 []models.RawCategory
	for _, c := range categories {
		switch c.Depth {
		case 1:
			depth1 = append(depth1, c)
		case 2:
			depth2 = append(depth2, c)
		case 3:
			depth3 = append(depth3, c)
		}
	}
	sortBySortOrder(depth1)
	sortBySortOrder(depth2)
	sortBySortOrder(depth3)

	var roots []model.CategoryNode
	for _, d1 := range depth1 {
		node := model.CategoryNode{Title: d1.Title}
		for _, d2 := range depth2 {
			if !hasURLPrefix(d2.URL, d1.URL) {
				continue
			}
			child := model.CategoryNode{Title: d2.Title}
			// Only the first matching depth-3 category is attached.
			// Historical behavior of the feed; keep it until the
			// category mapping is revisited.
			for _, d3 := range depth3 {
				if hasURLPrefix(d3.URL, d2.URL) {
					child.Subs = append(child.Subs, model.CategoryNode{Title: d3.Title})
					break
				}
			}
			node.Subs = append(node.Subs, child)
		}
		roots = append(roots, node)
	}
	return roots
}

// BuildPathTree reconstructs the hierarchy from a single category path given
// root-first, the way ccvshop breadcrumbs arrive. The path is walked in
// reverse, nesting each enabled category as the parent of the previously
// built node, so the result is at most one root holding a single child chain.
// Disabled categories are skipped.
func BuildPathTree(path []models.RawCategory) []model.CategoryNode {
	var chain []model.CategoryNode
	for i := len(path) - 1; i >= 0; i-- {
		if !path[i].Enabled {
			continue
		}
		chain = []model.CategoryNode{{Title: path[i].Title, Subs: chain}}
	}
	return chain
}

func sortBySortOrder(categories []models.RawCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
}

func hasURLPrefix(url, parentURL string) bool {
	return strings.HasPrefix(url, parentURL+"/")
}
