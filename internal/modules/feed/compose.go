package feed

import (
	"sort"

	"github.com/izumi-ne/portfolio-core/internal/models"
)

const (
	featuredLimit = 6
	recentLimit   = 10
)

// HomepageFeed is the composed homepage view: featured entries and the
// newest entries across every addressable content type.
type HomepageFeed struct {
	Featured []models.FeedItem `json:"featured"`
	Recent   []models.FeedItem `json:"recent"`
}

// AdjacentItems is the prev/next navigation pair around one document. Either
// side is nil at the partition boundary.
type AdjacentItems struct {
	Next     *models.FeedItem `json:"next"`
	Previous *models.FeedItem `json:"previous"`
}

// newerThan is the total order all feed computations share: publish date
// descending, document id ascending as the tie-break. Publish dates are
// ISO 8601 strings, so lexicographic comparison is chronological.
func newerThan(a, b models.FeedItem) bool {
	if a.PublishedDate != b.PublishedDate {
		return a.PublishedDate > b.PublishedDate
	}
	return a.ID < b.ID
}

func sortNewestFirst(items []models.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return newerThan(items[i], items[j])
	})
}

// compose merges both content types into the homepage feed. Featured is
// capped at 6, recent at 10, regardless of how much the store holds.
func compose(projects []models.Project, posts []models.BlogPost) HomepageFeed {
	items := make([]models.FeedItem, 0, len(projects)+len(posts))
	for _, p := range projects {
		items = append(items, models.FeedItemFromProject(p))
	}
	for _, b := range posts {
		items = append(items, models.FeedItemFromBlogPost(b))
	}
	sortNewestFirst(items)

	featured := make([]models.FeedItem, 0, featuredLimit)
	for _, item := range items {
		if !item.Featured {
			continue
		}
		featured = append(featured, item)
		if len(featured) == featuredLimit {
			break
		}
	}

	recent := items
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	return HomepageFeed{Featured: featured, Recent: recent}
}

// adjacentIn locates id inside its partition and returns its neighbours in
// the shared total order: next is the closest strictly-older entry, previous
// the closest strictly-newer one, where equal publish dates are resolved by
// the id tie-break. Unknown ids get a nil pair.
func adjacentIn(partition []models.FeedItem, id string) AdjacentItems {
	items := make([]models.FeedItem, len(partition))
	copy(items, partition)
	sortNewestFirst(items)

	for i := range items {
		if items[i].ID != id {
			continue
		}
		var out AdjacentItems
		if i+1 < len(items) {
			next := items[i+1]
			out.Next = &next
		}
		if i > 0 {
			prev := items[i-1]
			out.Previous = &prev
		}
		return out
	}
	return AdjacentItems{}
}
