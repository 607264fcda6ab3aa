package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByBucketFirstSeenOrder(t *testing.T) {
	items := []Item{
		{Name: "Wingspan", Bucket: "Modern"},
		{Name: "Chess", Bucket: "Classic"},
		{Name: "Root", Bucket: "Modern"},
		{Name: "Go", Bucket: "Classic"},
		{Name: "Twilight Imperium", Bucket: "Hardcore"},
	}

	groups := GroupByBucket(items)

	assert.Equal(t, []string{"Modern", "Classic", "Hardcore"}, Buckets(groups))
	assert.Equal(t, []Item{items[0], items[2]}, groups[0].Items)
	assert.Equal(t, []Item{items[1], items[3]}, groups[1].Items)
	assert.Equal(t, []Item{items[4]}, groups[2].Items)
}

func TestGroupByBucketPartitionsEveryItem(t *testing.T) {
	items := []Item{
		{Name: "a", Bucket: "Modern"},
		{Name: "b", Bucket: "modern"},
		{Name: "c", Bucket: ""},
		{Name: "d", Bucket: "Party"},
		{Name: "e", Bucket: "Modern"},
		{Name: "a", Bucket: "Modern"},
	}

	groups := GroupByBucket(items)

	total := 0
	for _, g := range groups {
		for _, it := range g.Items {
			assert.Equal(t, g.Bucket, it.Bucket)
		}
		total += len(g.Items)
	}
	assert.Equal(t, len(items), total)

	var flattened []Item
	for _, g := range groups {
		flattened = append(flattened, g.Items...)
	}
	assert.ElementsMatch(t, items, flattened)
}

func TestGroupByBucketEmptyBucket(t *testing.T) {
	groups := GroupByBucket([]Item{{Name: "Mystery"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Bucket)
	assert.Len(t, groups[0].Items, 1)
}

func TestGroupByBucketNoItems(t *testing.T) {
	assert.Empty(t, GroupByBucket(nil))
}
