package catalog

// Group is every item sharing one bucket label, in input order.
type Group struct {
	Bucket string
	Items  []Item
}

// GroupByBucket partitions items by their exact Bucket value. Groups appear
// in the order their bucket is first seen and items keep their input order.
// An empty bucket is a bucket like any other.
func GroupByBucket(items []Item) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, it := range items {
		i, ok := index[it.Bucket]
		if !ok {
			i = len(groups)
			index[it.Bucket] = i
			groups = append(groups, Group{Bucket: it.Bucket})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Buckets lists the bucket labels of groups in order.
func Buckets(groups []Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Bucket)
	}
	return out
}
