package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const DefaultColor = "bg-gray-200"

type bucketStyle struct {
	color       string
	description string
}

// Keyed by lower-cased bucket label.
var knownBuckets = map[string]bucketStyle{
	"modern": {
		color:       "bg-violet-400",
		description: "Games that feature new and exciting mechanisms that is quite often unique to that awesome game",
	},
	"classic": {
		color:       "bg-emerald-400",
		description: "The classics, almost can't go wrong with these. You might be a little old though",
	},
	"modern classic": {
		color:       "bg-sky-400",
		description: "Well-known games that are a step up from the classics",
	},
	"hardcore": {
		color:       "bg-red-600",
		description: "You will need time and dedication to learn, however you will get to experience the peak of what board games can offer",
	},
}

// KnownBuckets lists the recognized bucket labels in display order.
func KnownBuckets() []string {
	return []string{"Modern", "Classic", "Modern Classic", "Hardcore"}
}

// Color returns the Tailwind background class for a bucket.
func Color(bucket string) string {
	if s, ok := knownBuckets[strings.ToLower(bucket)]; ok {
		return s.color
	}
	return DefaultColor
}

// Description returns the caption shown under a bucket divider, or "" for
// buckets outside the fixed table.
func Description(bucket string) string {
	return knownBuckets[strings.ToLower(bucket)].description
}

// Pills splits a slash-delimited type field into its tags.
func Pills(typ string) []string {
	return strings.Split(typ, "/")
}

// SameBucket compares bucket labels case-insensitively.
func SameBucket(a, b string) bool {
	return strings.EqualFold(a, b)
}

// SuggestBucket returns the candidate closest to raw, if it is close enough to
// be a likely typo.
func SuggestBucket(raw string, candidates []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(raw))
	if len(in) < 3 {
		return "", false
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if dist > suggestLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
