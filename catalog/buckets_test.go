package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	cases := map[string]string{
		"modern":         "bg-violet-400",
		"CLASSIC":        "bg-emerald-400",
		"Modern Classic": "bg-sky-400",
		"Hardcore":       "bg-red-600",
		"party":          DefaultColor,
		"":               DefaultColor,
	}
	for bucket, want := range cases {
		assert.Equal(t, want, Color(bucket), "bucket %q", bucket)
	}
}

func TestDescriptionOnlyForKnownBuckets(t *testing.T) {
	for _, b := range KnownBuckets() {
		assert.NotEmpty(t, Description(b), b)
	}
	assert.Equal(t, "Well-known games that are a step up from the classics", Description("modern CLASSIC"))
	assert.Empty(t, Description("party"))
	assert.Empty(t, Description(""))
}

func TestPills(t *testing.T) {
	assert.Equal(t, []string{"Deck Building", "Strategy"}, Pills("Deck Building/Strategy"))
	assert.Equal(t, []string{"Abstract"}, Pills("Abstract"))
	assert.Equal(t, []string{""}, Pills(""))
}

func TestSameBucket(t *testing.T) {
	assert.True(t, SameBucket("Modern Classic", "modern classic"))
	assert.False(t, SameBucket("Modern", "Modern Classic"))
}

func TestSuggestBucket(t *testing.T) {
	got, ok := SuggestBucket("hardcor", KnownBuckets())
	assert.True(t, ok)
	assert.Equal(t, "Hardcore", got)

	got, ok = SuggestBucket("moden", KnownBuckets())
	assert.True(t, ok)
	assert.Equal(t, "Modern", got)

	_, ok = SuggestBucket("xyzzy plugh", KnownBuckets())
	assert.False(t, ok)

	_, ok = SuggestBucket("mo", KnownBuckets())
	assert.False(t, ok)
}
