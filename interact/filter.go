// Package interact models the page interactions: bucket filtering, opening
// cells and swiping carousels.
package interact

import "strings"

// Filter holds the single active bucket filter, if any.
type Filter struct {
	active string
	set    bool
}

// NewFilter starts filtered by bucket, or unfiltered when bucket is "".
func NewFilter(bucket string) *Filter {
	f := &Filter{}
	if bucket != "" {
		f.Click(bucket)
	}
	return f
}

// Click handles a press on the filter button for bucket. Pressing the active
// button clears the filter; any other button becomes the active one.
func (f *Filter) Click(bucket string) {
	if f.set && strings.EqualFold(f.active, bucket) {
		f.active, f.set = "", false
		return
	}
	f.active, f.set = bucket, true
}

// Active reports the active bucket.
func (f *Filter) Active() (string, bool) {
	return f.active, f.set
}

// IsActive reports whether bucket's button is the active one.
func (f *Filter) IsActive(bucket string) bool {
	return f.set && strings.EqualFold(f.active, bucket)
}

// Visible reports whether a cell or group in bucket is shown.
func (f *Filter) Visible(bucket string) bool {
	return !f.set || strings.EqualFold(f.active, bucket)
}

// Next returns the filter that clicking bucket would produce, leaving f as is.
func (f *Filter) Next(bucket string) (string, bool) {
	n := *f
	n.Click(bucket)
	return n.Active()
}
