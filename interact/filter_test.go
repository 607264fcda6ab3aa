package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSameButtonTwiceResets(t *testing.T) {
	f := NewFilter("")
	f.Click("Modern")
	assert.True(t, f.Visible("modern"))
	assert.False(t, f.Visible("Classic"))

	f.Click("Modern")
	_, active := f.Active()
	assert.False(t, active)
	for _, b := range []string{"Modern", "Classic", "Hardcore", ""} {
		assert.True(t, f.Visible(b), b)
	}
}

func TestFilterSwitchesBetweenButtons(t *testing.T) {
	f := NewFilter("")
	f.Click("Modern")
	f.Click("Classic")

	got, active := f.Active()
	assert.True(t, active)
	assert.Equal(t, "Classic", got)
	assert.True(t, f.IsActive("classic"))
	assert.False(t, f.IsActive("Modern"))

	assert.True(t, f.Visible("Classic"))
	assert.False(t, f.Visible("Modern"))
	assert.False(t, f.Visible("Modern Classic"))
	assert.False(t, f.Visible(""))
}

func TestFilterCaseInsensitiveToggle(t *testing.T) {
	f := NewFilter("hardcore")
	f.Click("HARDCORE")
	_, active := f.Active()
	assert.False(t, active)
}

func TestFilterNextDoesNotMutate(t *testing.T) {
	f := NewFilter("Modern")

	next, ok := f.Next("Modern")
	assert.False(t, ok)
	assert.Empty(t, next)

	next, ok = f.Next("Classic")
	assert.True(t, ok)
	assert.Equal(t, "Classic", next)

	got, active := f.Active()
	assert.True(t, active)
	assert.Equal(t, "Modern", got)
}
