package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaption(t *testing.T) {
	c := caption([]string{"sort", "shift"}, 2048)
	assert.True(t, strings.HasPrefix(c, "sort > shift ("), c)
	assert.Contains(t, c, "KB")

	assert.True(t, strings.HasPrefix(caption(nil, 10), "original ("))
}

func TestHelpText(t *testing.T) {
	text := helpText("sort: usage")
	assert.Contains(t, text, "/apply")
	assert.True(t, strings.HasSuffix(text, "sort: usage"))
}
