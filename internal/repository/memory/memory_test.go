package memory

import (
	"testing"
	"time"

	"portfolio-be/pkg/portfolio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCacheReturnsCopies(t *testing.T) {
	c := NewContentCache(time.Minute)
	_, ok := c.GetPublic()
	assert.False(t, ok)

	doc := portfolio.DefaultContent()
	c.SetPublic(doc)

	got, ok := c.GetPublic()
	require.True(t, ok)
	got.Skills.Frontend[0] = "changed"

	again, _ := c.GetPublic()
	assert.Equal(t, doc.Skills.Frontend[0], again.Skills.Frontend[0])

	c.Invalidate()
	_, ok = c.GetPublic()
	assert.False(t, ok)
}

func TestAlertThrottle(t *testing.T) {
	th := NewAlertThrottle(time.Hour)
	assert.True(t, th.Allow("chat-1"))
	assert.False(t, th.Allow("chat-1"))
	assert.True(t, th.Allow("chat-2"))

	th.Release("chat-1")
	assert.True(t, th.Allow("chat-1"))
}
