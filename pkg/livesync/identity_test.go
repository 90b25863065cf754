package livesync

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConversationIDFormat(t *testing.T) {
	id := NewConversationID()
	assert.Regexp(t, regexp.MustCompile(`^chat-\d+-[0-9a-z]{13}$`), id)
	assert.NotEqual(t, id, NewConversationID())
}

func TestProvisionalIDs(t *testing.T) {
	id := NewProvisionalID()
	assert.True(t, IsProvisional(id))
	assert.False(t, IsProvisional("3f1c9a4e-0000-4000-8000-000000000000"))
	assert.NotEqual(t, id, NewProvisionalID())
}

func TestConversationScopeIsStable(t *testing.T) {
	scope := NewConversationScope("")
	first := scope.Get()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, scope.Get())

	pinned := NewConversationScope("portfolio-chat")
	assert.Equal(t, "portfolio-chat", pinned.Get())
}

func TestSeenSet(t *testing.T) {
	s := seenSet{}
	s.add("a")
	assert.True(t, s.has("a"))
	s.remove("a")
	assert.False(t, s.has("a"))
}
