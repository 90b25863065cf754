package livesync

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

// ProvisionalPrefix namespaces ids assigned locally before the store confirms.
const ProvisionalPrefix = "temp-"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewConversationID returns a fresh visitor conversation id such as
// "chat-1718000000000-k3j9x0a1b2c3d".
func NewConversationID() string {
	return fmt.Sprintf("chat-%d-%s", time.Now().UnixMilli(), randomBase36(13))
}

// NewProvisionalID returns a locally unique id for an unconfirmed message.
func NewProvisionalID() string {
	return fmt.Sprintf("%s%d-%s", ProvisionalPrefix, time.Now().UnixNano(), randomBase36(8))
}

func IsProvisional(id string) bool {
	return strings.HasPrefix(id, ProvisionalPrefix)
}

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	radix := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, radix)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b.WriteByte(base36[idx.Int64()])
	}
	return b.String()
}

// ConversationScope holds the conversation identity of one client context.
// The id is generated on first use and kept until the scope is discarded; it is
// never persisted, so a restarted client starts a new conversation.
type ConversationScope struct {
	once sync.Once
	id   string
}

// NewConversationScope returns a scope. A non-empty id pins the conversation,
// e.g. for an admin replying inside an existing visitor conversation.
func NewConversationScope(id string) *ConversationScope {
	s := &ConversationScope{id: id}
	if id != "" {
		s.once.Do(func() {})
	}
	return s
}

func (s *ConversationScope) Get() string {
	s.once.Do(func() {
		s.id = NewConversationID()
	})
	return s.id
}

// seenSet is the dedup ledger consulted by every path that adds a message.
type seenSet map[string]struct{}

func (s seenSet) add(id string) {
	s[id] = struct{}{}
}

func (s seenSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s seenSet) remove(id string) {
	delete(s, id)
}
