package livesync

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"portfolio-be/pkg/portfolio"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MessageSync owns the message list of one conversation.
//
// Three inputs feed the list: the initial read, optimistic sends and pushed
// inserts. They may complete in any order; every path checks and updates the
// same seen-id set under one lock, so the list never holds two entries with the
// same id and stays sorted by CreatedAt.
type MessageSync struct {
	store          MessageStore
	conversationID string
	opts           options

	mu           sync.Mutex
	messages     []portfolio.ChatMessage
	seen         seenSet
	loading      bool
	loadInFlight bool
	hasLoaded    bool
	subscribing  bool
	err          error
	closed       bool
	sub          Subscription
}

func NewMessageSync(store MessageStore, conversationID string, opts ...Option) *MessageSync {
	return &MessageSync{
		store:          store,
		conversationID: conversationID,
		opts:           buildOptions(opts),
		messages:       []portfolio.ChatMessage{},
		seen:           seenSet{},
		loading:        true,
	}
}

func (s *MessageSync) ConversationID() string {
	return s.conversationID
}

// Start issues the initial read and opens the insert subscription concurrently
// and waits for both. A failed subscription is logged and returned, but the list
// stays usable for reads and sends.
func (s *MessageSync) Start(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.Load(ctx) })
	g.Go(func() error { return s.Subscribe(ctx) })
	return g.Wait()
}

// Load fetches the conversation once per hook. Later calls are no-ops unless
// the previous attempt failed.
func (s *MessageSync) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.hasLoaded || s.loadInFlight {
		s.mu.Unlock()
		s.opts.logger.Debug("messages already loaded, skipping", zap.String("conversation_id", s.conversationID))
		return nil
	}
	s.loadInFlight = true
	s.loading = true
	s.mu.Unlock()

	data, err := s.store.ListMessages(ctx, s.conversationID, s.opts.limit)

	s.mu.Lock()
	s.loadInFlight = false
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = err
		s.mu.Unlock()
		s.opts.logger.Error("failed to load chat messages", zap.String("conversation_id", s.conversationID), zap.Error(err))
		s.opts.notify()
		return err
	}

	merged := 0
	for _, msg := range data {
		if msg.Id == "" || msg.ConversationId != s.conversationID || s.seen.has(msg.Id) {
			continue
		}
		s.seen.add(msg.Id)
		s.messages = append(s.messages, msg)
		merged++
	}
	sortByCreatedAt(s.messages)
	s.hasLoaded = true
	s.err = nil
	total := len(s.messages)
	s.mu.Unlock()

	s.opts.logger.Debug("loaded chat messages",
		zap.String("conversation_id", s.conversationID),
		zap.Int("fetched", len(data)),
		zap.Int("merged", merged),
		zap.Int("total", total),
	)
	s.opts.notify()
	return nil
}

// Subscribe opens the insert push channel for the conversation.
func (s *MessageSync) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.sub != nil || s.subscribing {
		s.mu.Unlock()
		return nil
	}
	s.subscribing = true
	s.mu.Unlock()

	sub, err := s.store.SubscribeInserts(ctx, s.conversationID, s.handleInsert)

	s.mu.Lock()
	s.subscribing = false
	if err != nil {
		s.mu.Unlock()
		s.opts.logger.Warn("chat subscription failed", zap.String("conversation_id", s.conversationID), zap.Error(err))
		return err
	}
	if s.closed {
		s.mu.Unlock()
		s.unsubscribe(sub)
		return nil
	}
	s.sub = sub
	s.mu.Unlock()

	s.opts.logger.Debug("chat subscription active", zap.String("conversation_id", s.conversationID))
	return nil
}

func (s *MessageSync) handleInsert(msg portfolio.ChatMessage) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if msg.ConversationId != s.conversationID {
		s.mu.Unlock()
		s.opts.logger.Debug("message from different conversation, ignoring", zap.String("conversation_id", msg.ConversationId))
		return
	}
	if msg.Id == "" || s.seen.has(msg.Id) {
		s.mu.Unlock()
		s.opts.logger.Debug("skipping duplicate or invalid message", zap.String("id", msg.Id))
		return
	}
	s.seen.add(msg.Id)
	s.insertSorted(msg)
	s.mu.Unlock()

	s.opts.notify()
}

// SendMessage shows the message immediately under a provisional id, inserts it
// remotely and then swaps in the stored message. If the push for the stored
// message arrived first, the provisional entry is simply dropped. A failed
// insert removes the provisional entry and returns the error. After Close it
// does nothing and returns a zero message.
func (s *MessageSync) SendMessage(ctx context.Context, text string, sender portfolio.Sender) (portfolio.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return portfolio.ChatMessage{}, ErrEmptyMessage
	}
	if sender == "" {
		sender = portfolio.SenderUser
	}
	if !sender.Valid() {
		return portfolio.ChatMessage{}, fmt.Errorf("invalid sender %q", sender)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return portfolio.ChatMessage{}, nil
	}
	tempID := NewProvisionalID()
	s.seen.add(tempID)
	s.insertSorted(portfolio.ChatMessage{
		Id:             tempID,
		ConversationId: s.conversationID,
		Sender:         sender,
		Message:        text,
		Status:         portfolio.StatusSent,
		CreatedAt:      s.opts.now(),
	})
	s.mu.Unlock()
	s.opts.notify()

	saved, err := s.store.InsertMessage(ctx, s.conversationID, sender, text)
	if err == nil && saved.Id == "" {
		err = fmt.Errorf("%w: store returned a message without id", ErrTransient)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return saved, err
	}
	s.removeByID(tempID)
	s.seen.remove(tempID)

	if err != nil {
		s.err = err
		s.mu.Unlock()
		s.opts.logger.Error("failed to send chat message", zap.String("conversation_id", s.conversationID), zap.Error(err))
		s.opts.notify()
		return portfolio.ChatMessage{}, err
	}

	if !s.seen.has(saved.Id) {
		s.seen.add(saved.Id)
		s.insertSorted(saved)
	} else {
		s.opts.logger.Debug("stored message already delivered by subscription", zap.String("id", saved.Id))
	}
	s.mu.Unlock()

	s.opts.notify()
	return saved, nil
}

// MarkRead flags a stored message as read. Provisional ids have nothing to mark yet.
func (s *MessageSync) MarkRead(ctx context.Context, messageID string) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed || IsProvisional(messageID) {
		return nil
	}

	if err := s.store.UpdateStatus(ctx, messageID, portfolio.StatusRead); err != nil {
		s.mu.Lock()
		if !s.closed {
			s.err = err
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	for i := range s.messages {
		if s.messages[i].Id == messageID {
			s.messages[i].Status = portfolio.StatusRead
			break
		}
	}
	s.mu.Unlock()

	s.opts.notify()
	return nil
}

// Close cancels the subscription. Requests still in flight complete without
// touching the list.
func (s *MessageSync) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		s.unsubscribe(sub)
	}
}

func (s *MessageSync) unsubscribe(sub Subscription) {
	if err := sub.Unsubscribe(); err != nil {
		s.opts.logger.Warn("chat unsubscribe failed", zap.String("conversation_id", s.conversationID), zap.Error(err))
	}
}

// Messages returns a copy of the current list.
func (s *MessageSync) Messages() []portfolio.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

func (s *MessageSync) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MessageSync) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Seen reports whether id is incorporated into the list.
func (s *MessageSync) Seen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen.has(id)
}

// insertSorted places msg after every entry with an equal or earlier CreatedAt.
// Callers hold s.mu.
func (s *MessageSync) insertSorted(msg portfolio.ChatMessage) {
	i := sort.Search(len(s.messages), func(i int) bool {
		return s.messages[i].CreatedAt.After(msg.CreatedAt)
	})
	s.messages = slices.Insert(s.messages, i, msg)
}

// Callers hold s.mu.
func (s *MessageSync) removeByID(id string) {
	s.messages = slices.DeleteFunc(s.messages, func(m portfolio.ChatMessage) bool {
		return m.Id == id
	})
}

func sortByCreatedAt(msgs []portfolio.ChatMessage) {
	slices.SortStableFunc(msgs, func(a, b portfolio.ChatMessage) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
