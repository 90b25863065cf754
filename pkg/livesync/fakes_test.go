package livesync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-be/pkg/portfolio"
)

type fakeMessageStore struct {
	mu           sync.Mutex
	nextID       int
	listCalls    int
	insertCalls  int
	unsubscribed int
	stored       []portfolio.ChatMessage
	handlers     map[int]func(portfolio.ChatMessage)
	handlerSeq   int
	clock        time.Time

	listErr      error
	insertErr    error
	subscribeErr error
	statusErr    error

	// hooks run inside the store call, before it returns
	onList   func()
	onInsert func(saved portfolio.ChatMessage)
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{
		handlers: map[int]func(portfolio.ChatMessage){},
		clock:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeMessageStore) ListMessages(ctx context.Context, conversationID string, limit int) ([]portfolio.ChatMessage, error) {
	f.mu.Lock()
	f.listCalls++
	hook := f.onList
	err := f.listErr
	var out []portfolio.ChatMessage
	for _, m := range f.stored {
		if m.ConversationId == conversationID {
			out = append(out, m)
		}
	}
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeMessageStore) InsertMessage(ctx context.Context, conversationID string, sender portfolio.Sender, text string) (portfolio.ChatMessage, error) {
	f.mu.Lock()
	f.insertCalls++
	if f.insertErr != nil {
		err := f.insertErr
		f.mu.Unlock()
		return portfolio.ChatMessage{}, err
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	saved := portfolio.ChatMessage{
		Id:             fmt.Sprintf("m%d", f.nextID),
		ConversationId: conversationID,
		Sender:         sender,
		Message:        text,
		Status:         portfolio.StatusSent,
		CreatedAt:      f.clock,
	}
	f.stored = append(f.stored, saved)
	hook := f.onInsert
	f.mu.Unlock()

	if hook != nil {
		hook(saved)
	}
	return saved, nil
}

func (f *fakeMessageStore) SubscribeInserts(ctx context.Context, conversationID string, onInsert func(portfolio.ChatMessage)) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.handlerSeq++
	id := f.handlerSeq
	f.handlers[id] = onInsert
	return SubscriptionFunc(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.handlers, id)
		f.unsubscribed++
		return nil
	}), nil
}

func (f *fakeMessageStore) UpdateStatus(ctx context.Context, messageID string, status portfolio.MessageStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	for i := range f.stored {
		if f.stored[i].Id == messageID {
			f.stored[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// push delivers msg to every live subscriber, ignoring which conversation they
// asked for, like a store that filters loosely.
func (f *fakeMessageStore) push(msg portfolio.ChatMessage) {
	f.mu.Lock()
	hs := make([]func(portfolio.ChatMessage), 0, len(f.handlers))
	for _, h := range f.handlers {
		hs = append(hs, h)
	}
	f.mu.Unlock()
	for _, h := range hs {
		h(msg)
	}
}

type fakeContentStore struct {
	mu           sync.Mutex
	docs         map[string]portfolio.Content
	handlers     map[string]func(portfolio.Content)
	unsubscribed int
	upserts      int

	getErr       error
	upsertErr    error
	subscribeErr error
	onGet        func()
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{
		docs:     map[string]portfolio.Content{},
		handlers: map[string]func(portfolio.Content){},
	}
}

func (f *fakeContentStore) GetContent(ctx context.Context, ownerID string) (*portfolio.Content, error) {
	f.mu.Lock()
	hook := f.onGet
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	doc, ok := f.docs[ownerID]
	if !ok {
		doc = portfolio.DefaultContent()
		f.docs[ownerID] = doc
	}
	c := doc.Clone()
	return &c, nil
}

func (f *fakeContentStore) UpsertContent(ctx context.Context, ownerID string, content portfolio.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ownerID == "" {
		return ErrNotAuthenticated
	}
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.docs[ownerID] = content.Clone()
	return nil
}

func (f *fakeContentStore) SubscribeContent(ctx context.Context, ownerID string, onChange func(portfolio.Content)) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	f.handlers[ownerID] = onChange
	return SubscriptionFunc(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.handlers, ownerID)
		f.unsubscribed++
		return nil
	}), nil
}

func (f *fakeContentStore) push(ownerID string, doc portfolio.Content) {
	f.mu.Lock()
	h := f.handlers[ownerID]
	f.mu.Unlock()
	if h != nil {
		h(doc)
	}
}
