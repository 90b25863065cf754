package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/pkg/events"
	pktNats "portfolio-be/pkg/nats"
	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

// fakeStore backs every fake repository and interprets the specifications
// the services pass in.
type fakeStore struct {
	mu       sync.Mutex
	clock    time.Time
	owners   []*entity.Owner
	contents []*entity.PortfolioContent
	messages []*entity.ChatMessage

	// raceOnCreate stores this document for the owner just before a
	// content Create, as if another request won the race.
	raceOnCreate *portfolio.Content
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) OwnerRepository() contract.OwnerRepository {
	return &fakeOwnerRepo{store: u.store}
}

func (u *fakeUnitOfWork) PortfolioContentRepository() contract.PortfolioContentRepository {
	return &fakeContentRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

type fakeOwnerRepo struct {
	store *fakeStore
}

func (r *fakeOwnerRepo) Create(ctx context.Context, owner *entity.Owner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, o := range r.store.owners {
		if strings.EqualFold(o.Email, owner.Email) {
			return contract.ErrDuplicate
		}
	}
	owner.Id = uuid.New()
	owner.CreatedAt = r.store.tick()
	c := *owner
	r.store.owners = append(r.store.owners, &c)
	return nil
}

func (r *fakeOwnerRepo) Update(ctx context.Context, owner *entity.Owner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, o := range r.store.owners {
		if o.Id == owner.Id {
			c := *owner
			r.store.owners[i] = &c
			return nil
		}
	}
	return errors.New("owner not found")
}

func (r *fakeOwnerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Owner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, o := range r.store.owners {
		match := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByEmail); ok && !strings.EqualFold(o.Email, sp.Email) {
				match = false
			}
		}
		if match {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

type fakeContentRepo struct {
	store *fakeStore
}

func (r *fakeContentRepo) insert(content *entity.PortfolioContent) {
	content.Id = uuid.New()
	content.CreatedAt = r.store.tick()
	c := *content
	c.Content = content.Content.Clone()
	r.store.contents = append(r.store.contents, &c)
}

func (r *fakeContentRepo) Create(ctx context.Context, content *entity.PortfolioContent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.raceOnCreate != nil {
		r.insert(&entity.PortfolioContent{OwnerId: content.OwnerId, Content: *r.store.raceOnCreate})
		r.store.raceOnCreate = nil
	}
	for _, c := range r.store.contents {
		if c.OwnerId == content.OwnerId {
			return contract.ErrDuplicate
		}
	}
	r.insert(content)
	return nil
}

func (r *fakeContentRepo) Upsert(ctx context.Context, content *entity.PortfolioContent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.contents {
		if c.OwnerId == content.OwnerId {
			now := r.store.tick()
			c.Content = content.Content.Clone()
			c.UpdatedAt = &now
			content.Id = c.Id
			content.CreatedAt = c.CreatedAt
			content.UpdatedAt = &now
			return nil
		}
	}
	r.insert(content)
	return nil
}

func (r *fakeContentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioContent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	candidates := make([]*entity.PortfolioContent, 0, len(r.store.contents))
	for _, c := range r.store.contents {
		match := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByOwnerID); ok && c.OwnerId != sp.OwnerID {
				match = false
			}
		}
		if match {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	if len(candidates) == 0 {
		return nil, nil
	}
	c := *candidates[0]
	c.Content = candidates[0].Content.Clone()
	return &c, nil
}

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) filter(specs []specification.Specification) []*entity.ChatMessage {
	out := make([]*entity.ChatMessage, 0, len(r.store.messages))
	for _, m := range r.store.messages {
		c := *m
		out = append(out, &c)
	}

	limit := 0
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByConversationID:
			out = keep(out, func(m *entity.ChatMessage) bool { return m.ConversationId == sp.ConversationID })
		case specification.ByID:
			out = keep(out, func(m *entity.ChatMessage) bool { return m.Id == sp.ID })
		case specification.Unread:
			out = keep(out, func(m *entity.ChatMessage) bool {
				return m.Sender == portfolio.SenderUser && m.Status != portfolio.StatusRead
			})
		case specification.OrderBy:
			sort.SliceStable(out, func(i, j int) bool {
				if sp.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		case specification.Limit:
			limit = sp.N
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func keep(in []*entity.ChatMessage, pred func(*entity.ChatMessage) bool) []*entity.ChatMessage {
	out := in[:0]
	for _, m := range in {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	message.Id = uuid.New()
	message.CreatedAt = r.store.tick()
	c := *message
	r.store.messages = append(r.store.messages, &c)
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	found := r.filter(specs)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs), nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}

func (r *fakeMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status portfolio.MessageStatus) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.messages {
		if m.Id == id {
			m.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMessageRepo) MarkConversationRead(ctx context.Context, conversationID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, m := range r.store.messages {
		if m.ConversationId == conversationID && m.Sender == portfolio.SenderUser && m.Status != portfolio.StatusRead {
			m.Status = portfolio.StatusRead
			n++
		}
	}
	return n, nil
}

func (r *fakeMessageRepo) Summaries(ctx context.Context) ([]*entity.ConversationSummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byID := map[string]*entity.ConversationSummary{}
	for _, m := range r.store.messages {
		s, ok := byID[m.ConversationId]
		if !ok {
			s = &entity.ConversationSummary{ConversationId: m.ConversationId}
			byID[m.ConversationId] = s
		}
		s.MessageCount++
		if m.Sender == portfolio.SenderUser && m.Status != portfolio.StatusRead {
			s.UnreadCount++
		}
		if !m.CreatedAt.Before(s.LastMessageAt) {
			s.LastMessageAt = m.CreatedAt
			s.LastMessage = m.Message
		}
	}

	out := make([]*entity.ConversationSummary, 0, len(byID))
	for _, s := range byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	return out, nil
}

type published struct {
	topic     string
	eventType string
	data      interface{}
}

type fakeFeed struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (f *fakeFeed) Publish(ctx context.Context, topic, eventType string, data interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{topic: topic, eventType: eventType, data: data})
	return nil
}

func (f *fakeFeed) Consume(ctx context.Context) error { return nil }

func (f *fakeFeed) topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.topic)
	}
	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type sentAlert struct {
	to, conversationID, preview string
}

type fakeMailer struct {
	sent []sentAlert
	err  error
}

func (m *fakeMailer) SendNewMessageAlert(toEmail, conversationID, preview string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentAlert{to: toEmail, conversationID: conversationID, preview: preview})
	return nil
}

type fakeSubscriber struct {
	subject, durable string
	handler          pktNats.EventHandler
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	s.subject = subject
	s.durable = durableName
	s.handler = handler
	return nil
}
