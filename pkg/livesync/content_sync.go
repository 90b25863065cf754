package livesync

import (
	"context"
	"errors"
	"sync"

	"portfolio-be/pkg/portfolio"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ContentState int

const (
	StateUninitialized ContentState = iota
	StateLoading
	StateReady
	StateErrored
)

func (s ContentState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// ContentSnapshot is a consistent view of a ContentSync.
type ContentSnapshot struct {
	State   ContentState
	Content *portfolio.Content
	Err     error
}

// ContentSync owns the in-memory copy of one owner's portfolio document.
// Writes go to the store first and replace the local copy only once the store
// accepted them. Pushed documents replace the local copy whole.
type ContentSync struct {
	store   ContentStore
	ownerID string
	opts    options

	mu      sync.Mutex
	state   ContentState
	content *portfolio.Content
	err     error
	started bool
	closed  bool
	loading bool
	pushed  bool
	sub     Subscription
}

// NewContentSync binds a hook to ownerID; an empty ownerID is an anonymous viewer.
func NewContentSync(store ContentStore, ownerID string, opts ...Option) *ContentSync {
	return &ContentSync{
		store:   store,
		ownerID: ownerID,
		opts:    buildOptions(opts),
		state:   StateUninitialized,
	}
}

// Start loads the document and opens the change subscription concurrently.
// Anonymous viewers end Ready with no document. Subscription failures are
// logged and never surface as an error.
func (s *ContentSync) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.state = StateLoading
	s.loading = true
	s.mu.Unlock()
	s.opts.notify()

	var g errgroup.Group
	g.Go(func() error { return s.load(ctx) })
	g.Go(func() error {
		s.subscribe(ctx)
		return nil
	})
	return g.Wait()
}

func (s *ContentSync) load(ctx context.Context) error {
	doc, err := s.store.GetContent(ctx, s.ownerID)

	s.mu.Lock()
	s.loading = false
	if s.closed {
		s.mu.Unlock()
		return nil
	}

	switch {
	case err == nil:
		// a document pushed while the read was in flight is at least as new
		if !s.pushed {
			s.content = normalized(doc)
		}
		s.state = StateReady
		s.err = nil
	case errors.Is(err, ErrNotAuthenticated):
		if !s.pushed {
			s.content = nil
		}
		s.state = StateReady
		s.err = nil
		err = nil
	default:
		s.state = StateErrored
		s.err = err
	}
	s.mu.Unlock()

	if err != nil {
		s.opts.logger.Error("failed to load portfolio content", zap.String("owner_id", s.ownerID), zap.Error(err))
	}
	s.opts.notify()
	return err
}

func (s *ContentSync) subscribe(ctx context.Context) {
	sub, err := s.store.SubscribeContent(ctx, s.ownerID, s.handleChange)
	if err != nil {
		s.opts.logger.Warn("could not set up portfolio content subscription", zap.String("owner_id", s.ownerID), zap.Error(err))
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.unsubscribe(sub)
		return
	}
	s.sub = sub
	s.mu.Unlock()
}

func (s *ContentSync) handleChange(doc portfolio.Content) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.content = normalized(&doc)
	if s.loading {
		s.pushed = true
	} else {
		s.state = StateReady
		s.err = nil
	}
	s.mu.Unlock()

	s.opts.notify()
}

// UpdateContent stores doc and, once the store accepted it, makes it the local
// copy. On failure the local copy is kept and the error returned.
func (s *ContentSync) UpdateContent(ctx context.Context, doc portfolio.Content) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil
	}

	doc = doc.Clone()
	doc.Normalize()
	err := s.store.UpsertContent(ctx, s.ownerID, doc)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return err
	}
	if err != nil {
		s.err = err
		s.mu.Unlock()
		s.opts.logger.Error("failed to update portfolio content", zap.String("owner_id", s.ownerID), zap.Error(err))
		s.opts.notify()
		return err
	}
	s.content = &doc
	s.state = StateReady
	s.err = nil
	s.mu.Unlock()

	s.opts.notify()
	return nil
}

// Close cancels the subscription; nothing changes state afterwards.
func (s *ContentSync) Close() {
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

func (s *ContentSync) unsubscribe(sub Subscription) {
	if err := sub.Unsubscribe(); err != nil {
		s.opts.logger.Warn("portfolio content unsubscribe failed", zap.String("owner_id", s.ownerID), zap.Error(err))
	}
}

func (s *ContentSync) State() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Content returns a copy of the local document, or nil when there is none.
func (s *ContentSync) Content() *portfolio.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneContent(s.content)
}

func (s *ContentSync) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ContentSync) Snapshot() ContentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ContentSnapshot{State: s.state, Content: cloneContent(s.content), Err: s.err}
}

func normalized(doc *portfolio.Content) *portfolio.Content {
	if doc == nil {
		return nil
	}
	c := doc.Clone()
	c.Normalize()
	return &c
}

func cloneContent(doc *portfolio.Content) *portfolio.Content {
	if doc == nil {
		return nil
	}
	c := doc.Clone()
	return &c
}
