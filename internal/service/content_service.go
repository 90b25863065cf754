package service

import (
	"context"
	"errors"
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/pkg/events"
	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
)

type IContentService interface {
	// GetContent returns the owner's document, creating the default one on first read.
	GetContent(ctx context.Context, ownerId uuid.UUID) (*portfolio.Content, error)
	// GetPublicContent returns the document anonymous visitors see.
	GetPublicContent(ctx context.Context) (*portfolio.Content, error)
	UpsertContent(ctx context.Context, ownerId uuid.UUID, content portfolio.Content) (*portfolio.Content, error)
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ContentCache
	feed       IFeedService
	events     EventPublisher
	logger     logger.ILogger
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.ContentCache,
	feed IFeedService,
	publisher EventPublisher,
	log logger.ILogger,
) IContentService {
	return &contentService{
		uowFactory: uowFactory,
		cache:      cache,
		feed:       feed,
		events:     publisher,
		logger:     log,
	}
}

func (s *contentService) GetContent(ctx context.Context, ownerId uuid.UUID) (*portfolio.Content, error) {
	if ownerId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PortfolioContentRepository()

	existing, err := repo.FindOne(ctx, specification.ByOwnerID{OwnerID: ownerId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.Content, nil
	}

	record := &entity.PortfolioContent{
		OwnerId: ownerId,
		Content: portfolio.DefaultContent(),
	}
	err = repo.Create(ctx, record)
	if errors.Is(err, contract.ErrDuplicate) {
		// a concurrent first read created it; use the stored one
		existing, err = repo.FindOne(ctx, specification.ByOwnerID{OwnerID: ownerId})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		return &existing.Content, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("CONTENT", "Created default portfolio content", map[string]interface{}{"owner_id": ownerId})
	s.cache.Invalidate()
	return &record.Content, nil
}

func (s *contentService) GetPublicContent(ctx context.Context) (*portfolio.Content, error) {
	if cached, ok := s.cache.GetPublic(); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	first, err := uow.PortfolioContentRepository().FindOne(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, ErrNotFound
	}

	s.cache.SetPublic(first.Content)
	return &first.Content, nil
}

func (s *contentService) UpsertContent(ctx context.Context, ownerId uuid.UUID, content portfolio.Content) (*portfolio.Content, error) {
	if ownerId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	doc := content.Clone()
	doc.Normalize()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := &entity.PortfolioContent{OwnerId: ownerId, Content: doc}
	if err := uow.PortfolioContentRepository().Upsert(ctx, record); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	if err := s.feed.Publish(ctx, portfolio.ContentTopic(ownerId.String()), portfolio.FeedContentUpdated, record.Content); err != nil {
		s.logger.Warn("CONTENT", "Failed to publish content change", map[string]interface{}{"owner_id": ownerId, "error": err.Error()})
	}

	if s.events != nil {
		evt := events.BaseEvent{
			Type:       events.PortfolioContentUpdated,
			Data:       map[string]interface{}{"owner_id": ownerId.String()},
			OccurredAt: time.Now(),
		}
		if err := s.events.Publish(ctx, evt); err != nil {
			s.logger.Warn("CONTENT", "Failed to publish domain event", map[string]interface{}{"event": evt.Type, "error": err.Error()})
		}
	}

	return &record.Content, nil
}
