package implementation

import (
	"context"
	"errors"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/mapper"
	"portfolio-be/internal/model"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/pkg/portfolio"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const conversationSummaryQuery = `
SELECT
	m.conversation_id,
	COUNT(*) AS message_count,
	COUNT(*) FILTER (WHERE m.sender = 'user' AND m.status <> 'read') AS unread_count,
	MAX(m.created_at) AS last_message_at,
	(SELECT l.message FROM chat_messages l
	  WHERE l.conversation_id = m.conversation_id
	  ORDER BY l.created_at DESC LIMIT 1) AS last_message
FROM chat_messages m
GROUP BY m.conversation_id
ORDER BY last_message_at DESC`

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	var m model.ChatMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatMessageRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status portfolio.MessageStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ChatMessageRepositoryImpl) MarkConversationRead(ctx context.Context, conversationID string) (int64, error) {
	query := specification.Unread{}.Apply(r.db.WithContext(ctx).Model(&model.ChatMessage{}))
	res := query.Where("conversation_id = ?", conversationID).Update("status", string(portfolio.StatusRead))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ChatMessageRepositoryImpl) Summaries(ctx context.Context) ([]*entity.ConversationSummary, error) {
	var rows []*model.ConversationSummaryRow
	if err := r.db.WithContext(ctx).Raw(conversationSummaryQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.ConversationSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapper.SummaryToEntity(row))
	}
	return out, nil
}
