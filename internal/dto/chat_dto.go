package dto

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	// visitors may post as themselves or relay the auto-responder's reply
	Sender string `json:"sender" validate:"omitempty,oneof=user bot"`
}

type AdminReplyRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=sent read"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
