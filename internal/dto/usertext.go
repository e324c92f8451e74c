package dto

import (
	"time"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
)

// SaveTextRequest is the JSON body for POST /api/text/save.
type SaveTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type UserTextResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveTextResponse is the body for a successful save.
type SaveTextResponse struct {
	Message  string           `json:"message"`
	UserText UserTextResponse `json:"userText"`
}

func UserTextToResponse(t dom.UserText) UserTextResponse {
	return UserTextResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Text:      t.Text,
		CreatedAt: t.CreatedAt,
	}
}

func UserTextsToResponses(list []dom.UserText) []UserTextResponse {
	out := make([]UserTextResponse, len(list))
	for i := range list {
		out[i] = UserTextToResponse(list[i])
	}
	return out
}
