package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/Aruntata-2001/task-manager/internal/domain"
)

// DueDate parses dueDate from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("dueDate: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DueDate) Ptr() *time.Time { return d.t }

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	Category    string   `json:"category" binding:"max=120"`
	Tags        []string `json:"tags"`
	DueDate     DueDate  `json:"dueDate"` // optional: "2026-02-19" or RFC3339
	Status      string   `json:"status"`  // optional, defaults to "pending"
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Category    *string   `json:"category" binding:"omitempty,max=120"`
	Tags        *[]string `json:"tags"`
	DueDate     *DueDate  `json:"dueDate"` // nil = keep, value = set
	Status      *string   `json:"status"`
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"dueDate"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskToResponse maps the domain entity to its JSON shape. Tags always
// serialize as an array, never null.
func TaskToResponse(t dom.Task) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Tags:        tags,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TasksToResponses maps a listing. The result is non-nil even when empty
// so list endpoints return [] rather than null.
func TasksToResponses(list []dom.Task) []TaskResponse {
	out := make([]TaskResponse, len(list))
	for i := range list {
		out[i] = TaskToResponse(list[i])
	}
	return out
}
