package domain

import "time"

// Participant is someone who can be drawn as a winner.
// A nil CategoryID means the participant is uncategorized.
type Participant struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	CategoryID *string                `json:"categoryId"`
	ExtraInfo  map[string]interface{} `json:"extraInfo,omitempty"`
	IsActive   bool                   `json:"isActive"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// Category groups participants for drawing purposes.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ParticipantFilter narrows participant listings. Zero values mean "no filter".
type ParticipantFilter struct {
	CategoryID    *string
	Uncategorized bool
	ActiveOnly    bool
	Search        string
}

// NewParticipant is an unsaved participant row, e.g. from a CSV import.
type NewParticipant struct {
	Name       string
	CategoryID *string
	ExtraInfo  map[string]interface{}
	IsActive   bool
}

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string
	Description *string
}

// StringPtr returns nil for an empty string, otherwise a pointer to s.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
