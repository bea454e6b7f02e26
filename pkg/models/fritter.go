package models

import (
	"time"
)

// Timeline variants
const (
	VariantFeatured  = "FEATURED"
	VariantFollowing = "FOLLOWING"
)

// Classification types. None is the sentinel for "no classification row";
// it is never stored.
const (
	ClassificationBot      = "BOT"
	ClassificationHuman    = "HUMAN"
	ClassificationVerified = "VERIFIED"
	ClassificationNone     = "NONE"
)

// Freet represents a short-form post
type Freet struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// User represents a user account. Following is the adjacency list of
// usernames this user follows, stored on the follower row.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Following []string  `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

// TimelineEntry is the persisted snapshot of freet ids for one
// (user, variant) pair. At most one row exists per pair.
type TimelineEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Variant     string    `json:"variant"`
	FreetIDs    []string  `json:"freet_ids"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// Event is a time-bounded collection of participant users. Start/End are
// a half-open interval [start, end) with start < end.
type Event struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Start        int64     `json:"start"`
	End          int64     `json:"end"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// Classification is the trust label on a user account (at most one per user)
type Classification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	ModifiedAt time.Time `json:"modified_at"`
}

// TimelineResponse is the timeline payload returned to clients: the entry
// plus the hydrated freets in snapshot order.
type TimelineResponse struct {
	ID          string    `json:"id"`
	Variant     string    `json:"variant"`
	Freets      []Freet   `json:"freets"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// EventResponse is an event together with the merged posts of all its
// participants.
type EventResponse struct {
	ID           string    `json:"id"`
	Owner        string    `json:"owner"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Start        int64     `json:"start"`
	End          int64     `json:"end"`
	Participants []string  `json:"participants"`
	Freets       []Freet   `json:"freets"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// ClassificationResponse is the classification payload; Type is NONE when
// the user has no classification row.
type ClassificationResponse struct {
	ID         string     `json:"id,omitempty"`
	Type       string     `json:"type"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// CreateEventRequest is the payload for creating an event
type CreateEventRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Start        int64    `json:"start"`
	End          int64    `json:"end"`
	Participants []string `json:"participants"`
}

// UpdateEventRequest is the payload for partially updating an event
type UpdateEventRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Start        *int64   `json:"start"`
	End          *int64   `json:"end"`
	Participants []string `json:"participants"`
}

// ClassificationRequest carries the requested classification value plus
// the validation token the request layer checks before any write.
type ClassificationRequest struct {
	Validation string `json:"validation"`
	Value      string `json:"value" binding:"required"`
}

// CreateFreetRequest is the payload for posting a freet
type CreateFreetRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateFreetRequest is the payload for editing a freet's content
type UpdateFreetRequest struct {
	Content string `json:"content" binding:"required"`
}
