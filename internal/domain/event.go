package domain

import (
	"strings"
	"time"
)

type EventType string

const (
	EventTypeSeminar      EventType = "seminar"
	EventTypeBusinessTrip EventType = "business_trip"
	EventTypeFair         EventType = "fair"
	EventTypeConference   EventType = "conference"
	EventTypeTraining     EventType = "training"
	EventTypeNetworking   EventType = "networking"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeSeminar, EventTypeBusinessTrip, EventTypeFair,
		EventTypeConference, EventTypeTraining, EventTypeNetworking:
		return true
	}
	return false
}

// EventRegistration extends the roster entry with the paid slot. Payment
// itself is handled outside this service; only the transition is modeled.
type EventRegistration struct {
	Registration
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
}

type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	Type             EventType `json:"type"`
	DateStart        time.Time `json:"date_start"`
	DateEnd          time.Time `json:"date_end"`
	Location         string    `json:"location"`
	PriceMember      float64   `json:"price_member"`
	PriceNonMember   float64   `json:"price_non_member"`
	MaxParticipants  int       `json:"max_participants"`
	IsFeatured       bool      `json:"is_featured"`
	Sponsors         []string  `json:"sponsors"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Registrations []EventRegistration `json:"registrations"`
}

// Slugify derives the unique lookup key from a title: lowercase, any run
// of non-alphanumeric characters collapsed to a single hyphen.
func Slugify(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lower))
	prevHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

type CreateEventInput struct {
	Title            string
	Description      string
	ShortDescription string
	Type             EventType
	DateStart        time.Time
	DateEnd          time.Time
	Location         string
	PriceMember      float64
	PriceNonMember   float64
	MaxParticipants  int
	IsFeatured       bool
	Sponsors         []string
	CreatedBy        string
}
