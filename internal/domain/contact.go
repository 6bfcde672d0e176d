package domain

import "time"

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusResolved   ContactStatus = "resolved"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved:
		return true
	}
	return false
}

// Contact is a message submitted through the public contact form. Each
// one gets a ticket ID the sender can reference later. Status tracks
// the admin's handling of the ticket and starts at "new".
type Contact struct {
	ID        string        `json:"id"`
	TicketID  string        `json:"ticket_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Category  string        `json:"category,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type SubmitContactInput struct {
	Name     string
	Email    string
	Category string
	Message  string
}

type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStats is the aggregate counters block for the admin dashboard.
type AdminStats struct {
	TotalUsers          int `json:"total_users"`
	TotalEnrollments    int `json:"total_enrollments"`
	PendingEnrollments  int `json:"pending_enrollments"`
	ApprovedEnrollments int `json:"approved_enrollments"`
	RejectedEnrollments int `json:"rejected_enrollments"`
	TotalProducts       int `json:"total_products"`
	TotalBlogs          int `json:"total_blogs"`
}

// UserStats breaks the user base down by role.
type UserStats struct {
	TotalUsers int `json:"total_users"`
	Members    int `json:"members"`
	Admins     int `json:"admins"`
}
