package domain

import "time"

type EnrollmentStatus string

const (
	EnrollmentStatusPending  EnrollmentStatus = "pending"
	EnrollmentStatusApproved EnrollmentStatus = "approved"
	EnrollmentStatusRejected EnrollmentStatus = "rejected"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusApproved, EnrollmentStatusRejected:
		return true
	}
	return false
}

// Enrollment is a membership application submitted through the public
// form; an admin later approves or rejects it.
type Enrollment struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id,omitempty"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Company   string           `json:"company,omitempty"`
	Message   string           `json:"message,omitempty"`
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type SubmitEnrollmentInput struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Message   string
}
