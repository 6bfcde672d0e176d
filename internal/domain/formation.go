package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
	// RegistrationStatusPaid applies to event rosters only.
	RegistrationStatusPaid RegistrationStatus = "paid"
)

// Registration is one user's roster entry. It has no identity outside
// its owning formation or event: deleting the aggregate deletes it.
type Registration struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`

	// Display fields, populated on admin projections only.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

type FormationCategory string

const (
	CategoryCerealProcessing  FormationCategory = "transformation-cereales"
	CategoryFruitsVegetables  FormationCategory = "fruits-legumes"
	CategoryEntrepreneurship  FormationCategory = "entrepreneuriat"
	CategoryWomenEmpowerment  FormationCategory = "autonomisation-femmes"
	CategoryFormalization     FormationCategory = "formalisation"
)

var FormationCategories = []FormationCategory{
	CategoryCerealProcessing,
	CategoryFruitsVegetables,
	CategoryEntrepreneurship,
	CategoryWomenEmpowerment,
	CategoryFormalization,
}

func (c FormationCategory) Valid() bool {
	for _, known := range FormationCategories {
		if c == known {
			return true
		}
	}
	return false
}

type FormationStatus string

const (
	FormationStatusUpcoming  FormationStatus = "upcoming"
	FormationStatusOngoing   FormationStatus = "ongoing"
	FormationStatusCompleted FormationStatus = "completed"
)

func (s FormationStatus) Valid() bool {
	switch s {
	case FormationStatusUpcoming, FormationStatusOngoing, FormationStatusCompleted:
		return true
	}
	return false
}

type Formation struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Date           time.Time         `json:"date"`
	Location       string            `json:"location"`
	Duration       string            `json:"duration"`
	Category       FormationCategory `json:"category"`
	Status         FormationStatus   `json:"status"`
	MaxSeats       int               `json:"max_seats"`
	PriceNonMember float64           `json:"price_non_member"`
	Image          string            `json:"image,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Registrations []Registration `json:"registrations"`
	// EnrolledUsers is the derived projection: exactly the users whose
	// roster entry is currently approved.
	EnrolledUsers []UserSummary `json:"enrolled_users"`
}

// CanApprove is the capacity policy: an entry may move to approved only
// while the approved count is below the seat limit. It is the
// authoritative gate at the pending->approved transition; registration
// applies it early as a soft check against already-exhausted seats.
func CanApprove(approvedCount, maxSeats int) bool {
	return approvedCount < maxSeats
}

type CreateFormationInput struct {
	Title          string
	Description    string
	Date           time.Time
	Location       string
	Duration       string
	Category       FormationCategory
	MaxSeats       int
	PriceNonMember float64
	Image          string
}

// UpdateFormationInput is a partial patch; nil fields are left untouched.
// Shrinking MaxSeats below the current approved count is applied as-is:
// there is no eviction policy, the formation is simply over capacity.
type UpdateFormationInput struct {
	Title          *string
	Description    *string
	Date           *time.Time
	Location       *string
	Duration       *string
	Category       *FormationCategory
	Status         *FormationStatus
	MaxSeats       *int
	PriceNonMember *float64
	Image          *string
}
