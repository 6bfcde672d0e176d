package dto

import (
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
}

type EventRegistrationResponse struct {
	RegistrationResponse
	PaidAt        string `json:"paid_at,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type FormationResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Date           string                 `json:"date"`
	Location       string                 `json:"location"`
	Duration       string                 `json:"duration"`
	Category       string                 `json:"category"`
	Status         string                 `json:"status"`
	MaxSeats       int                    `json:"max_seats"`
	PriceNonMember float64                `json:"price_non_member"`
	Image          string                 `json:"image,omitempty"`
	Registrations  []RegistrationResponse `json:"registrations"`
	EnrolledUsers  []domain.UserSummary   `json:"enrolled_users"`
	CreatedAt      string                 `json:"created_at"`
}

type EventResponse struct {
	ID               string                      `json:"id"`
	Title            string                      `json:"title"`
	Slug             string                      `json:"slug"`
	Description      string                      `json:"description"`
	ShortDescription string                      `json:"short_description,omitempty"`
	Type             string                      `json:"type"`
	DateStart        string                      `json:"date_start"`
	DateEnd          string                      `json:"date_end"`
	Location         string                      `json:"location"`
	PriceMember      float64                     `json:"price_member"`
	PriceNonMember   float64                     `json:"price_non_member"`
	MaxParticipants  int                         `json:"max_participants"`
	IsFeatured       bool                        `json:"is_featured"`
	Sponsors         []string                    `json:"sponsors"`
	Registrations    []EventRegistrationResponse `json:"registrations"`
	CreatedAt        string                      `json:"created_at"`
}

type EnrollmentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ContactTicketResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticket_id"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
	}
}

func ToEventRegistrationResponse(r *domain.EventRegistration) EventRegistrationResponse {
	resp := EventRegistrationResponse{
		RegistrationResponse: ToRegistrationResponse(&r.Registration),
		PaymentMethod:        r.PaymentMethod,
	}
	if r.PaidAt != nil {
		resp.PaidAt = r.PaidAt.Format(time.RFC3339)
	}
	return resp
}

func ToFormationResponse(f *domain.Formation) FormationResponse {
	registrations := make([]RegistrationResponse, 0, len(f.Registrations))
	for i := range f.Registrations {
		registrations = append(registrations, ToRegistrationResponse(&f.Registrations[i]))
	}

	enrolled := f.EnrolledUsers
	if enrolled == nil {
		enrolled = []domain.UserSummary{}
	}

	return FormationResponse{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		Date:           f.Date.Format(time.RFC3339),
		Location:       f.Location,
		Duration:       f.Duration,
		Category:       string(f.Category),
		Status:         string(f.Status),
		MaxSeats:       f.MaxSeats,
		PriceNonMember: f.PriceNonMember,
		Image:          f.Image,
		Registrations:  registrations,
		EnrolledUsers:  enrolled,
		CreatedAt:      f.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	registrations := make([]EventRegistrationResponse, 0, len(e.Registrations))
	for i := range e.Registrations {
		registrations = append(registrations, ToEventRegistrationResponse(&e.Registrations[i]))
	}

	sponsors := e.Sponsors
	if sponsors == nil {
		sponsors = []string{}
	}

	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Slug:             e.Slug,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		Type:             string(e.Type),
		DateStart:        e.DateStart.Format(time.RFC3339),
		DateEnd:          e.DateEnd.Format(time.RFC3339),
		Location:         e.Location,
		PriceMember:      e.PriceMember,
		PriceNonMember:   e.PriceNonMember,
		MaxParticipants:  e.MaxParticipants,
		IsFeatured:       e.IsFeatured,
		Sponsors:         sponsors,
		Registrations:    registrations,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Company:   e.Company,
		Message:   e.Message,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
