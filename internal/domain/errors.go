package domain

import "errors"

var (
	ErrFormationNotFound    = errors.New("formation not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrBlogPostNotFound     = errors.New("blog post not found")
	ErrContactNotFound      = errors.New("contact message not found")
)

var (
	ErrNoSeatsAvailable       = errors.New("no seats available")
	ErrAlreadyRegistered      = errors.New("user is already registered")
	ErrRegistrationNotPayable = errors.New("registration cannot be marked paid")
)

var (
	ErrEmailTaken        = errors.New("email is already taken")
	ErrAlreadySubscribed = errors.New("email is already subscribed")
	ErrSlugTaken         = errors.New("an event with this slug already exists")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
)

var (
	ErrValidation = errors.New("validation error")
)
