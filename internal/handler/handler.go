package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	"github.com/ibrahima697/BayySaWaarBack/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type FormationSvc interface {
	Create(ctx context.Context, input domain.CreateFormationInput) (*domain.Formation, error)
	GetByID(ctx context.Context, id string) (*domain.Formation, error)
	List(ctx context.Context, viewer *domain.Viewer) ([]*domain.Formation, error)
	Update(ctx context.Context, id string, patch domain.UpdateFormationInput) (*domain.Formation, error)
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, formationID, userID string) (*domain.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, formationID, registrationID string, status domain.RegistrationStatus) error
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Register(ctx context.Context, slug, userID string) (*domain.EventRegistration, error)
	MarkPaid(ctx context.Context, slug, registrationID, paymentMethod string) error
}

type AuthSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

type EnrollmentSvc interface {
	Submit(ctx context.Context, input domain.SubmitEnrollmentInput) (*domain.Enrollment, error)
	MyStatus(ctx context.Context, userID string) (*domain.Enrollment, error)
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	List(ctx context.Context) ([]*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (*domain.Enrollment, error)
	Delete(ctx context.Context, id string) error
}

type ProductSvc interface {
	Create(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type BlogSvc interface {
	Create(ctx context.Context, input domain.CreateBlogPostInput) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
	Update(ctx context.Context, id string, patch domain.UpdateBlogPostInput) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type ContactSvc interface {
	Submit(ctx context.Context, input domain.SubmitContactInput) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, error)
}

type AdminSvc interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
	UserStats(ctx context.Context) (*domain.UserStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type DashboardSvc interface {
	MyData(ctx context.Context, userID string) (*service.DashboardData, error)
}

type Handler struct {
	formationService  FormationSvc
	eventService      EventSvc
	authService       AuthSvc
	enrollmentService EnrollmentSvc
	productService    ProductSvc
	blogService       BlogSvc
	contactService    ContactSvc
	adminService      AdminSvc
	dashboardService  DashboardSvc
}

func NewHandler(
	formationService FormationSvc,
	eventService EventSvc,
	authService AuthSvc,
	enrollmentService EnrollmentSvc,
	productService ProductSvc,
	blogService BlogSvc,
	contactService ContactSvc,
	adminService AdminSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		formationService:  formationService,
		eventService:      eventService,
		authService:       authService,
		enrollmentService: enrollmentService,
		productService:    productService,
		blogService:       blogService,
		contactService:    contactService,
		adminService:      adminService,
		dashboardService:  dashboardService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrFormationNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBlogPostNotFound),
		errors.Is(err, domain.ErrContactNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrRegistrationNotPayable),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadySubscribed),
		errors.Is(err, domain.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
