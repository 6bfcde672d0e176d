package dto

type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateFormationRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Duration       string  `json:"duration" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	MaxSeats       int     `json:"max_seats" binding:"required,gt=0"`
	PriceNonMember float64 `json:"price_non_member"`
	Image          string  `json:"image"`
}

type UpdateFormationRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Date           *string  `json:"date"`
	Location       *string  `json:"location"`
	Duration       *string  `json:"duration"`
	Category       *string  `json:"category"`
	Status         *string  `json:"status"`
	MaxSeats       *int     `json:"max_seats"`
	PriceNonMember *float64 `json:"price_non_member"`
	Image          *string  `json:"image"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type CreateEventRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	ShortDescription string   `json:"short_description"`
	Type             string   `json:"type"`
	DateStart        string   `json:"date_start" binding:"required"`
	DateEnd          string   `json:"date_end" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	PriceMember      float64  `json:"price_member"`
	PriceNonMember   float64  `json:"price_non_member"`
	MaxParticipants  int      `json:"max_participants" binding:"required,gt=0"`
	IsFeatured       bool     `json:"is_featured"`
	Sponsors         []string `json:"sponsors"`
}

type MarkRegistrationPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type SubmitEnrollmentRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Company   string `json:"company"`
	Message   string `json:"message"`
}

type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     *bool   `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

type CreateBlogPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

type UpdateBlogPostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
	Image   *string `json:"image"`
}

type SubmitContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Category string `json:"category"`
	Message  string `json:"message" binding:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress resolved"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
