package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterUser(c *ginext.Context)
	Login(c *ginext.Context)
	Profile(c *ginext.Context)

	CreateFormation(c *ginext.Context)
	GetFormation(c *ginext.Context)
	ListFormations(c *ginext.Context)
	UpdateFormation(c *ginext.Context)
	DeleteFormation(c *ginext.Context)
	RegisterToFormation(c *ginext.Context)
	UpdateFormationRegistrationStatus(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterToEvent(c *ginext.Context)
	MarkEventRegistrationPaid(c *ginext.Context)

	SubmitEnrollment(c *ginext.Context)
	MyEnrollmentStatus(c *ginext.Context)
	GetEnrollment(c *ginext.Context)
	ListEnrollments(c *ginext.Context)
	UpdateEnrollmentStatus(c *ginext.Context)
	DeleteEnrollment(c *ginext.Context)

	CreateProduct(c *ginext.Context)
	GetProduct(c *ginext.Context)
	ListProducts(c *ginext.Context)
	UpdateProduct(c *ginext.Context)
	DeleteProduct(c *ginext.Context)

	CreateBlogPost(c *ginext.Context)
	GetBlogPost(c *ginext.Context)
	ListBlogPosts(c *ginext.Context)
	UpdateBlogPost(c *ginext.Context)
	DeleteBlogPost(c *ginext.Context)

	SubmitContact(c *ginext.Context)
	ListContacts(c *ginext.Context)
	UpdateContactStatus(c *ginext.Context)
	SubscribeNewsletter(c *ginext.Context)

	AdminStats(c *ginext.Context)
	UserStats(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ListUsersByRole(c *ginext.Context)
	SearchUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	MyData(c *ginext.Context)
}

// Guards are the auth middleware hooks the route table needs. Authenticate
// runs on every /api request, the other two gate protected groups.
type Guards struct {
	Authenticate ginext.HandlerFunc
	RequireAuth  ginext.HandlerFunc
	RequireAdmin ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(g.Authenticate)
	{
		// Auth
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/profile", g.RequireAuth, h.Profile)

		// Formations
		api.GET("/formations", h.ListFormations)
		api.GET("/formations/:id", h.GetFormation)
		api.POST("/formations", g.RequireAdmin, h.CreateFormation)
		api.PUT("/formations/:id", g.RequireAdmin, h.UpdateFormation)
		api.DELETE("/formations/:id", g.RequireAdmin, h.DeleteFormation)
		api.POST("/formations/:id/register", g.RequireAuth, h.RegisterToFormation)
		api.PUT("/formations/:id/registrations/:regId", g.RequireAdmin, h.UpdateFormationRegistrationStatus)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:slug", h.GetEvent)
		api.POST("/events", g.RequireAdmin, h.CreateEvent)
		api.POST("/events/:slug/register", g.RequireAuth, h.RegisterToEvent)
		api.PUT("/events/:slug/registrations/:regId/paid", g.RequireAdmin, h.MarkEventRegistrationPaid)

		// Enrollments
		api.POST("/enrollments/submit", h.SubmitEnrollment)
		api.GET("/enrollments/my-status", g.RequireAuth, h.MyEnrollmentStatus)
		api.GET("/enrollments", g.RequireAdmin, h.ListEnrollments)
		api.GET("/enrollments/:id", g.RequireAdmin, h.GetEnrollment)
		api.PUT("/enrollments/:id/status", g.RequireAdmin, h.UpdateEnrollmentStatus)
		api.DELETE("/enrollments/:id", g.RequireAdmin, h.DeleteEnrollment)

		// Products
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.POST("/products", g.RequireAdmin, h.CreateProduct)
		api.PUT("/products/:id", g.RequireAdmin, h.UpdateProduct)
		api.DELETE("/products/:id", g.RequireAdmin, h.DeleteProduct)

		// Blog
		api.GET("/blogs", h.ListBlogPosts)
		api.GET("/blogs/:id", h.GetBlogPost)
		api.POST("/blogs", g.RequireAdmin, h.CreateBlogPost)
		api.PUT("/blogs/:id", g.RequireAdmin, h.UpdateBlogPost)
		api.DELETE("/blogs/:id", g.RequireAdmin, h.DeleteBlogPost)

		// Contacts and newsletter
		api.POST("/contacts", h.SubmitContact)
		api.GET("/contacts", g.RequireAdmin, h.ListContacts)
		api.PATCH("/contacts/:id", g.RequireAdmin, h.UpdateContactStatus)
		api.POST("/contacts/newsletter", h.SubscribeNewsletter)

		// Admin
		api.GET("/admin/stats", g.RequireAdmin, h.AdminStats)
		api.GET("/admin/user-stats", g.RequireAdmin, h.UserStats)
		api.GET("/admin/users", g.RequireAdmin, h.ListUsers)
		api.GET("/admin/users/role/:role", g.RequireAdmin, h.ListUsersByRole)
		api.GET("/admin/users/search", g.RequireAdmin, h.SearchUsers)
		api.DELETE("/admin/users/:id", g.RequireAdmin, h.DeleteUser)

		// Member dashboard
		api.GET("/dashboard/my-data", g.RequireAuth, h.MyData)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
