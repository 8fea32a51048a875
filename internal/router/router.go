package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitRegistration(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	GetRegistrationByEmail(c *ginext.Context)
	UpdateRegistration(c *ginext.Context)
	UpdatePaymentStatus(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	RegistrationStats(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	CreateActivity(c *ginext.Context)
	ListActivities(c *ginext.Context)
	GetActivity(c *ginext.Context)
	ListActivitiesByUser(c *ginext.Context)
	UpdateActivity(c *ginext.Context)
	DeleteActivity(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Registrations
		api.POST("/registrations", h.SubmitRegistration)
		api.GET("/registrations", h.ListRegistrations)
		api.GET("/registrations/stats/overview", h.RegistrationStats)
		api.GET("/registrations/email/:email", h.GetRegistrationByEmail)
		api.GET("/registrations/:id", h.GetRegistration)
		api.PUT("/registrations/:id", h.UpdateRegistration)
		api.PATCH("/registrations/:id/payment", h.UpdatePaymentStatus)
		api.DELETE("/registrations/:id", h.CancelRegistration)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		// Activities
		api.POST("/activities", h.CreateActivity)
		api.GET("/activities", h.ListActivities)
		api.GET("/activities/user/:userid", h.ListActivitiesByUser)
		api.GET("/activities/:id", h.GetActivity)
		api.PUT("/activities/:id", h.UpdateActivity)
		api.DELETE("/activities/:id", h.DeleteActivity)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
