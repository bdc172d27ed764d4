package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/stats", c.BookHandler.Stats)

		setupBookRoutes(v1, c)
		setupEmployeeRoutes(v1, c)
		setupGenreRoutes(v1, c)
		setupCirculationRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Update)

		books.POST("/:id/checkout", c.CirculationHandler.Checkout)
		books.POST("/:id/return", c.CirculationHandler.Return)
		books.GET("/:id/loans", c.CirculationHandler.BookLoans)
		books.POST("/:id/reservations", c.CirculationHandler.Reserve)
		books.GET("/:id/reservations", c.CirculationHandler.BookReservations)
	}
}

func setupEmployeeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	employees := v1.Group("/employees")
	{
		employees.POST("", c.EmployeeHandler.Create)
		employees.GET("", c.EmployeeHandler.List)
		// Fixed paths before the :id wildcard.
		employees.GET("/active", c.EmployeeHandler.ListActive)
		employees.GET("/departments", c.EmployeeHandler.Departments)
		employees.GET("/:id", c.EmployeeHandler.GetByID)
		employees.PUT("/:id", c.EmployeeHandler.Update)

		employees.GET("/:id/loans", c.CirculationHandler.EmployeeLoans)
		employees.GET("/:id/reservations", c.CirculationHandler.EmployeeReservations)
	}
}

func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.POST("", c.GenreHandler.Create)
		genres.GET("", c.GenreHandler.List)
		genres.GET("/tree", c.GenreHandler.Tree)
		genres.GET("/:id", c.GenreHandler.GetByID)
		genres.PUT("/:id", c.GenreHandler.Update)
		genres.DELETE("/:id", c.GenreHandler.Delete)
	}
}

func setupCirculationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.DELETE("/reservations/:id", c.CirculationHandler.CancelReservation)
	v1.GET("/loans/overdue", c.CirculationHandler.OverdueLoans)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		checks := gin.H{}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "unhealthy"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
		} else {
			checks["cache"] = "ok"
		}

		payload := gin.H{
			"status":  status,
			"version": c.Config.App.Version,
			"checks":  checks,
		}

		if status != "healthy" {
			ctx.JSON(http.StatusServiceUnavailable, payload)
			return
		}
		response.Success(ctx, http.StatusOK, payload)
	}
}
