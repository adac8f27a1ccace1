package routes

import (
	"obsydia_retail/internal/adapter/http/handlers"
	"obsydia_retail/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, deps Dependencies) {
	adminHandler := handlers.NewAdminHandler(deps.Orders, deps.Auth)

	admin := rg.Group(PathAdmin)
	admin.POST("/login", adminHandler.Login)

	orders := admin.Group("/orders", middleware.AdminAuth(deps.Auth))
	{
		orders.GET("", adminHandler.ListOrders)
		orders.GET("/:id", adminHandler.GetOrder)
		orders.POST("/:id/quote", adminHandler.IssueQuote)
	}
}
