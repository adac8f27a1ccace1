package routes

import (
	"obsydia_retail/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrder   = "/order"
	PathLocales = "/locales"
)

func addOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.Messages)

	rg.POST(PathOrder, orderHandler.SubmitOrder)
	rg.GET(PathLocales+"/:lang", handlers.GetLocale)
}
