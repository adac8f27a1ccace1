package handlers

import (
	"errors"
	"net/http"

	request "obsydia_retail/internal/adapter/http/dto/request"
	response "obsydia_retail/internal/adapter/http/dto/response"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase"
	"obsydia_retail/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Username and password are required", http.StatusBadRequest)
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// AdminHandler serves the admin dashboard API: login, order review and
// quote issuance.
type AdminHandler struct {
	orders usecase.IOrderUseCase
	auth   usecase.IAdminAuthUseCase
}

func NewAdminHandler(orders usecase.IOrderUseCase, auth usecase.IAdminAuthUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, auth: auth}
}

// Login godoc
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.AdminLoginRequest  true  "Credentials"
// @Success      200          {object}  response.AdminLoginResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      401          {object}  pkg.HTTPError
// @Failure      503          {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, err := h.auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAdminAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AdminLoginResponse{Token: token})
}

// ListOrders godoc
// @Summary      List orders, newest first
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.OrderResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary      Get one order
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// IssueQuote godoc
// @Summary      Price an order and email the quote
// @Description  The quote is emailed before it is saved. A 500 QUOTE_NOT_PERSISTED means the customer already has the email.
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id     path      string                true  "Order ID"
// @Param        quote  body      request.QuoteRequest  true  "Price sheet"
// @Success      200    {object}  response.OrderResponse
// @Failure      400    {object}  response.QuoteErrorResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /admin/orders/{id}/quote [post]
func (h *AdminHandler) IssueQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	order, err := h.orders.IssueQuote(c.Request.Context(), c.Param("id"), payload.ToForm())
	if err != nil {
		var qErr *usecase.QuoteValidationError
		if errors.As(err, &qErr) {
			c.JSON(http.StatusBadRequest, response.QuoteErrorResponse{
				Code:          "INVALID_QUOTE",
				Message:       qErr.Cause.Message(),
				Key:           qErr.Cause.Key(),
				QuoteDefaults: qErr.Defaults,
			})
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotPersisted):
		logging.L().Errorf("[quote][handler] quote emailed but not saved err=%v", err)
		return pkg.NewDomainError("QUOTE_NOT_PERSISTED", "Quote was emailed but could not be saved", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepositoryNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_NOT_CONFIGURED", "Order storage is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNotificationFailed):
		logging.L().Errorf("[quote][handler] notification failed err=%v", err)
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Email could not be sent", err, http.StatusBadGateway)
	default:
		logging.L().Errorf("[order][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapAdminAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAdminNotConfigured):
		return pkg.NewDomainErrorSimple("ADMIN_NOT_CONFIGURED", "Admin login is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
