package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	request "obsydia_retail/internal/adapter/http/dto/request"
	response "obsydia_retail/internal/adapter/http/dto/response"
	"obsydia_retail/internal/infrastructure/locale"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase"
	"obsydia_retail/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxOrderBodyBytes = 1 << 20

// OrderHandler serves the public order form.
type OrderHandler struct {
	usecase  usecase.IOrderUseCase
	messages interfaces.IMessageBuilder
}

func NewOrderHandler(uc usecase.IOrderUseCase, messages interfaces.IMessageBuilder) *OrderHandler {
	return &OrderHandler{usecase: uc, messages: messages}
}

// SubmitOrder godoc
// @Summary      Submit an order
// @Description  Validates the order form, stores it and emails the customer (and admins).
// @Tags         orders
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order form"
// @Success      200    {object}  response.OrderSubmitResponse
// @Failure      400    {object}  response.OrderSubmitResponse
// @Failure      500    {object}  response.OrderSubmitResponse
// @Router       /order [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxOrderBodyBytes)

	req, err := bindOrderRequest(c)
	if err != nil {
		t := locale.Get("")
		c.JSON(http.StatusBadRequest, response.OrderSubmitResponse{OK: false, Message: t.ErrorMessage("required")})
		return
	}

	lang, _ := req.Language.(string)
	t := locale.Get(strings.TrimSpace(lang))

	order, err := h.usecase.SubmitOrder(c.Request.Context(), req.ToPayload())
	if err != nil {
		var vErr *usecase.OrderValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, response.OrderSubmitResponse{
				OK:      false,
				Message: t.ErrorMessage(string(vErr.Violations.Primary())),
			})
			return
		}
		logging.L().Errorf("[order][handler] submit failed err=%v", err)
		c.JSON(http.StatusInternalServerError, response.OrderSubmitResponse{OK: false, Message: t.Errors["server"]})
		return
	}

	message, err := h.messages.Confirmation(order.Language)
	if err != nil {
		logging.L().Warnf("[order][handler] confirmation fallback order_id=%s err=%v", order.ID, err)
		message = locale.Get(order.Language).Confirmation.Message
	}

	c.JSON(http.StatusOK, response.OrderSubmitResponse{OK: true, OrderID: order.ID, Message: message})
}

func bindOrderRequest(c *gin.Context) (request.OrderRequest, error) {
	switch c.ContentType() {
	case binding.MIMEJSON:
		var req request.OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return request.OrderRequest{}, err
		}
		return req, nil
	case binding.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return request.OrderRequest{}, err
		}
		return request.OrderRequestFromForm(url.Values(form.Value)), nil
	default:
		if err := c.Request.ParseForm(); err != nil {
			return request.OrderRequest{}, err
		}
		return request.OrderRequestFromForm(c.Request.PostForm), nil
	}
}
