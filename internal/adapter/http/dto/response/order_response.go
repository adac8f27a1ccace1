package response

import (
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/domain/intake"
)

// OrderSubmitResponse is the public order form result.
type OrderSubmitResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

type QuoteItemResponse struct {
	Key    string  `json:"key"`
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	Currency string              `json:"currency"`
	Items    []QuoteItemResponse `json:"items"`
	Total    float64             `json:"total"`
	Notes    string              `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID          string         `json:"id"`
	FullName    string         `json:"full_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	Location    string         `json:"location"`
	Notes       string         `json:"notes"`
	Services    []string       `json:"services"`
	Language    string         `json:"language"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Quote       *QuoteResponse `json:"quote,omitempty"`
	QuoteSentAt *time.Time     `json:"quote_sent_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	services := o.Services
	if services == nil {
		services = []string{}
	}
	out := OrderResponse{
		ID:          o.ID,
		FullName:    o.FullName,
		Email:       o.Email,
		Phone:       o.Phone,
		Address:     o.Address,
		Location:    o.Location,
		Notes:       o.Notes,
		Services:    services,
		Language:    o.Language,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		QuoteSentAt: o.QuoteSentAt,
	}
	if o.Quote != nil {
		q := FromQuote(*o.Quote)
		out.Quote = &q
	}
	return out
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{Key: it.Key, Label: it.Label, Amount: it.Amount})
	}
	return QuoteResponse{Currency: q.Currency, Items: items, Total: q.Total, Notes: q.Notes}
}

// QuoteErrorResponse reports a rejected price sheet and echoes it back so
// the form can be refilled.
type QuoteErrorResponse struct {
	Code          string           `json:"code"`
	Message       string           `json:"message"`
	Key           string           `json:"key"`
	QuoteDefaults intake.QuoteForm `json:"quote_defaults"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
