package entities

const (
	QuoteItemPC    = "pc"
	QuoteItemOther = "other"

	DefaultCurrency = "USD"
)

// QuoteItem is one priced line. Label is only set for "other" items.
type QuoteItem struct {
	Key    string  `json:"key" dynamodbav:"key"`
	Label  string  `json:"label,omitempty" dynamodbav:"label,omitempty"`
	Amount float64 `json:"amount" dynamodbav:"amount"`
}

// Quote is the admin-priced itemization attached to an order.
type Quote struct {
	Currency string      `json:"currency" dynamodbav:"currency"`
	Items    []QuoteItem `json:"items" dynamodbav:"items"`
	Total    float64     `json:"total" dynamodbav:"total"`
	Notes    string      `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
}
