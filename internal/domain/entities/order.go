package entities

import "time"

// OrderStatus represents the lifecycle of a customer order.
//
// An order starts as "new" and moves to "quoted" once an admin sends a
// quote. Re-quoting a quoted order is allowed and keeps it "quoted".
type OrderStatus string

const (
	OrderStatusNew    OrderStatus = "new"
	OrderStatusQuoted OrderStatus = "quoted"
)

const (
	ServiceJellyfin       = "jellyfin"
	ServiceKavita         = "kavita"
	ServiceImmich         = "immich"
	ServiceAudiobookshelf = "audiobookshelf"
	ServiceExtraStorage   = "extra-storage"
)

// ServiceCatalog lists every purchasable service, in display order.
var ServiceCatalog = []string{
	ServiceJellyfin,
	ServiceKavita,
	ServiceImmich,
	ServiceAudiobookshelf,
	ServiceExtraStorage,
}

func IsCatalogService(key string) bool {
	for _, s := range ServiceCatalog {
		if s == key {
			return true
		}
	}
	return false
}

// Order is a customer's service request.
//
// Storage model:
//   - PK: id
//   - quote, quote_total and quote_sent_at are empty until a quote is saved.
type Order struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Location    string      `json:"location"`
	Notes       string      `json:"notes"`
	Services    []string    `json:"services"`
	Language    string      `json:"language"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	Quote       *Quote      `json:"quote,omitempty"`
	QuoteSentAt *time.Time  `json:"quote_sent_at,omitempty"`
}
