package entities

type NotificationKind string

const (
	NotificationOrderCustomer NotificationKind = "order_customer"
	NotificationOrderAdmin    NotificationKind = "order_admin"
	NotificationQuoteCustomer NotificationKind = "quote_customer"
)

// Message is a rendered email body pair.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Notification is a rendered message addressed to one or more recipients.
// Delivery is all-or-nothing across To.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	To      []string         `json:"to"`
	Subject string           `json:"subject"`
	HTML    string           `json:"html"`
	Text    string           `json:"text"`
}
