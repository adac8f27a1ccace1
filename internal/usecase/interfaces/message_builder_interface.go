package interfaces

import "obsydia_retail/internal/domain/entities"

// IMessageBuilder renders notification bodies in the order's language.
type IMessageBuilder interface {
	CustomerOrder(o entities.Order) (entities.Message, error)
	AdminOrder(o entities.Order) (entities.Message, error)
	CustomerQuote(o entities.Order, q entities.Quote) (entities.Message, error)
	Confirmation(lang string) (string, error)
}
