package interfaces

import (
	"context"

	"obsydia_retail/internal/domain/entities"
)

// IOrderRepository abstracts order persistence.
//
// The pipeline must be able to:
//   - create an order once, keyed by its id
//   - load one order or list all of them (newest first)
//   - attach a quote and move the order to "quoted"
//
// GetByID and SaveQuote return a zero Order when the id does not exist.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	SaveQuote(ctx context.Context, id string, q entities.Quote) (entities.Order, error)
}
