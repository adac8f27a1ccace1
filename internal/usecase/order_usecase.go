package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/domain/intake"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrRepositoryNotConfigured = errors.New("order repository not configured")
	ErrNotifierNotConfigured   = errors.New("notifier not configured")
	ErrNotificationFailed      = errors.New("notification failed")
	ErrOrderNotPersisted       = errors.New("order not persisted")
	ErrQuoteNotPersisted       = errors.New("quote sent but not persisted")
)

// OrderValidationError is returned by SubmitOrder when the form is rejected.
// Order is the sanitized (length-safe) order that would have been created.
type OrderValidationError struct {
	Order      entities.Order
	Violations intake.Violations
}

func (e *OrderValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s", e.Violations.Primary())
}

// QuoteValidationError is returned by IssueQuote when the price sheet is
// rejected. Defaults echoes the submitted sheet so it can be redisplayed.
type QuoteValidationError struct {
	Cause    *intake.QuoteError
	Defaults intake.QuoteForm
}

func (e *QuoteValidationError) Error() string {
	return "invalid quote: " + e.Cause.Error()
}

func (e *QuoteValidationError) Unwrap() error {
	return e.Cause
}

// IOrderUseCase is the order intake and quote issuance pipeline.
//
//   - SubmitOrder: validate → render messages → persist (when a store is
//     configured) → notify customer → notify admins (when configured).
//   - IssueQuote: load → calculate → notify customer → persist quote.
//     The email goes out before the quote is saved; a save failure after a
//     successful send is reported as ErrQuoteNotPersisted and nothing is
//     resent or rolled back.
type IOrderUseCase interface {
	SubmitOrder(ctx context.Context, payload intake.OrderPayload) (entities.Order, error)
	IssueQuote(ctx context.Context, orderID string, form intake.QuoteForm) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCaseConfig struct {
	AdminRecipients []string
	Currency        string
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.INotifier
	messages interfaces.IMessageBuilder
	ids      intake.IDGenerator
	cfg      OrderUseCaseConfig
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the pipeline. repo may be nil, in which case orders
// are only emailed and quotes cannot be issued.
func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	notifier interfaces.INotifier,
	messages interfaces.IMessageBuilder,
	ids intake.IDGenerator,
	cfg OrderUseCaseConfig,
) *OrderUseCase {
	return &OrderUseCase{
		repo:     repo,
		notifier: notifier,
		messages: messages,
		ids:      ids,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (u *OrderUseCase) SubmitOrder(ctx context.Context, payload intake.OrderPayload) (entities.Order, error) {
	order, violations := intake.ParseOrder(payload, u.ids, u.now())
	if !violations.Empty() {
		logging.L().Infof("[order][usecase] submit rejected order_id=%s codes=%v", order.ID, violations)
		return order, &OrderValidationError{Order: order, Violations: violations}
	}
	logging.L().Infof("[order][usecase] submit start order_id=%s services=%v language=%s", order.ID, order.Services, order.Language)

	// Messages are rendered before anything is stored so a rendering failure
	// leaves no order behind.
	customer, err := u.messages.CustomerOrder(order)
	if err != nil {
		return entities.Order{}, u.notificationError(order.ID, entities.NotificationOrderCustomer, err)
	}
	var admin entities.Message
	notifyAdmins := len(u.cfg.AdminRecipients) > 0
	if notifyAdmins {
		if admin, err = u.messages.AdminOrder(order); err != nil {
			return entities.Order{}, u.notificationError(order.ID, entities.NotificationOrderAdmin, err)
		}
	}

	if u.repo != nil {
		created, err := u.repo.Create(ctx, order)
		if err != nil {
			logging.L().Errorf("[order][usecase] repository create failed order_id=%s err=%v", order.ID, err)
			return entities.Order{}, fmt.Errorf("%w: %w", ErrOrderNotPersisted, err)
		}
		order = created
	} else {
		logging.L().Infof("[order][usecase] repository not configured; skipping persistence order_id=%s", order.ID)
	}

	if err := u.send(ctx, entities.NotificationOrderCustomer, []string{order.Email}, customer); err != nil {
		return entities.Order{}, u.notificationError(order.ID, entities.NotificationOrderCustomer, err)
	}
	if notifyAdmins {
		if err := u.send(ctx, entities.NotificationOrderAdmin, u.cfg.AdminRecipients, admin); err != nil {
			return entities.Order{}, u.notificationError(order.ID, entities.NotificationOrderAdmin, err)
		}
	}

	logging.L().Infof("[order][usecase] submit success order_id=%s", order.ID)
	return order, nil
}

func (u *OrderUseCase) IssueQuote(ctx context.Context, orderID string, form intake.QuoteForm) (entities.Order, error) {
	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	logging.L().Infof("[quote][usecase] issue start order_id=%s status=%s", order.ID, order.Status)

	quote, err := intake.ParseQuotePayload(form)
	if err != nil {
		var qErr *intake.QuoteError
		if errors.As(err, &qErr) {
			logging.L().Infof("[quote][usecase] quote rejected order_id=%s key=%s", order.ID, qErr.Key())
			return entities.Order{}, &QuoteValidationError{Cause: qErr, Defaults: form}
		}
		return entities.Order{}, err
	}
	if u.cfg.Currency != "" {
		quote.Currency = u.cfg.Currency
	}

	msg, err := u.messages.CustomerQuote(order, quote)
	if err != nil {
		return entities.Order{}, u.notificationError(order.ID, entities.NotificationQuoteCustomer, err)
	}
	if err := u.send(ctx, entities.NotificationQuoteCustomer, []string{order.Email}, msg); err != nil {
		return entities.Order{}, u.notificationError(order.ID, entities.NotificationQuoteCustomer, err)
	}
	logging.L().Infof("[quote][usecase] quote sent order_id=%s total=%.2f %s", order.ID, quote.Total, quote.Currency)

	updated, err := u.repo.SaveQuote(ctx, order.ID, quote)
	if err != nil {
		logging.L().Errorf("[quote][usecase] quote emailed but not saved order_id=%s err=%v", order.ID, err)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrQuoteNotPersisted, err)
	}
	if updated.ID == "" {
		logging.L().Errorf("[quote][usecase] quote emailed but order vanished order_id=%s", order.ID)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrQuoteNotPersisted, ErrOrderNotFound)
	}

	logging.L().Infof("[quote][usecase] issue success order_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.repo == nil {
		return entities.Order{}, ErrRepositoryNotConfigured
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	if u.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return u.repo.List(ctx)
}

func (u *OrderUseCase) send(ctx context.Context, kind entities.NotificationKind, to []string, msg entities.Message) error {
	if u.notifier == nil {
		return ErrNotifierNotConfigured
	}
	return u.notifier.Send(ctx, entities.Notification{
		Kind:    kind,
		To:      to,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
}

func (u *OrderUseCase) notificationError(orderID string, kind entities.NotificationKind, err error) error {
	logging.L().Errorf("[order][usecase] notification failed order_id=%s kind=%s err=%v", orderID, kind, err)
	return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
}
