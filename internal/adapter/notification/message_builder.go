package notification

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/locale"
	"obsydia_retail/internal/usecase/interfaces"
)

var ErrMissingPaymentNumber = errors.New("missing ATH_MOBILE_NUMBER")

var paymentNumberPattern = regexp.MustCompile(`\{\{\s*paymentNumber\s*\}\}`)

// ApplyPaymentNumber substitutes the payment number into template. A
// template without the placeholder is returned as is, even when no number
// is configured.
func ApplyPaymentNumber(template, number string) (string, error) {
	if !paymentNumberPattern.MatchString(template) {
		return template, nil
	}
	if strings.TrimSpace(number) == "" {
		return "", ErrMissingPaymentNumber
	}
	return paymentNumberPattern.ReplaceAllLiteralString(template, number), nil
}

// MessageBuilder renders customer and admin emails from the locale catalogs.
type MessageBuilder struct {
	paymentNumber string
}

var _ interfaces.IMessageBuilder = (*MessageBuilder)(nil)

func NewMessageBuilder(paymentNumber string) *MessageBuilder {
	return &MessageBuilder{paymentNumber: strings.TrimSpace(paymentNumber)}
}

type summaryItem struct {
	label string
	value string
}

// body accumulates the text and html renderings side by side.
type body struct {
	text []string
	html strings.Builder
}

func (b *body) paragraph(s string) {
	b.text = append(b.text, s)
	b.html.WriteString("<p>" + html.EscapeString(s) + "</p>")
}

func (b *body) heading(s string) {
	b.text = append(b.text, "", s)
	b.html.WriteString("<h3>" + html.EscapeString(s) + "</h3>")
}

func (b *body) labeled(label, value string) {
	b.text = append(b.text, label+": "+value)
	b.html.WriteString("<p><strong>" + html.EscapeString(label) + ":</strong> " + html.EscapeString(value) + "</p>")
}

func (b *body) list(items []summaryItem) {
	b.html.WriteString("<ul>")
	for _, it := range items {
		b.text = append(b.text, it.label+": "+it.value)
		b.html.WriteString("<li><strong>" + html.EscapeString(it.label) + ":</strong> " + html.EscapeString(it.value) + "</li>")
	}
	b.html.WriteString("</ul>")
}

func (b *body) message(subject string) entities.Message {
	return entities.Message{
		Subject: subject,
		Text:    strings.Join(b.text, "\n"),
		HTML:    b.html.String(),
	}
}

func (m *MessageBuilder) CustomerOrder(o entities.Order) (entities.Message, error) {
	t := locale.Get(o.Language)
	payment, err := ApplyPaymentNumber(t.Email.PaymentInstructions, m.paymentNumber)
	if err != nil {
		return entities.Message{}, err
	}

	var b body
	b.paragraph(t.Email.Intro)
	b.heading(t.Email.SummaryTitle)
	b.list(summary(t, o, false))
	b.heading(t.Email.ServicesTitle)
	b.paragraph(serviceNames(t, o.Services))
	b.labeled(t.Email.Labels.Notes, orDefault(o.Notes, t.Email.NoNotes))
	b.heading(t.Email.PaymentTitle)
	b.paragraph(payment)
	b.paragraph(t.Email.NextSteps)
	return b.message(t.Email.CustomerSubject), nil
}

func (m *MessageBuilder) AdminOrder(o entities.Order) (entities.Message, error) {
	t := locale.Get(o.Language)

	var b body
	b.paragraph(t.Email.AdminIntro)
	b.heading(t.Email.SummaryTitle)
	b.list(summary(t, o, true))
	b.heading(t.Email.ServicesTitle)
	b.paragraph(serviceNames(t, o.Services))
	b.labeled(t.Email.Labels.Notes, orDefault(o.Notes, t.Email.NoNotes))
	return b.message(strings.ReplaceAll(t.Email.AdminSubject, "{{name}}", o.FullName)), nil
}

func (m *MessageBuilder) CustomerQuote(o entities.Order, q entities.Quote) (entities.Message, error) {
	t := locale.Get(o.Language)
	payment, err := ApplyPaymentNumber(t.Email.PaymentInstructions, m.paymentNumber)
	if err != nil {
		return entities.Message{}, err
	}

	items := make([]summaryItem, 0, len(q.Items))
	for _, it := range q.Items {
		label := t.ServiceName(it.Key)
		if it.Key == entities.QuoteItemOther && it.Label != "" {
			label = it.Label
		}
		items = append(items, summaryItem{label: label, value: money(it.Amount, q.Currency)})
	}

	var b body
	b.paragraph(t.Email.QuoteIntro)
	b.labeled(t.Email.Labels.OrderID, o.ID)
	b.heading(t.Email.QuoteItemsTitle)
	b.list(items)
	b.labeled(t.Email.QuoteTotal, money(q.Total, q.Currency))
	if q.Notes != "" {
		b.labeled(t.Email.QuoteNotes, q.Notes)
	}
	b.heading(t.Email.PaymentTitle)
	b.paragraph(payment)
	return b.message(t.Email.QuoteSubject), nil
}

// Confirmation is the message shown to the customer after a successful
// submission. The payment variant is preferred when the catalog has one.
func (m *MessageBuilder) Confirmation(lang string) (string, error) {
	t := locale.Get(lang)
	msg := t.Confirmation.PaymentMessage
	if msg == "" {
		msg = t.Confirmation.Message
	}
	return ApplyPaymentNumber(msg, m.paymentNumber)
}

func summary(t *locale.Catalog, o entities.Order, admin bool) []summaryItem {
	l := t.Email.Labels
	items := []summaryItem{
		{l.Name, o.FullName},
		{l.Email, o.Email},
		{l.Phone, orDefault(o.Phone, t.Email.NotProvided)},
		{l.Address, orDefault(o.Address, t.Email.NotProvided)},
		{l.Location, o.Location},
		{l.Language, t.LanguageName(o.Language)},
	}
	if admin {
		items = append(items,
			summaryItem{l.OrderID, o.ID},
			summaryItem{l.Timestamp, o.CreatedAt.UTC().Format(time.RFC3339)},
		)
	}
	return items
}

func serviceNames(t *locale.Catalog, services []string) string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		if entities.IsCatalogService(s) {
			names = append(names, t.ServiceName(s))
		}
	}
	if len(names) == 0 {
		return t.Email.NoServices
	}
	return strings.Join(names, ", ")
}

func money(amount float64, currency string) string {
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
