package intake

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"obsydia_retail/internal/domain/entities"
)

// QuoteForm is the raw admin price sheet. Empty amounts mean zero.
// OtherLabels and OtherAmounts are parallel rows and may differ in length.
type QuoteForm struct {
	PC             string   `json:"pc"`
	Jellyfin       string   `json:"jellyfin"`
	Immich         string   `json:"immich"`
	Kavita         string   `json:"kavita"`
	Audiobookshelf string   `json:"audiobookshelf"`
	ExtraStorage   string   `json:"extra-storage"`
	Notes          string   `json:"quoteNotes"`
	OtherLabels    []string `json:"otherLabel"`
	OtherAmounts   []string `json:"otherAmount"`
}

type QuoteErrorReason string

const (
	ReasonPCRequired     QuoteErrorReason = "pc_required"
	ReasonInvalidAmount  QuoteErrorReason = "invalid_amount"
	ReasonAmountRequired QuoteErrorReason = "amount_required"
	ReasonLabelRequired  QuoteErrorReason = "label_required"
	ReasonTotalTooLarge  QuoteErrorReason = "total_too_large"
)

// quoteTotalField is the Field of a QuoteError raised for the sum.
const quoteTotalField = "total"

// QuoteError reports the first rejected field of a price sheet.
// Row is 1-based and only set for "other" rows.
type QuoteError struct {
	Field  string
	Row    int
	Reason QuoteErrorReason
}

// Key is a stable message key for the failure.
func (e *QuoteError) Key() string {
	switch e.Reason {
	case ReasonPCRequired:
		return "quote.pc.required"
	case ReasonAmountRequired:
		return "quote.other.amount_required"
	case ReasonLabelRequired:
		return "quote.other.label_required"
	case ReasonTotalTooLarge:
		return "quote.total.too_large"
	}
	if e.Field == entities.QuoteItemOther {
		return "quote.other.invalid_amount"
	}
	return "quote.invalid_amount"
}

func (e *QuoteError) Message() string {
	switch e.Reason {
	case ReasonPCRequired:
		return "PC amount is required and must be greater than 0."
	case ReasonAmountRequired:
		return fmt.Sprintf("Other item %d: amount required.", e.Row)
	case ReasonLabelRequired:
		return fmt.Sprintf("Other item %d: label required.", e.Row)
	case ReasonTotalTooLarge:
		return "Quote total is too large."
	}
	if e.Field == entities.QuoteItemOther {
		return fmt.Sprintf("Other item %d: invalid amount.", e.Row)
	}
	return fmt.Sprintf("Invalid amount for %s.", e.Field)
}

func (e *QuoteError) Error() string {
	return e.Message()
}

type fixedAmount struct {
	key    string
	raw    string
	amount float64
	ok     bool
}

// ParseQuotePayload turns a price sheet into a quote. Fields are checked in
// the order pc, jellyfin, immich, kavita, audiobookshelf, extra-storage, then
// other rows by index; the first failure is returned as a *QuoteError.
func ParseQuotePayload(form QuoteForm) (entities.Quote, error) {
	fixed := []fixedAmount{
		{key: entities.QuoteItemPC, raw: form.PC},
		{key: entities.ServiceJellyfin, raw: form.Jellyfin},
		{key: entities.ServiceImmich, raw: form.Immich},
		{key: entities.ServiceKavita, raw: form.Kavita},
		{key: entities.ServiceAudiobookshelf, raw: form.Audiobookshelf},
		{key: entities.ServiceExtraStorage, raw: form.ExtraStorage},
	}
	for i := range fixed {
		fixed[i].amount, fixed[i].ok = parseAmount(fixed[i].raw)
	}

	items := make([]entities.QuoteItem, 0, len(fixed)+len(form.OtherLabels))
	for _, f := range fixed {
		if f.key == entities.QuoteItemPC {
			if !f.ok || f.amount <= 0 {
				return entities.Quote{}, &QuoteError{Field: f.key, Reason: ReasonPCRequired}
			}
		} else if !f.ok {
			return entities.Quote{}, &QuoteError{Field: f.key, Reason: ReasonInvalidAmount}
		}
		if f.amount > 0 {
			items = append(items, entities.QuoteItem{Key: f.key, Amount: f.amount})
		}
	}

	rows := max(len(form.OtherLabels), len(form.OtherAmounts))
	for i := 0; i < rows; i++ {
		label := strings.TrimSpace(at(form.OtherLabels, i))
		rawAmount := at(form.OtherAmounts, i)

		amount := 0.0
		if strings.TrimSpace(rawAmount) != "" {
			var ok bool
			if amount, ok = parseAmount(rawAmount); !ok {
				return entities.Quote{}, &QuoteError{Field: entities.QuoteItemOther, Row: i + 1, Reason: ReasonInvalidAmount}
			}
		}

		switch {
		case label != "" && amount <= 0:
			return entities.Quote{}, &QuoteError{Field: entities.QuoteItemOther, Row: i + 1, Reason: ReasonAmountRequired}
		case label == "" && amount > 0:
			return entities.Quote{}, &QuoteError{Field: entities.QuoteItemOther, Row: i + 1, Reason: ReasonLabelRequired}
		case label != "":
			items = append(items, entities.QuoteItem{Key: entities.QuoteItemOther, Label: label, Amount: amount})
		}
	}

	sum := 0.0
	for _, it := range items {
		sum += it.Amount
	}

	total := Round2(sum)
	if math.IsInf(total, 0) {
		return entities.Quote{}, &QuoteError{Field: quoteTotalField, Reason: ReasonTotalTooLarge}
	}

	return entities.Quote{
		Currency: entities.DefaultCurrency,
		Items:    items,
		Total:    total,
		Notes:    strings.TrimSpace(form.Notes),
	}, nil
}

// parseAmount reads a non-negative decimal. Blank input is a valid zero.
// Values too large to round to cents are rejected.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	rounded := Round2(v)
	if math.IsInf(rounded, 0) {
		return 0, false
	}
	return rounded, true
}

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
