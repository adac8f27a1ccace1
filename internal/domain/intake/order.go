package intake

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"obsydia_retail/internal/domain/entities"
)

const (
	MaxNameLength     = 120
	MaxEmailLength    = 160
	MaxPhoneLength    = 40
	MaxAddressLength  = 200
	MaxLocationLength = 160
	MaxNotesLength    = 1000
)

// ErrorCode identifies one order form violation.
type ErrorCode string

const (
	CodeRequired ErrorCode = "required"
	CodePhone    ErrorCode = "phone"
	CodeAddress  ErrorCode = "address"
	CodeEmail    ErrorCode = "email"
	CodeServices ErrorCode = "services"
	CodeNotes    ErrorCode = "notes"
	CodeLength   ErrorCode = "length"
)

// Violations lists every detected code once, in detection order.
// Primary is the code shown to the customer.
type Violations []ErrorCode

func (v Violations) Empty() bool {
	return len(v) == 0
}

func (v Violations) Primary() ErrorCode {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func (v Violations) Has(code ErrorCode) bool {
	for _, c := range v {
		if c == code {
			return true
		}
	}
	return false
}

func (v *Violations) add(code ErrorCode) {
	if !v.Has(code) {
		*v = append(*v, code)
	}
}

// IDGenerator mints order ids.
type IDGenerator interface {
	NewOrderID(at time.Time) string
}

// OrderPayload is the untrusted intake form. Every field is optional and may
// hold any JSON value; wrong types are treated as empty.
type OrderPayload struct {
	FullName any
	Email    any
	Phone    any
	Address  any
	Location any
	Notes    any
	Services any
	Language any
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseOrder sanitizes and validates payload. All checks run; the returned
// order is always length-safe, even when violations are reported.
func ParseOrder(payload OrderPayload, ids IDGenerator, now time.Time) (entities.Order, Violations) {
	var violations Violations

	fullName := SanitizeText(payload.FullName, false)
	email := SanitizeText(payload.Email, false)
	phone := SanitizePhone(payload.Phone)
	address := SanitizeText(payload.Address, false)
	location := SanitizeText(payload.Location, false)
	notes := SanitizeText(payload.Notes, true)
	services := cleanServices(payload.Services)

	if fullName == "" || location == "" {
		violations.add(CodeRequired)
	}
	if phone == "" {
		violations.add(CodePhone)
	}
	if address == "" {
		violations.add(CodeAddress)
	}
	if email == "" || !emailPattern.MatchString(email) {
		violations.add(CodeEmail)
	}
	if len(services) == 0 {
		violations.add(CodeServices)
	}
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		violations.add(CodeNotes)
	}
	if tooLong(fullName, MaxNameLength) ||
		tooLong(email, MaxEmailLength) ||
		tooLong(phone, MaxPhoneLength) ||
		tooLong(address, MaxAddressLength) ||
		tooLong(location, MaxLocationLength) {
		violations.add(CodeLength)
	}

	language, _ := payload.Language.(string)

	order := entities.Order{
		ID:        ids.NewOrderID(now),
		FullName:  truncate(fullName, MaxNameLength),
		Email:     truncate(email, MaxEmailLength),
		Phone:     truncate(phone, MaxPhoneLength),
		Address:   truncate(address, MaxAddressLength),
		Location:  truncate(location, MaxLocationLength),
		Notes:     truncate(notes, MaxNotesLength),
		Services:  services,
		Language:  entities.NormalizeLanguage(strings.TrimSpace(language)),
		Status:    entities.OrderStatusNew,
		CreatedAt: now.UTC(),
	}
	return order, violations
}

// cleanServices keeps catalog values only, first occurrence wins.
func cleanServices(value any) []string {
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return []string{}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		if !entities.IsCatalogService(s) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
