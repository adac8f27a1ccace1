package repository

import (
	"sort"
	"strconv"
	"time"

	"obsydia_retail/internal/domain/entities"
)

// timeLayout is fixed width so stored strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts whatever a driver hands back for a timestamp column.
func parseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	}
	return time.Time{}, false
}

func parseTimeString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sortNewestFirst orders by created_at descending, breaking ties by id so
// the listing is stable.
func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// quoted returns a copy of o with q attached, as every store does on SaveQuote.
func quoted(o entities.Order, q entities.Quote, sentAt time.Time) entities.Order {
	sentAt = sentAt.UTC()
	o.Status = entities.OrderStatusQuoted
	o.Quote = &q
	o.QuoteSentAt = &sentAt
	return o
}
