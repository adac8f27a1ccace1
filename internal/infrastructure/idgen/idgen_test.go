package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var idPattern = regexp.MustCompile(`^ORD-[0-9a-z]+-[0-9a-z]{4}$`)

func TestOrderIDGenerator_Shape(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id := NewOrderIDGenerator().NewOrderID(at)

	if !idPattern.MatchString(id) {
		t.Fatalf("unexpected id shape %q", id)
	}
	parts := strings.Split(id, "-")
	millis, err := strconv.ParseInt(parts[1], 36, 64)
	if err != nil || millis != at.UnixMilli() {
		t.Fatalf("time component mismatch: %q", parts[1])
	}
}

func TestOrderIDGenerator_Distinct(t *testing.T) {
	gen := NewOrderIDGenerator()
	at := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		seen[gen.NewOrderID(at)] = struct{}{}
	}
	// 36^4 suffixes; a handful of collisions in 200 draws is still very unlikely.
	if len(seen) < 195 {
		t.Fatalf("too many collisions: %d distinct ids", len(seen))
	}
}
