package idgen

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 4

// OrderIDGenerator mints ids shaped like ORD-<base36 unix millis>-<4 base36 chars>.
// The suffix comes from a random UUID; ids are unique enough for intake
// volumes but are not a security token.
type OrderIDGenerator struct{}

func NewOrderIDGenerator() OrderIDGenerator {
	return OrderIDGenerator{}
}

func (OrderIDGenerator) NewOrderID(at time.Time) string {
	u := uuid.New()
	suffix := strconv.FormatUint(uint64(binary.BigEndian.Uint32(u[:4])), 36)
	if len(suffix) < suffixLen {
		suffix = strings.Repeat("0", suffixLen-len(suffix)) + suffix
	}
	suffix = suffix[len(suffix)-suffixLen:]

	return "ORD-" + strconv.FormatInt(at.UnixMilli(), 36) + "-" + suffix
}
