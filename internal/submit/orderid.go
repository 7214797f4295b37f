package submit

import (
	"strconv"
	"time"
)

// OrderIDPrefix starts every client-generated confirmation id.
const OrderIDPrefix = "AQB-"

// GenerateOrderID returns "AQB-" followed by the last eight digits of the
// millisecond Unix timestamp of now. Two submissions within the same
// millisecond (or 10^8 ms apart) share an id; the id is cosmetic.
func GenerateOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return OrderIDPrefix + ms
}
