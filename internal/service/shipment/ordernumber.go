package shipment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newOrderNumber builds a human-readable order number: ORD-<date>-<8 hex>.
// The random suffix comes from a v4 UUID, so collisions within a day are as
// unlikely as UUID prefix collisions; the unique index on order_number is
// the backstop.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
