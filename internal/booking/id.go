package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateBookingID produces a human-typeable identifier: "BK", the last six
// digits of the current epoch-millisecond timestamp, then a two-digit random
// suffix. Roughly chronological, not collision-proof; TryAdd regenerates on
// the rare collision with a stored id.
func GenerateBookingID() string {
	millis := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("BK%06d%02d", millis, rand.Intn(100))
}
