package stores

import (
	"strconv"
	"strings"
	"time"
)

// Layout yang diterima untuk input startAt dari form (datetime-local dan variannya)
var startAtLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseGuestCount -> Konversi jumlah tamu dari text form ke int.
// Nilai non-numerik atau <= 0 ditolak sebagai ValidationError, tanpa default diam-diam.
func ParseGuestCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: "num_guests", Message: "must be a number"}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: "num_guests", Message: "must be a positive number"}
	}
	return n, nil
}

// ParseStartAt -> Konversi timestamp reservasi dari text form ke time.Time
func ParseStartAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "start_at", Message: "must be a valid date and time"}
}
