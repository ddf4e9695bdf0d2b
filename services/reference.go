package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReservationReference builds a reservation reference of the form
// RES-<epoch millis>-<8 char suffix>. Uniqueness is probabilistic: the suffix
// comes from UUID hex and collisions are treated as negligible, so no
// storage-level uniqueness check is performed.
func NewReservationReference() string {
	return fmt.Sprintf("RES-%d-%s", time.Now().UnixMilli(), randomSuffix(8))
}

// NewGroupBookingReference builds a group booking reference of the form
// GB-<yyyymmdd>-<4 char suffix>.
func NewGroupBookingReference() string {
	return fmt.Sprintf("GB-%s-%s", time.Now().Format("20060102"), randomSuffix(4))
}

func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(s[:n])
}
