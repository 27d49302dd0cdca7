package util

import (
	"crypto/md5"
	"fmt"

	"github.com/apex/log"
)

// AnonAlias derives a stable display alias for a user that never set a
// profile name. The alias depends only on the user id, so repeated
// queries show the same label.
func AnonAlias(userID string) string {
	if userID == "" {
		log.Errorf("Empty user ID %q, this must not happen.", userID)
		return "Citizen"
	}
	sum := md5.Sum([]byte(userID))
	return fmt.Sprintf("Citizen-%x", sum[:3])
}
