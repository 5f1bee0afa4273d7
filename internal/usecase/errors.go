package usecase

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTenantID        = errors.New("invalid tenant id")
	ErrConcurrentModification = errors.New("concurrent modification, retry")
)

// maxCASAttempts bounds the re-read/re-validate loop after a lost conditional write.
const maxCASAttempts = 3

func utcNow() time.Time {
	return time.Now().UTC()
}

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
