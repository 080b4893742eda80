package stor

import (
	"errors"

	"gorm.io/gorm"

	"github.com/huddleapp/huddle/pkg/config"
)

// WithTxRetry runs fn in a transaction, retrying on failure. Sentinel
// errors are returned immediately: a duplicate name or a missing row won't
// change on a second attempt.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := config.GetIntKeyWithDefault("HUDDLE_TX_RETRY", 3)
	if retryCount < 3 {
		retryCount = 3
	}

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil || isSentinel(err) {
			return err
		}
	}

	return err
}

var sentinelErrs = []error{
	ErrDuplicateUser,
	ErrUserNotFound,
	ErrInvalidCredentials,
	ErrTeamNotFound,
	ErrTaskNotFound,
	ErrInvalidEnum,
}

func isSentinel(err error) bool {
	for _, sentinel := range sentinelErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
