// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"errors"
	"fmt"
)

// ErrForbidden is matched by every [DeniedError].
var ErrForbidden = errors.New("forbidden")

// DeniedError is returned when [Authorize] refuses an operation.
type DeniedError struct {
	Reason  Reason
	UserID  int64
	Have    Tier
	MinTier Tier
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("forbidden: %s (user %d has %s, needs %s)", e.Reason, e.UserID, e.Have, e.MinTier)
}

// Is makes errors.Is(err, ErrForbidden) true for any DeniedError.
func (e *DeniedError) Is(target error) bool {
	return target == ErrForbidden
}
