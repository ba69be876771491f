package services

import (
	"fmt"
	"net/http"

	"github.com/nvelez/clientbridge-backend/internal/apierr"
)

// stateConflict marks failures where the record exists but its current
// status forbids the operation, so the HTTP layer answers 409 instead
// of the generic 400.
func stateConflict(format string, args ...any) error {
	return apierr.New(http.StatusConflict, "state_conflict", fmt.Errorf(format, args...))
}
