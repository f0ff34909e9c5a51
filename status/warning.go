package status

import (
	"fmt"
	"net/http"
)

var (
	WarnInvalidRefreshCode        = fmt.Errorf("invalid refresh code")
	WarnInvalidRevalidationSecret = fmt.Errorf("invalid revalidation secret")
)

func WarningBadRequest(err error) APIError {
	return APIError{
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}

func WarningUnauthorized(err error) APIError {
	return APIError{
		Message:    err.Error(),
		StatusCode: http.StatusUnauthorized,
	}
}

func WarningForbidden(err error) APIError {
	return APIError{
		Message:    err.Error(),
		StatusCode: http.StatusForbidden,
	}
}
