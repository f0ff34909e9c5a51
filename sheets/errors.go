package sheets

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrUnauthorized indicates invalid or expired service-account credentials.
	ErrUnauthorized = errors.New("sheets: unauthorized (invalid credentials)")

	// ErrForbidden indicates the service account cannot read the spreadsheet.
	ErrForbidden = errors.New("sheets: forbidden (spreadsheet not shared with service account)")

	// ErrNotFound indicates the spreadsheet or tab does not exist.
	ErrNotFound = errors.New("sheets: spreadsheet not found")

	// ErrRateLimited indicates the Sheets API rate limit was exceeded.
	ErrRateLimited = errors.New("sheets: rate limit exceeded")
)

// WrapError converts a Google API error to a more specific error type.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return err
	}
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}
