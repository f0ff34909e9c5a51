package status

import (
	"fmt"
	"net/http"
)

var (
	ErrNotConfigured = fmt.Errorf("spreadsheet data source is not configured")
	ErrFetchFailed   = fmt.Errorf("failed to fetch articles from the spreadsheet")
	ErrParsingForm   = fmt.Errorf("failed to parse a form")
	ErrDecodingForm  = fmt.Errorf("failed to decode a form")
	ErrInvalidForm   = fmt.Errorf("failed to validate a request")

	ErrArticleNotFound  = fmt.Errorf("article not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
)

func ErrorNotFound(err error) APIError {
	return APIError{
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}

func ErrorInternalServerError(err error) APIError {
	return APIError{
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
