// Package status holds the error taxonomy shared by handlers and the
// article repository, and the JSON shape API errors are rendered with.
package status

// APIError is an error with an HTTP status attached. Handlers return it
// from API endpoints; utils.MakeAPIHandler writes it as a JSON body.
type APIError struct {
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
}

func (e APIError) Error() string {
	return e.Message
}
