package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "DUPLICATE_EMAIL"
	Details string `json:"details"` // Detailed error description
}

// Response is the envelope the error middleware writes for failed requests.
// It mirrors the success envelope of the response package.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
