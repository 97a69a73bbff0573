package errors

// Response is the envelope rendered for every failed request
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "UNKNOWN_STATION"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}
