package dto

// TermsStatusResponse reports whether the current session has accepted the
// terms of use.
type TermsStatusResponse struct {
	Success  bool `json:"success"`
	Accepted bool `json:"accepted"`
}

// ErrorResponse is the uniform failure payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
