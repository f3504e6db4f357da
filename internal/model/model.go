package model

// swagger:model ContactSubmission
type ContactSubmission struct {
	Email     string `json:"email" validate:"required"`
	Instagram string `json:"instagram"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// PhotoSubmission is a captured visitor photo held in memory for the duration
// of one request.
type PhotoSubmission struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Metadata describes the client that sent a submission.
type Metadata struct {
	Address   string
	UserAgent string
	Timestamp string
}

// NotificationResult is the Bot API reply envelope.
type NotificationResult struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// ClientInfo holds the raw request values metadata is derived from.
type ClientInfo struct {
	ForwardedFor string
	RemoteAddr   string
	UserAgent    string
}
