package failure

import "time"

// ResultError is the constant result value of every error envelope.
const ResultError = "ERROR"

// Envelope is the uniform body of every error response.
type Envelope struct {
	Result    string    `json:"result"`
	Message   string    `json:"message"`
	ErrorCode Code      `json:"errorCode"`
	Details   []string  `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func newEnvelope(message string, code Code, details []string, at time.Time) Envelope {
	if len(details) == 0 {
		details = nil
	}

	return Envelope{
		Result:    ResultError,
		Message:   message,
		ErrorCode: code,
		Details:   details,
		Timestamp: at,
	}
}
