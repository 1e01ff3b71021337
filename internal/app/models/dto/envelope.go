package dto

// Envelope is the {success, data, message} wrapper every endpoint answers with.
type Envelope struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Job notification added successfully"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// OK wraps a payload.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Done reports a successful mutation.
func Done(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail reports an application-level failure whose message the portal shows verbatim.
func Fail(message string, detail *ErrorDetail) Envelope {
	return Envelope{Success: false, Message: message, Error: detail}
}

// CreatedResponse is the envelope for a create, carrying the new row id under a resource-specific key.
type CreatedResponse map[string]interface{}

// NewCreatedResponse builds {success:true, message, <idKey>: id}.
func NewCreatedResponse(message, idKey string, id int64) CreatedResponse {
	return CreatedResponse{
		"success": true,
		"message": message,
		idKey:     id,
	}
}
