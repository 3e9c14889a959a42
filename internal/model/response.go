package model

// APIResponse is the common JSON envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Detail  string      `json:"detail,omitempty"`
}

// NewSuccessResponse builds a success envelope with an optional payload.
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope. detail carries field-level
// context and may be empty; internal error text must not be placed here.
func NewErrorResponse(message, detail string) APIResponse {
	return APIResponse{Success: false, Message: message, Detail: detail}
}
