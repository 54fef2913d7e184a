package model

// MessageResponse is the success envelope: {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewMessageResponse creates a success envelope
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
