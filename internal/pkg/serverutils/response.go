package serverutils

type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

type APIError struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	// RequestId correlates the reply with the operational log entry.
	RequestId string `json:"request_id,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message, requestId string) APIError {
	return APIError{
		Success:   false,
		Code:      code,
		Message:   message,
		RequestId: requestId,
	}
}
