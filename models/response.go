package models

// APIResponse is the uniform response envelope. Clients branch on Success,
// not solely on the HTTP status.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func NewMessageResponse(success bool, message string) APIResponse {
	return APIResponse{
		Success: success,
		Message: message,
	}
}

func NewDataResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func NewListResponse(data interface{}, count int) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	}
}

func NewErrorResponse(message string, detail interface{}) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Error:   detail,
	}
}
