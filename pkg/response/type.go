package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error details from callers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode marks unexpected internal failures.
	InternalServerErrorCode = 500

	// BadGatewayErrorCode marks upstream provider failures.
	BadGatewayErrorCode = 502
)
