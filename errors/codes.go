package errors

// ErrorCode identifies an error class in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 200
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_CONFLICT          ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1006

	// Captions
	ErrorCode_CAPTION_FETCH_FAILED ErrorCode = 2000
	ErrorCode_CAPTION_PARSE_FAILED ErrorCode = 2001
	ErrorCode_CAPTION_NOT_FOUND    ErrorCode = 2002
	ErrorCode_CAPTIONS_UNAVAILABLE ErrorCode = 2003

	// Transcript sessions
	ErrorCode_SESSION_NOT_FOUND   ErrorCode = 3000
	ErrorCode_SESSION_NOT_READY   ErrorCode = 3001
	ErrorCode_SESSION_LOAD_FAILED ErrorCode = 3002

	// Export
	ErrorCode_EXPORT_IN_PROGRESS ErrorCode = 4000
	ErrorCode_EXPORT_FAILED      ErrorCode = 4001
	ErrorCode_EXPORT_UNSUPPORTED ErrorCode = 4002

	// Payments
	ErrorCode_PAYMENT_FAILED ErrorCode = 5000

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 6000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_CONFLICT:                   "CONFLICT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_CAPTION_FETCH_FAILED:       "CAPTION_FETCH_FAILED",
	ErrorCode_CAPTION_PARSE_FAILED:       "CAPTION_PARSE_FAILED",
	ErrorCode_CAPTION_NOT_FOUND:          "CAPTION_NOT_FOUND",
	ErrorCode_CAPTIONS_UNAVAILABLE:       "CAPTIONS_UNAVAILABLE",
	ErrorCode_SESSION_NOT_FOUND:          "SESSION_NOT_FOUND",
	ErrorCode_SESSION_NOT_READY:          "SESSION_NOT_READY",
	ErrorCode_SESSION_LOAD_FAILED:        "SESSION_LOAD_FAILED",
	ErrorCode_EXPORT_IN_PROGRESS:         "EXPORT_IN_PROGRESS",
	ErrorCode_EXPORT_FAILED:              "EXPORT_FAILED",
	ErrorCode_EXPORT_UNSUPPORTED:         "EXPORT_UNSUPPORTED",
	ErrorCode_PAYMENT_FAILED:             "PAYMENT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
