package errors

// ErrorCode identifies an error class in API responses.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED       ErrorCode = 0
	ErrorCode_HTTP_OK           ErrorCode = 200
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS   ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND        ErrorCode = 2003
	ErrorCode_AUTH_USER_ALREADY_EXISTS   ErrorCode = 2004
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 2005
	ErrorCode_AUTH_OAUTH_FAILED          ErrorCode = 2006

	ErrorCode_CALENDAR_SOURCE_NOT_FOUND    ErrorCode = 3000
	ErrorCode_CALENDAR_NOT_CONNECTED       ErrorCode = 3001
	ErrorCode_CALENDAR_INVALID_CREDENTIALS ErrorCode = 3002
	ErrorCode_CALENDAR_UPSTREAM_FAILED     ErrorCode = 3003
	ErrorCode_CALENDAR_PARSE_FAILED        ErrorCode = 3004

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 4001

	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = 5000
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 5001
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:       "UNSPECIFIED",
	ErrorCode_HTTP_OK:           "OK",
	ErrorCode_INTERNAL:          "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:  "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:         "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:    "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED: "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:   "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:         "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:   "INVALID_PAYLOAD",

	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:   "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN: "AUTH_INVALID_REFRESH_TOKEN",
	ErrorCode_AUTH_OAUTH_FAILED:          "AUTH_OAUTH_FAILED",

	ErrorCode_CALENDAR_SOURCE_NOT_FOUND:    "CALENDAR_SOURCE_NOT_FOUND",
	ErrorCode_CALENDAR_NOT_CONNECTED:       "CALENDAR_NOT_CONNECTED",
	ErrorCode_CALENDAR_INVALID_CREDENTIALS: "CALENDAR_INVALID_CREDENTIALS",
	ErrorCode_CALENDAR_UPSTREAM_FAILED:     "CALENDAR_UPSTREAM_FAILED",
	ErrorCode_CALENDAR_PARSE_FAILED:        "CALENDAR_PARSE_FAILED",

	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",

	ErrorCode_DB_CONNECTION_FAILED:  "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED: "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
