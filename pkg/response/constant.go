package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation failed"

	InternalServerErrorCode = 500

	DefaultStackTraceDepth = 32
	DiscordMaxMessageLen   = 1900

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
