package apperrors

// ErrorCode identifies an error category in API responses.
type ErrorCode string

const (
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodePersistenceFailed  ErrorCode = "PERSISTENCE_FAILED"
	CodeUploadFailed       ErrorCode = "UPLOAD_FAILED"
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
)
