package domain

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedValidation     = "validation failed"
	MessageSuccessHealthCheck   = "pong"
)
