// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and travel in the `code` field of every
// ErrorResponse next to a human-readable message. Clients branch on the code;
// the message is safe to show to customers.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "missing_field",
//	  "message": "Missing required field: mobile"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Submission-specific:
	ErrCodeMissingField    = "missing_field"
	ErrCodeInvalidQuantity = "invalid_quantity"
	ErrCodeCreateFailed    = "create_failed"
	ErrCodeListFailed      = "list_failed"
)
