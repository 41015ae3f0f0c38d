package cipher

import "errors"

var (
	ERR_EMPTY_KEY          = errors.New("Key must not be empty")
	ERR_INVALID_LENGTH     = errors.New("Input length must be a multiple of 4")
	ERR_INVALID_CHARACTER  = errors.New("Input contains characters outside the alphabet")
	ERR_PAYLOAD_INCOMPLETE = errors.New("Payload incomplete")
	ERR_PAYLOAD_TOO_LARGE  = errors.New("Payload too large")
)
