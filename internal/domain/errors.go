package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrLLMFailure is returned when the OpenAI API request fails
	ErrLLMFailure = errors.New("OpenAI API request failed")

	// ErrMalformedResponse is returned when the LLM completion does not
	// match the expected suggestions JSON shape
	ErrMalformedResponse = errors.New("malformed LLM response")

	// ErrUnknownTag is returned when a catalog tag has no entries
	ErrUnknownTag = errors.New("unknown catalog tag")
)
