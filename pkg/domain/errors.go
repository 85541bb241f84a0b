package domain

import "errors"

var (
	// ErrEmptyMessage is returned when empty text is appended to a conversation.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrConnection covers network failures and timeouts talking to the GPT API.
	ErrConnection = errors.New("gpt api connection failed")

	// ErrEmptyResponse means the API answered without choices or content.
	// Callers treat it the same as a connection failure.
	ErrEmptyResponse = errors.New("empty response from gpt api")

	// ErrResource means a prompt or asset file is missing or empty.
	ErrResource = errors.New("resource unavailable")
)
