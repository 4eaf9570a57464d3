package arena

import "errors"

var (
	// ErrRequest marks transport failures and non-2xx responses.
	ErrRequest = errors.New("arena api request failed")
	// ErrInvalidJSON marks response bodies that cannot be decoded into a block.
	ErrInvalidJSON = errors.New("invalid json response")
)
