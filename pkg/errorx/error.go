package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var xerr Error
	if errors.As(err, &xerr) {
		return xerr.Code == code
	}

	return false
}
