package errordata

import (
	"context"
)

type key struct{}

var errorDataKey key

// ErrorData records the user-facing error of a request so the request logger
// can report it after the handler returned.
type ErrorData struct {
	Message string
	Status  int
}

func WithErrorData(ctx context.Context) context.Context {
	ed := &ErrorData{Message: ""}
	return context.WithValue(ctx, errorDataKey, ed)
}

func GetErrorData(ctx context.Context) *ErrorData {
	val := ctx.Value(errorDataKey)
	ed, ok := val.(*ErrorData)
	if !ok {
		return nil
	}
	return ed
}

func (ed *ErrorData) SetMessage(msg string) {
	ed.Message = msg
}

func (ed *ErrorData) SetError(status int, err error) {
	ed.Status = status
	ed.Message = UserMessage(err)
}

func (ed *ErrorData) HasMessage() bool {
	return ed.Message != ""
}
