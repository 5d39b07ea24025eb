package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type key struct{}

var requestDataKey key

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData is filled in as a request moves through middleware and handlers.
// AccountID is whatever user_id the caller claimed; there is no token to verify it.
type RequestData struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
}

func (rd *RequestData) SetAccountID(id uuid.UUID) {
	if rd != nil {
		rd.AccountID = id
	}
}
