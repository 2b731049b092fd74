package hotel

import "context"

type contextKey string

const operationIDKey contextKey = "operationID"

func NewContextWithOperationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, operationIDKey, id)
}

func OperationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(operationIDKey).(string)

	return id, ok
}
