package llm

import "context"

type contextKey string

const operationKey contextKey = "operation"

// WithOperation tags the context with the logical operation driving this
// generation call (e.g. "init_world"). The service uses it as the span name.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromContext returns the tagged operation, or "".
func OperationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}
