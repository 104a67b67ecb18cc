package core

import "context"

// Executor performs one validated tool call against the trading API.
// Implementations sign and send the request and return the decoded JSON body.
type Executor interface {
	Execute(ctx context.Context, tool ToolSpec, params Params) (any, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, tool ToolSpec, params Params) (any, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, tool ToolSpec, params Params) (any, error) {
	return f(ctx, tool, params)
}
