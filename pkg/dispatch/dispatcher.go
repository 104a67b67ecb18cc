package dispatch

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"fapimcp/pkg/core"
)

// Dispatcher routes tool calls. It keeps no state between calls.
type Dispatcher struct {
	registry *Registry
	executor core.Executor
	logger   zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher over registry that runs accepted calls on executor.
func New(registry *Registry, executor core.Executor, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		executor: executor,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the tool table the dispatcher serves.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch validates args for the named tool and executes it.
// Rejected calls never reach the executor.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	logger := d.logger.With().
		Str("tool", name).
		Str("call_id", uuid.NewString()).
		Logger()
	start := time.Now()

	e, ok := d.registry.entries[name]
	if !ok {
		err := core.NewUnknownOperationError(name)
		logger.Warn().Err(err).Msg("tool call rejected")
		return nil, err
	}

	params, err := d.prepare(e, args, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("tool call rejected")
		return nil, err
	}

	result, err := d.executor.Execute(ctx, e.tool, params)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error().Err(err).Dur("elapsed", elapsed).Msg("tool call failed")
		return nil, err
	}

	logger.Info().Dur("elapsed", elapsed).Msg("tool call completed")
	return result, nil
}

// prepare filters, validates and completes the arguments of one call.
func (d *Dispatcher) prepare(e *entry, args map[string]any, logger zerolog.Logger) (core.Params, error) {
	tool := e.tool

	params := make(core.Params, len(args))
	var dropped []string
	for k, v := range args {
		if !e.declared[k] {
			dropped = append(dropped, k)
			continue
		}
		params[k] = v
	}
	if len(dropped) > 0 {
		slices.Sort(dropped)
		logger.Debug().Strs("dropped", dropped).Msg("ignoring undeclared arguments")
	}

	result, err := e.schema.Validate(gojsonschema.NewGoLoader(map[string]any(params.Present())))
	if err != nil {
		return nil, core.NewValidationError(tool.Name, core.ErrCodeInvalidArguments, fmt.Sprintf("validate arguments: %v", err))
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		slices.Sort(violations)
		return nil, core.NewValidationError(tool.Name, core.ErrCodeInvalidArguments, "invalid arguments", violations...)
	}

	for _, group := range tool.OneOf {
		if !slices.ContainsFunc(group, params.Has) {
			return nil, core.NewValidationError(tool.Name, core.ErrCodeMissingIdentifier,
				fmt.Sprintf("one of %s is required", strings.Join(group, ", ")))
		}
	}

	for _, p := range tool.Params {
		if p.Default != nil && !params.Has(p.Name) {
			params[p.Name] = p.Default
		}
	}
	if tool.Normalize != nil {
		tool.Normalize(params)
	}

	return params, nil
}
