package core

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

type OptionKey string

const (
	ProcessOptionKey   OptionKey = "process_options"
	WorkerOptionKey    OptionKey = "worker_options"
	LoggerOptionKey    OptionKey = "logger_options"
	RateLimitOptionKey OptionKey = "rate_limit_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	ProcessRemaining bool
}

// RateLimitOptions holds a limiter shared by every line of a pipeline
// started with the context.
type RateLimitOptions struct {
	Limiter *rate.Limiter
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	if maxWorkers < 1 {
		panic("max workers must be 1 or greater")
	}
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// WithRateLimit makes every locomotive wait for a token before running its
// engine on the next input. limit is expressed in inputs per second.
func WithRateLimit(ctx context.Context, limit rate.Limit, burst int) context.Context {
	if limit < 0 {
		panic("rate limit must be 0 or greater")
	}
	if burst < 1 {
		panic("rate limit burst must be 1 or greater")
	}
	return context.WithValue(ctx, RateLimitOptionKey, RateLimitOptions{Limiter: rate.NewLimiter(limit, burst)})
}

// Every converts an interval into a limit, for instance Every(100 * time.Millisecond)
// yields 10 inputs per second
func Every(interval time.Duration) rate.Limit {
	return rate.Every(interval)
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// GetLogger returns the logger stored in ctx or a logger that discards everything.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if ok && logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

func GetRateLimiter(ctx context.Context) (*rate.Limiter, bool) {
	options, ok := ctx.Value(RateLimitOptionKey).(RateLimitOptions)
	if ok && options.Limiter != nil {
		return options.Limiter, true
	}
	return nil, false
}
