package ports

import "context"

// HealthChecker is one dependency reported by GET /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// PingCheck adapts a ping function, such as (*pgxpool.Pool).Ping, to HealthChecker.
type PingCheck struct {
	Dependency string
	PingFunc   func(ctx context.Context) error
}

func (p PingCheck) Ping(ctx context.Context) error { return p.PingFunc(ctx) }

func (p PingCheck) Name() string { return p.Dependency }
