// Package grpcserver exposes the standard gRPC health service so orchestrators
// can probe the API and its backing stores.
package grpcserver

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
)

// DefaultProbeInterval is how often dependency probes run.
const DefaultProbeInterval = 15 * time.Second

// Probe checks one dependency.
type Probe func(ctx context.Context) error

// Server serves grpc.health.v1.Health. The empty service name reflects all probes.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	probes     map[string]Probe
	interval   time.Duration
}

// Opt configures a Server.
type Opt func(*Server)

// WithProbe registers a named dependency check.
func WithProbe(name string, p Probe) Opt {
	return func(s *Server) {
		s.probes[name] = p
	}
}

// WithInterval overrides DefaultProbeInterval.
func WithInterval(d time.Duration) Opt {
	return func(s *Server) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New builds a server on lis.
func New(lis net.Listener, opts ...Opt) *Server {
	s := &Server{
		grpcServer: grpc.NewServer(),
		health:     health.NewServer(),
		listener:   lis,
		probes:     make(map[string]Probe),
		interval:   DefaultProbeInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	return s
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.probe(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infow("gRPC health service listening", "address", s.listener.Addr().String())
		errCh <- s.grpcServer.Serve(s.listener)
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			s.grpcServer.GracefulStop()
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

// probe runs every check and publishes per-service and overall status.
func (s *Server) probe(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for name, p := range s.probes {
		pctx, cancel := context.WithTimeout(ctx, s.interval/2)
		err := p(pctx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			logger.Log.Warnw("health probe failed", "probe", name, "err", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
}
