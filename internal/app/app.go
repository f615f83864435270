package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"estate_erp/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ChangeCaptureHealthService is the gRPC health service name that follows the audit pipeline.
const ChangeCaptureHealthService = "change_capture"

// HttpHandlerRegister defines a function that registers custom HTTP handlers.
type HttpHandlerRegister func(mux *http.ServeMux)

// App serves the HTTP API, gRPC health and metrics on one port, and runs the background workers.
type App struct {
	httpServer  *http.Server
	gRPCServer  *grpc.Server
	healthcheck *health.Server
	workers     []worker.Worker
	port        int
	logger      *zap.Logger
}

// NewApp creates and configures a new application server.
func NewApp(port int, logger *zap.Logger, register HttpHandlerRegister, unaryInterceptors []grpc.UnaryServerInterceptor, workers []worker.Worker) (*App, func(), error) {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(unaryInterceptors...))

	healthcheck := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthcheck)
	reflection.Register(s)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if register != nil {
		register(mux)
	}

	a := &App{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           grpcHandlerFunc(s, mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
		gRPCServer:  s,
		healthcheck: healthcheck,
		workers:     workers,
		port:        port,
		logger:      logger,
	}
	a.watchWorkers()

	cleanup := func() {
		a.logger.Info("Cleanup: stopping server...")
		a.healthcheck.Shutdown()
		a.gRPCServer.Stop()
		a.logger.Info("Cleanup finished.")
	}
	return a, cleanup, nil
}

// watchWorkers mirrors worker lifecycle states into the gRPC health server.
func (a *App) watchWorkers() {
	for _, w := range a.workers {
		switch w := w.(type) {
		case *worker.ChangeCapture:
			a.healthcheck.SetServingStatus(ChangeCaptureHealthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			w.OnStateChange(func(s worker.PipelineState) {
				status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
				if s == worker.StateRunning {
					status = grpc_health_v1.HealthCheckResponse_SERVING
				}
				a.healthcheck.SetServingStatus(ChangeCaptureHealthService, status)
			})
		}
	}
}

// Run serves until ctx is cancelled, then shuts the server down and waits for the workers.
func (a *App) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.port, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	for _, w := range a.workers {
		g.Go(func() error {
			w.Start(gCtx)
			return nil
		})
	}

	g.Go(func() error {
		a.logger.Info("server started", zap.Int("port", a.port))
		if err := a.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("HTTP server shutdown failed", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

func grpcHandlerFunc(grpcServer *grpc.Server, otherHandler http.Handler) http.Handler {
	return h2c.NewHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.Contains(r.Header.Get("Content-Type"), "application/grpc") {
			grpcServer.ServeHTTP(w, r)
		} else {
			otherHandler.ServeHTTP(w, r)
		}
	}), &http2.Server{})
}
