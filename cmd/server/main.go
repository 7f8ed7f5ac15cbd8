package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"workshop-scheduler/internal/auth"
	"workshop-scheduler/internal/config"
	gweb "workshop-scheduler/internal/grpcweb"
	"workshop-scheduler/internal/handler"
	"workshop-scheduler/internal/logging"
	"workshop-scheduler/internal/metrics"
	"workshop-scheduler/internal/middleware"
	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/store"
)

func main() {
	logger := logging.Setup()
	if err := run(os.Args[1:]); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	// token <subject> prints a bearer token for clients and exits
	if len(args) > 0 && args[0] == "token" {
		if len(args) != 2 {
			return errors.New("usage: server token <subject>")
		}
		tok, err := auth.MakeToken(args[1], cfg.JWTSecret, auth.DefaultTTL)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// storage
	kv, err := store.Open(ctx, cfg.Driver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer kv.Close()
	slog.Info("storage ready", "driver", cfg.Driver, "key", cfg.StorageKey)

	st := store.New[model.Appointment](kv, cfg.StorageKey, store.WithErrorHook(m.StorageError))
	st.Load(ctx)

	loc := cfg.Location()
	h := handler.New(st, func() time.Time { return time.Now().In(loc) })

	// grpc server
	rl := middleware.NewRateLimiter(5, 10)
	defer rl.Close()
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			m.UnaryInterceptor(),
			middleware.RateLimit(rl,
				handler.FullMethod("CreateAppointment"),
				handler.FullMethod("UpdateAppointment"),
				handler.FullMethod("DeleteAppointment"),
			),
			middleware.Auth(cfg.JWTSecret),
			middleware.Logging(),
		),
	)
	handler.Register(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		slog.Info("grpc listening", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			slog.Error("grpc serve", "error", err)
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:" + cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	defer bridge.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.Handle("/", bridge.Handler())

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("grpc-web listening", "port", cfg.WebPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http serve", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.GracefulStop()
	return httpSrv.Shutdown(shutdownCtx)
}
