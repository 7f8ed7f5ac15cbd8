package middleware

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logging logs every unary call with its method, status code and
// duration. Client-side failures log at warn, server faults at error.
func Logging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		duration := time.Since(start).Milliseconds()

		if err == nil {
			slog.Info("RPC ok",
				"method", info.FullMethod,
				"subject", Subject(ctx),
				"duration_ms", duration,
			)
			return resp, nil
		}

		st, _ := status.FromError(err)
		level := slog.LevelWarn
		switch st.Code() {
		case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
			level = slog.LevelError
		}
		slog.Log(ctx, level, "RPC error",
			"method", info.FullMethod,
			"code", st.Code().String(),
			"error", st.Message(),
			"subject", Subject(ctx),
			"duration_ms", duration,
		)
		return resp, err
	}
}
