package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"workshop-scheduler/internal/auth"
)

type ctxKey string

const SubjectKey ctxKey = "sub"

// Subject returns the authenticated token subject, or "" before auth.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)
	return s
}

// Auth requires a valid bearer token on every call except the methods
// listed in open.
func Auth(secret string, open ...string) grpc.UnaryServerInterceptor {
	skip := make(map[string]bool, len(open))
	for _, m := range open {
		skip[m] = true
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if skip[info.FullMethod] {
			return next(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		// token from Authorization: Bearer <jwt>
		raw := ""
		if vals := md.Get("authorization"); len(vals) > 0 {
			raw = strings.TrimPrefix(vals[0], "Bearer ")
		}
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}

		ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
		return next(ctx, req)
	}
}
