package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"workshop-scheduler/internal/auth"
)

const secret = "test-secret"

func info(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

// echoSubject is a handler that returns the authenticated subject.
func echoSubject(ctx context.Context, req any) (any, error) {
	return Subject(ctx), nil
}

func withBearer(tok string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+tok)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAuth(t *testing.T) {
	good, _ := auth.MakeToken("taller-1", secret, time.Hour)
	bad, _ := auth.MakeToken("taller-1", "wrong", time.Hour)
	interceptor := Auth(secret, "/open/Method")

	tests := []struct {
		name    string
		ctx     context.Context
		method  string
		want    codes.Code
		subject string
	}{
		{"valid token", withBearer(good), "/svc/Create", codes.OK, "taller-1"},
		{"wrong secret", withBearer(bad), "/svc/Create", codes.Unauthenticated, ""},
		{"empty bearer", withBearer(""), "/svc/Create", codes.Unauthenticated, ""},
		{"no metadata", context.Background(), "/svc/Create", codes.Unauthenticated, ""},
		{"open method", context.Background(), "/open/Method", codes.OK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := interceptor(tt.ctx, nil, info(tt.method), echoSubject)
			if status.Code(err) != tt.want {
				t.Fatalf("code = %v, want %v", status.Code(err), tt.want)
			}
			if err == nil && resp.(string) != tt.subject {
				t.Errorf("subject = %q, want %q", resp, tt.subject)
			}
		})
	}
}

func peerCtx(addr string) context.Context {
	tcp, _ := net.ResolveTCPAddr("tcp", addr)
	return peer.NewContext(context.Background(), &peer.Peer{Addr: tcp})
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Close()
	interceptor := RateLimit(rl, "/svc/Create")
	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	a := peerCtx("10.0.0.1:5000")
	for i := range 2 {
		if _, err := interceptor(a, nil, info("/svc/Create"), ok); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if _, err := interceptor(a, nil, info("/svc/Create"), ok); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("third call: %v, want ResourceExhausted", err)
	}

	// other peers have their own bucket
	if _, err := interceptor(peerCtx("10.0.0.2:5000"), nil, info("/svc/Create"), ok); err != nil {
		t.Errorf("second peer limited: %v", err)
	}
	// unlisted methods are never limited
	for range 5 {
		if _, err := interceptor(a, nil, info("/svc/List"), ok); err != nil {
			t.Fatalf("unlisted method limited: %v", err)
		}
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()
	rl.get("a")
	rl.get("b")

	rl.mu.Lock()
	rl.clients["a"].seen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.sweep(time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.clients["a"]; ok {
		t.Error("idle client kept")
	}
	if _, ok := rl.clients["b"]; !ok {
		t.Error("active client swept")
	}
}

func TestLoggingPassesThrough(t *testing.T) {
	interceptor := Logging()
	want := status.Error(codes.NotFound, "not found")
	_, err := interceptor(context.Background(), nil, info("/svc/Get"), func(ctx context.Context, req any) (any, error) {
		return nil, want
	})
	if err != want {
		t.Errorf("err = %v, want %v", err, want)
	}
	resp, err := interceptor(context.Background(), nil, info("/svc/Get"), func(ctx context.Context, req any) (any, error) {
		return 42, nil
	})
	if err != nil || resp.(int) != 42 {
		t.Errorf("resp %v err %v", resp, err)
	}
}
