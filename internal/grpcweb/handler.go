package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"workshop-scheduler/internal/handler"
)

const contentType = "application/grpc-web+" + handler.CodecName

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC via TCP.
// Message bytes are forwarded untouched; the server decodes them with
// the JSON codec.
type Bridge struct {
	conn *grpc.ClientConn
}

// New dials the gRPC server at addr (e.g. "localhost:50051"). Extra
// dial options are appended after the insecure transport credentials.
func New(addr string, opts ...grpc.DialOption) (*Bridge, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	return &Bridge{conn: conn}, nil
}

func (b *Bridge) Close() { b.conn.Close() }

// Handler returns an http.Handler that translates gRPC-Web → gRPC.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, Authorization, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), contentType) {
			http.Error(w, "expected "+contentType, http.StatusUnsupportedMediaType)
			return
		}

		slog.Debug("grpc-web forward", "path", r.URL.Path)
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	if len(body) < 5 {
		writeError(w, codes.InvalidArgument, "body too short")
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + message
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		writeError(w, codes.InvalidArgument, "incomplete frame")
		return
	}
	payload := body[5 : 5+msgLen]

	// forward metadata
	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, _ := status.FromError(err)
		slog.Debug("grpc-web error", "path", r.URL.Path, "code", st.Code().String(), "error", st.Message())
		writeError(w, st.Code(), st.Message())
		return
	}

	writeSuccess(w, resp.data)
}

// rawMsg wraps already-encoded message bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal. It carries
// the JSON codec's name so the server picks the matching decoder.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return handler.CodecName }

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	copy(f[5:], data)
	return f
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, encodeMessage(msg))
	w.Write(frame(0x80, []byte(trailer)))
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(frame(0x00, data))
	w.Write(frame(0x80, []byte("grpc-status:0\r\n")))
}

// encodeMessage percent-encodes grpc-message the way the gRPC HTTP/2
// protocol requires: printable ASCII except '%' passes through.
func encodeMessage(msg string) string {
	var sb strings.Builder
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c >= 0x20 && c <= 0x7e && c != '%' {
			sb.WriteByte(c)
			continue
		}
		fmt.Fprintf(&sb, "%%%02X", c)
	}
	return sb.String()
}
