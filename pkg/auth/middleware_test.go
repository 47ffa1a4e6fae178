package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func okHandler(ctx context.Context, _ interface{}) (interface{}, error) {
	claims, _ := ClaimsFromContext(ctx)
	return claims, nil
}

func TestUnaryAuthInterceptor(t *testing.T) {
	v := newHSVerifier(t)
	interceptor := UnaryAuthInterceptor(v, []string{"/grpc.health.v1.Health/Check"})
	valid := signHS256(t, testClaims("iband-test", time.Minute), testSecret)

	tests := []struct {
		name     string
		method   string
		md       metadata.MD
		wantCode codes.Code
	}{
		{"skipped method", "/grpc.health.v1.Health/Check", nil, codes.OK},
		{"no metadata", "/svc/Op", nil, codes.Unauthenticated},
		{"no header", "/svc/Op", metadata.Pairs("x", "y"), codes.Unauthenticated},
		{"bad token", "/svc/Op", metadata.Pairs("authorization", "Bearer nope"), codes.Unauthenticated},
		{"valid bearer", "/svc/Op", metadata.Pairs("authorization", "Bearer "+valid), codes.OK},
		{"valid raw", "/svc/Op", metadata.Pairs("authorization", valid), codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, okHandler)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestUnaryAuthInterceptor_AttachesClaims(t *testing.T) {
	v := newHSVerifier(t)
	interceptor := UnaryAuthInterceptor(v, nil)
	token := signHS256(t, testClaims("iband-test", time.Minute), testSecret)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, okHandler)
	require.NoError(t, err)
	claims, ok := resp.(*Claims)
	require.True(t, ok)
	assert.Equal(t, "client-1", claims.ClientID)
}

func TestHTTPMiddleware(t *testing.T) {
	v := newHSVerifier(t)
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := HTTPMiddleware(v, []string{"/healthz"})(next)
	valid := signHS256(t, testClaims("iband-test", time.Minute), testSecret)

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{"skipped path", "/healthz", "", http.StatusNoContent},
		{"missing header", "/v1/iban/validate", "", http.StatusUnauthorized},
		{"invalid token", "/v1/iban/validate", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "/v1/iban/validate", "Bearer " + valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
	require.NotNil(t, seen)
	assert.Equal(t, "client-1", seen.ClientID)
}
