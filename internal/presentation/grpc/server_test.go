package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ktp-forked-repos/ibantools/internal/application/usecase"
	"github.com/ktp-forked-repos/ibantools/pkg/auth"
	"github.com/ktp-forked-repos/ibantools/pkg/iban"
	"github.com/ktp-forked-repos/ibantools/pkg/testutil"
	"github.com/ktp-forked-repos/ibantools/pkg/tlsutil"
)

const testSecret = "grpc-test-secret"

type testEnv struct {
	client *IdentifierServiceClient
	conn   *grpclib.ClientConn
	logs   *bytes.Buffer
}

func startServer(t *testing.T, opts ServerOptions) *testEnv {
	t.Helper()
	return startServerWithDial(t, opts, grpclib.WithTransportCredentials(insecure.NewCredentials()))
}

func startServerWithDial(t *testing.T, opts ServerOptions, dialOpts ...grpclib.DialOption) *testEnv {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	audit := usecase.NewAudit(nil, nil, "", logger)
	srv := NewServer(NewHandler(usecase.NewSet(audit), logger), logger, 0, opts)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialOpts = append(dialOpts, grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	conn, err := grpclib.NewClient("passthrough:///bufnet", dialOpts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{client: NewIdentifierServiceClient(conn), conn: conn, logs: logs}
}

func TestServer_ValidateIBAN(t *testing.T) {
	env := startServer(t, ServerOptions{})
	ctx := context.Background()

	resp, err := env.client.ValidateIBAN(ctx, &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, "NL", resp.CountryCode)

	resp, err = env.client.ValidateIBAN(ctx, &ValidateIBANRequest{IBAN: testutil.InvalidChecksumIBAN})
	require.NoError(t, err, "an invalid IBAN is not an RPC error")
	assert.False(t, resp.Valid)
	assert.Equal(t, usecase.ReasonInvalidChecksum, resp.Reason)

	assert.Contains(t, env.logs.String(), "/"+ServiceName+"/ValidateIBAN")
}

func TestServer_ExtractIBAN(t *testing.T) {
	env := startServer(t, ServerOptions{})

	resp, err := env.client.ExtractIBAN(context.Background(), &ExtractIBANRequest{IBAN: "gb29 nwbk 6016 1331 9268 19"})
	require.NoError(t, err)
	require.True(t, resp.Valid)
	require.NotNil(t, resp.Details)
	assert.Equal(t, "GB29NWBK60161331926819", resp.Details.IBAN)
	assert.Equal(t, "NWBK60161331926819", resp.Details.BBAN)
	assert.Equal(t, "29", resp.Details.CheckDigits)
}

func TestServer_ComposeIBAN(t *testing.T) {
	env := startServer(t, ServerOptions{})
	ctx := context.Background()

	resp, err := env.client.ComposeIBAN(ctx, &ComposeIBANRequest{CountryCode: "NL", BBAN: "ABNA0417164314"})
	require.NoError(t, err)
	assert.True(t, resp.Composed)
	assert.Equal(t, testutil.ValidIBAN, resp.IBAN)

	resp, err = env.client.ComposeIBAN(ctx, &ComposeIBANRequest{CountryCode: "US", BBAN: "123"})
	require.NoError(t, err)
	assert.False(t, resp.Composed)
	assert.Empty(t, resp.IBAN)
	assert.Equal(t, usecase.ReasonNotIBANCountry, resp.Reason)
}

func TestServer_FormatAndBBAN(t *testing.T) {
	env := startServer(t, ServerOptions{})
	ctx := context.Background()
	sep := "."

	f, err := env.client.FormatIBAN(ctx, &FormatIBANRequest{IBAN: testutil.ValidIBAN, Separator: &sep})
	require.NoError(t, err)
	assert.Equal(t, "NL04.ABNA.0417.1643.14", f.Friendly)
	assert.Equal(t, testutil.ValidIBAN, f.Electronic)

	b, err := env.client.ValidateBBAN(ctx, &ValidateBBANRequest{BBAN: "ABNA0417164314", CountryCode: "NL"})
	require.NoError(t, err)
	assert.True(t, b.Valid)
}

func TestServer_BIC(t *testing.T) {
	env := startServer(t, ServerOptions{})
	ctx := context.Background()

	v, err := env.client.ValidateBIC(ctx, &ValidateBICRequest{BIC: testutil.ValidBIC11})
	require.NoError(t, err)
	assert.True(t, v.Valid)

	e, err := env.client.ExtractBIC(ctx, &ValidateBICRequest{BIC: testutil.ValidBIC})
	require.NoError(t, err)
	require.NotNil(t, e.Details)
	assert.Equal(t, iban.PrimaryOfficeBranch, e.Details.BranchCode)
}

func TestServer_Countries(t *testing.T) {
	env := startServer(t, ServerOptions{})
	ctx := context.Background()

	list, err := env.client.ListCountries(ctx, &ListCountriesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(iban.Countries().Len()), list.Total)

	got, err := env.client.GetCountry(ctx, &GetCountryRequest{Code: "DE"})
	require.NoError(t, err)
	require.NotNil(t, got.Country)
	assert.Equal(t, int32(22), got.Country.IBANLength)

	_, err = env.client.GetCountry(ctx, &GetCountryRequest{Code: "QQ"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.client.GetCountry(ctx, &GetCountryRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Health(t *testing.T) {
	env := startServer(t, ServerOptions{})

	resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestServer_Auth(t *testing.T) {
	verifier, err := auth.NewVerifier(auth.VerifierConfig{Secret: testSecret})
	require.NoError(t, err)
	env := startServer(t, ServerOptions{Verifier: verifier})

	_, err = env.client.ValidateIBAN(context.Background(), &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
	resp, err := env.client.ValidateIBAN(ctx, &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	// Health checks bypass authentication.
	_, err = healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	assert.NoError(t, err)
}

func TestServer_TLS(t *testing.T) {
	dev, err := tlsutil.GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)
	serverCreds, err := tlsutil.ServerTLSConfig(dev.CertFile(), dev.KeyFile())
	require.NoError(t, err)
	clientCreds, err := tlsutil.ClientTLSConfig(dev.CAFile(), "localhost")
	require.NoError(t, err)

	env := startServerWithDial(t, ServerOptions{Creds: serverCreds}, grpclib.WithTransportCredentials(clientCreds))

	resp, err := env.client.ValidateIBAN(context.Background(), &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Contains(t, env.logs.String(), "gRPC TLS enabled")
}

func TestServer_TLSRejectsPlaintextClient(t *testing.T) {
	dev, err := tlsutil.GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)
	serverCreds, err := tlsutil.ServerTLSConfig(dev.CertFile(), dev.KeyFile())
	require.NoError(t, err)

	env := startServer(t, ServerOptions{Creds: serverCreds})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = env.client.ValidateIBAN(ctx, &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	assert.Error(t, err)
}

func TestServer_TLSUntrustedCA(t *testing.T) {
	dev, err := tlsutil.GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)
	other, err := tlsutil.GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)
	serverCreds, err := tlsutil.ServerTLSConfig(dev.CertFile(), dev.KeyFile())
	require.NoError(t, err)
	clientCreds, err := tlsutil.ClientTLSConfig(other.CAFile(), "localhost")
	require.NoError(t, err)

	env := startServerWithDial(t, ServerOptions{Creds: serverCreds}, grpclib.WithTransportCredentials(clientCreds))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = env.client.ValidateIBAN(ctx, &ValidateIBANRequest{IBAN: testutil.ValidIBAN})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestRecoveryInterceptor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	interceptor := RecoveryInterceptor(logger)

	_, err := interceptor(context.Background(), nil, &grpclib.UnaryServerInfo{FullMethod: "/x/Y"},
		func(context.Context, interface{}) (interface{}, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))
}
