package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCert(t *testing.T, path string) *x509.Certificate {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	return cert
}

func TestGenerateDevCert(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	d, err := GenerateDevCert(dir, []string{"localhost", "127.0.0.1"})
	require.NoError(t, err)

	for _, f := range []string{d.CAFile(), d.CertFile(), d.KeyFile(), d.caKeyFile()} {
		assert.FileExists(t, f)
	}

	leaf := readCert(t, d.CertFile())
	assert.Equal(t, []string{"localhost"}, leaf.DNSNames)
	require.Len(t, leaf.IPAddresses, 1)
	assert.Equal(t, "127.0.0.1", leaf.IPAddresses[0].String())
	assert.Equal(t, "localhost", leaf.Subject.CommonName)

	ca := readCert(t, d.CAFile())
	assert.True(t, ca.IsCA)
	pool := x509.NewCertPool()
	pool.AddCert(ca)
	_, err = leaf.Verify(x509.VerifyOptions{Roots: pool, DNSName: "localhost"})
	assert.NoError(t, err, "server certificate must chain to the dev CA")
}

func TestGenerateDevCert_NoHosts(t *testing.T) {
	_, err := GenerateDevCert(t.TempDir(), nil)
	assert.ErrorContains(t, err, "at least one host")
}

func TestEnsureDevCert_ReusesExisting(t *testing.T) {
	dir := t.TempDir()

	d, created, err := EnsureDevCert(dir, []string{"localhost"})
	require.NoError(t, err)
	assert.True(t, created)
	first := readCert(t, d.CertFile())

	d, created, err = EnsureDevCert(dir, []string{"other.example"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.Raw, readCert(t, d.CertFile()).Raw)
}

func TestLoadServerConfig(t *testing.T) {
	d, err := GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)

	cfg, err := LoadServerConfig(d.CertFile(), d.KeyFile())
	require.NoError(t, err)
	assert.Len(t, cfg.Certificates, 1)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)

	creds, err := ServerTLSConfig(d.CertFile(), d.KeyFile())
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)
}

func TestLoadServerConfig_MissingFiles(t *testing.T) {
	_, err := LoadServerConfig("/nonexistent/cert.pem", "/nonexistent/key.pem")
	assert.ErrorContains(t, err, "load server key pair")
}

func TestClientTLSConfig(t *testing.T) {
	d, err := GenerateDevCert(t.TempDir(), []string{"localhost"})
	require.NoError(t, err)

	creds, err := ClientTLSConfig(d.CAFile(), "localhost")
	require.NoError(t, err)
	assert.Equal(t, "localhost", creds.Info().ServerName)

	bad := filepath.Join(d.Dir, "bad.pem")
	require.NoError(t, os.WriteFile(bad, []byte("junk"), 0o600))
	_, err = ClientTLSConfig(bad, "")
	assert.ErrorContains(t, err, "no CA certificate")

	_, err = ClientTLSConfig(filepath.Join(d.Dir, "missing.pem"), "")
	assert.ErrorContains(t, err, "read CA file")
}
