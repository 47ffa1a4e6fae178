// Package tlsutil provides helpers for loading TLS credentials used by the
// identifier service's gRPC and HTTP listeners.
package tlsutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc/credentials"
)

// LoadServerConfig builds a server-side tls.Config from cert and key files.
// The HTTP listener uses it directly.
func LoadServerConfig(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// ServerTLSConfig loads TLS credentials for a gRPC server from cert and key files.
func ServerTLSConfig(certFile, keyFile string) (credentials.TransportCredentials, error) {
	tlsCfg, err := LoadServerConfig(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(tlsCfg), nil
}

// ClientTLSConfig builds gRPC client credentials that trust the CA in caFile.
// An empty caFile falls back to the system pool. serverName overrides the
// name checked against the server certificate; empty uses the dial authority.
func ClientTLSConfig(caFile, serverName string) (credentials.TransportCredentials, error) {
	tlsCfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: serverName,
	}
	if caFile != "" {
		caPEM, err := os.ReadFile(caFile)
		if err != nil {
			return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("tlsutil: no CA certificate in %s", caFile)
		}
		tlsCfg.RootCAs = pool
	}
	return credentials.NewTLS(tlsCfg), nil
}

// DevCert locates a development CA and server key pair inside Dir.
type DevCert struct {
	Dir string
}

// CAFile is the CA certificate clients should trust.
func (d DevCert) CAFile() string { return filepath.Join(d.Dir, "ca.pem") }

// CertFile is the server certificate, signed by the CA.
func (d DevCert) CertFile() string { return filepath.Join(d.Dir, "server.pem") }

// KeyFile is the server private key.
func (d DevCert) KeyFile() string { return filepath.Join(d.Dir, "server-key.pem") }

func (d DevCert) caKeyFile() string { return filepath.Join(d.Dir, "ca-key.pem") }

// EnsureDevCert returns the dev certificate in dir, generating it for hosts
// when the server certificate is not there yet.
func EnsureDevCert(dir string, hosts []string) (DevCert, bool, error) {
	d := DevCert{Dir: dir}
	_, err := os.Stat(d.CertFile())
	switch {
	case err == nil:
		return d, false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return DevCert{}, false, fmt.Errorf("tlsutil: stat %s: %w", d.CertFile(), err)
	}
	d, err = GenerateDevCert(dir, hosts)
	if err != nil {
		return DevCert{}, false, err
	}
	return d, true, nil
}

// GenerateDevCert writes a fresh CA and a server certificate for hosts into
// dir, overwriting any previous files. Hosts that parse as IPs become IP SANs.
func GenerateDevCert(dir string, hosts []string) (DevCert, error) {
	if len(hosts) == 0 {
		return DevCert{}, errors.New("tlsutil: at least one host is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return DevCert{}, fmt.Errorf("tlsutil: mkdir %s: %w", dir, err)
	}
	d := DevCert{Dir: dir}
	now := time.Now()

	ca := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"iband dev CA"}},
		NotBefore:             now,
		NotAfter:              now.AddDate(10, 0, 0),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	caDER, caKey, err := issue(ca, nil, nil, d.CAFile(), d.caKeyFile())
	if err != nil {
		return DevCert{}, fmt.Errorf("tlsutil: CA: %w", err)
	}
	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		return DevCert{}, fmt.Errorf("tlsutil: parse CA cert: %w", err)
	}

	leaf := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{Organization: []string{"iband dev"}, CommonName: hosts[0]},
		NotBefore:    now,
		NotAfter:     now.AddDate(1, 0, 0),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			leaf.IPAddresses = append(leaf.IPAddresses, ip)
		} else {
			leaf.DNSNames = append(leaf.DNSNames, h)
		}
	}
	if _, _, err := issue(leaf, caCert, caKey, d.CertFile(), d.KeyFile()); err != nil {
		return DevCert{}, fmt.Errorf("tlsutil: server: %w", err)
	}
	return d, nil
}

// issue creates a P-256 key, signs template with parent (self-signed when
// parent is nil) and writes both as PEM.
func issue(template, parent *x509.Certificate, parentKey crypto.Signer, certPath, keyPath string) ([]byte, crypto.Signer, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate key: %w", err)
	}
	if parent == nil {
		parent, parentKey = template, key
	}
	der, err := x509.CreateCertificate(rand.Reader, template, parent, &key.PublicKey, parentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("create cert: %w", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal key: %w", err)
	}
	if err := writePEM(certPath, "CERTIFICATE", der); err != nil {
		return nil, nil, err
	}
	if err := writePEM(keyPath, "EC PRIVATE KEY", keyDER); err != nil {
		return nil, nil, err
	}
	return der, key, nil
}

func writePEM(path, blockType string, data []byte) error {
	out := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: data})
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
