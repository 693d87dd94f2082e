// Package tlsutil builds *tls.Config values from security configuration.
//
// Servers load a certificate/key pair and optionally validate client
// certificates (mTLS). Clients always start from the system CA bundle and
// append any configured additional CAs, so certificates issued by public
// CAs keep working alongside internal ones.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/JuntinLin/bom-owl-sub002/pkg/security"
)

// LoadServerTLSConfig creates a *tls.Config for HTTP servers from the given
// server TLS configuration. Returns nil when TLS is disabled.
func LoadServerTLSConfig(cfg security.ServerTLSConfig) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	if cfg.CertFile == "" || cfg.KeyFile == "" {
		return nil, fmt.Errorf("tlsutil: server TLS enabled but cert_file or key_file missing")
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   parseTLSVersion(cfg.MinVersion),
	}

	if cfg.MTLS.Enabled {
		if err := applyMTLSConfig(tlsConfig, cfg.MTLS); err != nil {
			return nil, err
		}
	}

	return tlsConfig, nil
}

// LoadClientTLSConfig creates a *tls.Config for clients from the given
// client TLS configuration. Returns nil when TLS is disabled.
//
// The system CA pool is always used as the base; CAFiles are appended as
// additional trusted roots.
func LoadClientTLSConfig(cfg security.ClientTLSConfig) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         parseTLSVersion(cfg.MinVersion),
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if len(cfg.CAFiles) > 0 {
		pool, err := x509.SystemCertPool()
		if err != nil {
			// No system pool available (some minimal containers); start empty.
			pool = x509.NewCertPool()
		}

		for _, caFile := range cfg.CAFiles {
			caCert, err := os.ReadFile(caFile)
			if err != nil {
				return nil, fmt.Errorf("tlsutil: read CA file %s: %w", caFile, err)
			}
			if !pool.AppendCertsFromPEM(caCert) {
				return nil, fmt.Errorf("tlsutil: no valid certificates in CA file %s", caFile)
			}
		}

		tlsConfig.RootCAs = pool
	}

	if cfg.MTLS.Enabled {
		if cfg.MTLS.CertFile == "" || cfg.MTLS.KeyFile == "" {
			return nil, fmt.Errorf("tlsutil: client mTLS enabled but cert_file or key_file missing")
		}
		cert, err := tls.LoadX509KeyPair(cfg.MTLS.CertFile, cfg.MTLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("tlsutil: load client key pair: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// applyMTLSConfig adds client certificate validation to a server TLS config.
func applyMTLSConfig(tlsConfig *tls.Config, cfg security.ServerMTLSConfig) error {
	if len(cfg.ClientCAFiles) == 0 {
		return fmt.Errorf("tlsutil: server mTLS enabled but no client_ca_files configured")
	}

	pool := x509.NewCertPool()
	for _, caFile := range cfg.ClientCAFiles {
		caCert, err := os.ReadFile(caFile)
		if err != nil {
			return fmt.Errorf("tlsutil: read client CA file %s: %w", caFile, err)
		}
		if !pool.AppendCertsFromPEM(caCert) {
			return fmt.Errorf("tlsutil: no valid certificates in client CA file %s", caFile)
		}
	}

	tlsConfig.ClientCAs = pool
	if cfg.RequireClientCert {
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	} else {
		tlsConfig.ClientAuth = tls.VerifyClientCertIfGiven
	}

	if len(cfg.AllowedClientCNs) > 0 {
		allowed := make(map[string]struct{}, len(cfg.AllowedClientCNs))
		for _, cn := range cfg.AllowedClientCNs {
			allowed[cn] = struct{}{}
		}
		tlsConfig.VerifyPeerCertificate = verifyAllowedClientCN(allowed)
	}

	return nil
}

// verifyAllowedClientCN returns a verification callback that rejects client
// certificates whose Common Name is not in the allowed set. Chain validation
// has already run by the time this callback is invoked.
func verifyAllowedClientCN(allowed map[string]struct{}) func([][]byte, [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
		if len(verifiedChains) == 0 || len(verifiedChains[0]) == 0 {
			return fmt.Errorf("tlsutil: no verified client certificate chain")
		}

		cn := verifiedChains[0][0].Subject.CommonName
		if _, ok := allowed[cn]; !ok {
			return fmt.Errorf("tlsutil: client CN %q not in allowed list", cn)
		}
		return nil
	}
}

// parseTLSVersion maps a configured version string to a tls constant.
// Unknown or empty values default to TLS 1.2.
func parseTLSVersion(version string) uint16 {
	switch version {
	case "1.3":
		return tls.VersionTLS13
	case "1.2", "":
		return tls.VersionTLS12
	default:
		return tls.VersionTLS12
	}
}
