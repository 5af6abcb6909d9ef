package objmgr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
)

// CertOptions controls GenerateCertificate.
type CertOptions struct {
	// Hosts are the hostnames and IPs the certificate is valid for.
	Hosts    []string
	ValidFor time.Duration
	RSABits  int
}

// GenerateCertificate writes a self-signed certificate and its private key
// as PEM files. The certificate is its own authority, so certPath serves
// both as serve.cert-file on the server and grpc.ca-file on clients.
func GenerateCertificate(opts CertOptions, certPath, keyPath string) error {
	if len(opts.Hosts) == 0 {
		return errors.New("at least one host is required")
	}
	if opts.ValidFor == 0 {
		opts.ValidFor = 365 * 24 * time.Hour
	}
	if opts.RSABits == 0 {
		opts.RSABits = 2048
	}

	priv, err := rsa.GenerateKey(rand.Reader, opts.RSABits)
	if err != nil {
		return errors.Wrap(err, "Failed to generate private key")
	}

	notBefore := time.Now()
	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return errors.Wrap(err, "Failed to generate serial number")
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{"objstore"},
		},
		NotBefore: notBefore,
		NotAfter:  notBefore.Add(opts.ValidFor),

		IsCA:                  true,
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}
	for _, h := range opts.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return errors.Wrap(err, "Failed to create certificate")
	}
	if err := writePEM(certPath, 0o644, "CERTIFICATE", derBytes); err != nil {
		return err
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return errors.Wrap(err, "Unable to marshal private key")
	}
	return writePEM(keyPath, 0o600, "PRIVATE KEY", privBytes)
}

func writePEM(path string, perm os.FileMode, blockType string, der []byte) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "Failed to open %s for writing", path)
	}
	if err := pem.Encode(out, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		out.Close()
		return errors.Wrapf(err, "Failed to write data to %s", path)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "Error closing %s", path)
	}
	return nil
}
