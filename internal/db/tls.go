package db

import (
	"crypto/tls"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// TLSPolicy decides how connections to the database are encrypted.
type TLSPolicy int

const (
	// TLSInsecure encrypts the connection but does not verify the server certificate.
	TLSInsecure TLSPolicy = iota
	// TLSDisabled connects in plaintext. Used for loopback hosts.
	TLSDisabled
)

var loopbackPattern = regexp.MustCompile(`localhost|127\.0\.0\.1`)

// PolicyFor returns TLSDisabled when databaseURL mentions a loopback host
// anywhere in its text and TLSInsecure otherwise.
func PolicyFor(databaseURL string) TLSPolicy {
	if loopbackPattern.MatchString(databaseURL) {
		return TLSDisabled
	}
	return TLSInsecure
}

func (p TLSPolicy) String() string {
	switch p {
	case TLSDisabled:
		return "disabled"
	case TLSInsecure:
		return "insecure"
	default:
		return fmt.Sprintf("TLSPolicy(%d)", int(p))
	}
}

func (p TLSPolicy) tlsConfig(host string) *tls.Config {
	if p == TLSDisabled || isUnixSocket(host) {
		return nil
	}
	cfg := &tls.Config{InsecureSkipVerify: true}
	if net.ParseIP(host) == nil {
		// SNI; hosted providers route on it.
		cfg.ServerName = host
	}
	return cfg
}

// apply overrides whatever sslmode the URL carried. Fallbacks that only
// differed by TLS setting collapse into one entry per host and port.
func (p TLSPolicy) apply(cc *pgconn.Config) {
	cc.TLSConfig = p.tlsConfig(cc.Host)

	seen := map[string]struct{}{endpointKey(cc.Host, cc.Port): {}}
	fallbacks := make([]*pgconn.FallbackConfig, 0, len(cc.Fallbacks))
	for _, fb := range cc.Fallbacks {
		key := endpointKey(fb.Host, fb.Port)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		fallbacks = append(fallbacks, &pgconn.FallbackConfig{
			Host:      fb.Host,
			Port:      fb.Port,
			TLSConfig: p.tlsConfig(fb.Host),
		})
	}
	cc.Fallbacks = fallbacks
}

func endpointKey(host string, port uint16) string {
	return fmt.Sprintf("%s:%d", host, port)
}

func isUnixSocket(host string) bool {
	return strings.HasPrefix(host, "/")
}
