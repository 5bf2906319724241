package db

import (
	"fmt"
	"net/url"
	"strings"
)

// Summary renders databaseURL as user@host:port/dbname for diagnostics.
// The password is never included. ok is false when the URL cannot be
// parsed, in which case callers skip the log line.
func Summary(databaseURL string) (summary string, ok bool) {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	user := orDefault(u.User.Username(), "<missing>")
	host := orDefault(u.Hostname(), "<missing>")
	port := orDefault(u.Port(), "<default>")
	name := orDefault(strings.TrimPrefix(u.Path, "/"), "<missing>")

	return fmt.Sprintf("%s@%s:%s/%s", user, host, port, name), true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
