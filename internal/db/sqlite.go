package db

import (
	"strings"

	_ "modernc.org/sqlite"
)

func openSQLite(o Options) (*sqlPool, error) {
	return newSQLPool("sqlite", sqliteDSN(o.URL), "sqlite", o)
}

// sqliteDSN turns sqlite://path, sqlite:path, file: URIs and bare paths into
// a file: URI opened read-only, so a missing file fails instead of being
// created. An explicit mode= parameter is kept. In-memory names pass through.
func sqliteDSN(url string) string {
	path := url
	for _, prefix := range []string{"sqlite3://", "sqlite://", "sqlite3:", "sqlite:"} {
		if hasPrefixFold(path, prefix) {
			path = path[len(prefix):]
			break
		}
	}
	if strings.Contains(path, ":memory:") {
		return path
	}
	if !hasPrefixFold(path, "file:") {
		path = "file:" + path
	}

	name, query, _ := strings.Cut(path, "?")
	if !hasParam(query, "mode") {
		if query != "" {
			query += "&"
		}
		query += "mode=ro"
	}
	return name + "?" + query
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasParam(query, key string) bool {
	for _, kv := range strings.Split(query, "&") {
		if k, _, _ := strings.Cut(kv, "="); k == key {
			return true
		}
	}
	return false
}
