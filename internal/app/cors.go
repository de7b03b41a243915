package app

import (
	"net/url"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/vegamovies/core/internal/config"
)

// corsConfig builds the CORS policy. Credentialed requests require an origin
// allowlist, so production never falls back to allow-all; development does,
// to keep local admin panels working on arbitrary ports.
func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}

	if cfg.IsDev() || len(cfg.AllowedOrigins) == 0 {
		c.AllowOriginFunc = func(string) bool { return true }
		return c
	}

	allowed := cfg.AllowedOrigins
	c.AllowOriginFunc = func(origin string) bool {
		host := originHost(origin)
		for _, entry := range allowed {
			if originAllowed(entry, origin, host) {
				return true
			}
		}
		return false
	}
	return c
}

// originHost extracts "host[:port]" from an Origin header value.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// originAllowed matches one allowlist entry against a request origin. Entries
// may be full origins ("https://admin.example.com"), bare hosts, or wildcard
// subdomains ("*.example.com").
func originAllowed(entry, origin, host string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false
	}
	if entry == origin || entry == host {
		return true
	}
	if strings.HasPrefix(entry, "*.") {
		return strings.HasSuffix(host, entry[1:])
	}
	return originHost(entry) == host
}
