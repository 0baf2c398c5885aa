// Package platform provides security utilities for SSRF protection
package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	cerrors "github.com/cicd-ai-toolkit/pr-status-comment/pkg/errors"
)

// blockedHostPatterns matches private network and metadata hosts. A GitHub
// Enterprise API URL pointing at one of these is rejected. Loopback stays
// allowed for local testing.
var blockedHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^10\.`),                         // 10.0.0.0/8
	regexp.MustCompile(`^172\.(1[6-9]|2[0-9]|3[0-1])\.`), // 172.16.0.0/12
	regexp.MustCompile(`^192\.168\.`),                   // 192.168.0.0/16
	regexp.MustCompile(`^169\.254\.`),                   // link-local, cloud metadata
	regexp.MustCompile(`^(?i)f[cd][0-9a-f]{2}:`),        // fc00::/7
	regexp.MustCompile(`^(?i)fe80:`),                    // fe80::/10
	regexp.MustCompile(`^(?i)metadata\.google\.internal$`),
}

// ValidateBaseURL rejects API base URLs that are not http(s) or that target
// private networks.
func ValidateBaseURL(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return cerrors.ValidationError("invalid API URL", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return cerrors.ValidationError(fmt.Sprintf("invalid API URL scheme %q: only http and https are allowed", parsed.Scheme), nil)
	}

	hostname := strings.TrimSuffix(parsed.Hostname(), ".")
	if hostname == "" {
		return cerrors.ValidationError("API URL has no hostname", nil)
	}

	for _, pattern := range blockedHostPatterns {
		if pattern.MatchString(hostname) {
			return cerrors.ValidationError(fmt.Sprintf("API URL targets a private or internal host: %s", hostname), nil)
		}
	}

	return nil
}
