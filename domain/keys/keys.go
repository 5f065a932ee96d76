package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxNonce is used for prefixing auth nonce redis key
	PfxNonce = "nonce"
	// PfxListing is used for prefixing listing cache key
	PfxListing = "listing"
)

// RedisKey joins redis key components with the conventional delimiter
func RedisKey(components ...string) string {
	return strings.Join(components, ":")
}

// GetPrefix extracts the prefix of a key for metrics tagging
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
