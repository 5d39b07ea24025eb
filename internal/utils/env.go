package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/legalkaz/backend/internal/logger"
)

// envValue reads key and converts it with parse. Unset variables and values
// parse rejects both fall back to def.
func envValue[T any](key string, def T, kind string, parse func(string) (T, error), log *logger.Logger) T {
	if log != nil {
		log = log.With("env_var", key, "kind", kind)
	}
	raw, ok := os.LookupEnv(key)
	if !ok {
		if log != nil {
			log.Debug("Environment variable unset, falling back", "default", def)
		}
		return def
	}
	v, err := parse(raw)
	if err != nil {
		if log != nil {
			log.Warn("Environment variable malformed, falling back", "raw", raw, "default", def, "error", err)
		}
		return def
	}
	if log != nil {
		log.Debug("Environment variable loaded")
	}
	return v
}

func GetEnv(key, defaultVal string, log *logger.Logger) string {
	return envValue(key, defaultVal, "string", func(s string) (string, error) { return s, nil }, log)
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
	return envValue(key, defaultVal, "int", func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}, log)
}

// GetEnvAsDuration accepts Go duration strings ("30s", "5m") or a bare number of seconds.
func GetEnvAsDuration(key string, defaultVal time.Duration, log *logger.Logger) time.Duration {
	return envValue(key, defaultVal, "duration", parseDuration, log)
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// GetEnvAsSlice splits a comma separated value, dropping empty entries.
func GetEnvAsSlice(key string, defaultVal []string, log *logger.Logger) []string {
	out := envValue(key, nil, "list", func(s string) ([]string, error) {
		var parts []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				parts = append(parts, p)
			}
		}
		return parts, nil
	}, log)
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
