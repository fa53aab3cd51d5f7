package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

// LoadCredentials reads the GNOSS connection settings. It returns a
// *vo.ConfigurationError naming the first missing required field.
func LoadCredentials(cfg ConfigProvider) (domain.Credentials, error) {
	creds := domain.Credentials{
		ConsumerKey:        lookupString(cfg, KeyConsumerKey),
		ConsumerSecret:     lookupString(cfg, KeyConsumerSecret),
		TokenKey:           lookupString(cfg, KeyTokenKey),
		TokenSecret:        lookupString(cfg, KeyTokenSecret),
		APIEndpoint:        strings.TrimRight(lookupString(cfg, KeyAPIEndpoint), "/"),
		CommunityShortName: lookupString(cfg, KeyCommunityShortName),
		DeveloperEmail:     lookupString(cfg, KeyDeveloperEmail),
	}

	timeout, err := parseTimeout(lookupString(cfg, KeyTimeout))
	if err != nil {
		return domain.Credentials{}, vo.NewConfigurationError(KeyTimeout, err.Error())
	}
	creds.Timeout = timeout

	required := []struct {
		key   string
		value string
	}{
		{KeyConsumerKey, creds.ConsumerKey},
		{KeyConsumerSecret, creds.ConsumerSecret},
		{KeyTokenKey, creds.TokenKey},
		{KeyTokenSecret, creds.TokenSecret},
		{KeyAPIEndpoint, creds.APIEndpoint},
	}
	for _, field := range required {
		if field.value == "" {
			return domain.Credentials{}, vo.NewConfigurationError(field.key, "")
		}
	}

	return creds, nil
}

// envKey converts gnoss.consumer_key to GNOSS_CONSUMER_KEY, the spelling
// used by .env files.
func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func lookupString(cfg ConfigProvider, key string) string {
	if cfg.IsSet(key) {
		return strings.TrimSpace(cfg.GetString(key))
	}
	if alt := envKey(key); cfg.IsSet(alt) {
		return strings.TrimSpace(cfg.GetString(alt))
	}
	return ""
}

// parseTimeout reads a bare integer as milliseconds, the unit of the GNOSS
// configuration files. Go duration strings such as "30s" are also accepted.
// Empty yields zero so the transport applies its default.
func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if millis < 0 {
			return 0, fmt.Errorf("negative timeout %d", millis)
		}
		return time.Duration(millis) * time.Millisecond, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("want milliseconds or a duration, got %q", raw)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("negative timeout %s", raw)
	}
	return timeout, nil
}
