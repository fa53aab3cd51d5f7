package config

// Canonical keys of the GNOSS connection.
const (
	KeyConsumerKey        = "gnoss.consumer_key"
	KeyConsumerSecret     = "gnoss.consumer_secret"
	KeyTokenKey           = "gnoss.token_key"
	KeyTokenSecret        = "gnoss.token_secret"
	KeyAPIEndpoint        = "gnoss.api_endpoint"
	KeyCommunityShortName = "gnoss.community_short_name"
	KeyDeveloperEmail     = "gnoss.developer_email"
	KeyTimeout            = "gnoss.timeout"

	KeyLogPath     = "logging.path"
	KeyLogFileName = "logging.file_name"
	KeyLogLevel    = "logging.level"
)

// legacyEnvNames maps canonical keys to the process variable names used by
// existing GNOSS deployments. Upper snake case names (GNOSS_CONSUMER_KEY)
// are accepted as well.
var legacyEnvNames = map[string]string{
	KeyConsumerKey:        "consumerKey",
	KeyConsumerSecret:     "consumerSecret",
	KeyTokenKey:           "tokenKey",
	KeyTokenSecret:        "tokenSecret",
	KeyAPIEndpoint:        "apiEndpointV3",
	KeyCommunityShortName: "communityShortName",
	KeyDeveloperEmail:     "developerEmail",
	KeyLogPath:            "logPath",
	KeyLogFileName:        "logFileName",
	KeyLogLevel:           "logLevel",
}
