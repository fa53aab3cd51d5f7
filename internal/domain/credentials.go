package domain

import "time"

// Credentials is the immutable OAuth and endpoint material a client is
// built from.
type Credentials struct {
	ConsumerKey        string
	ConsumerSecret     string
	TokenKey           string
	TokenSecret        string
	APIEndpoint        string
	CommunityShortName string
	DeveloperEmail     string
	Timeout            time.Duration
}
