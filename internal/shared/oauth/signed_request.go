package oauth

import (
	"strings"
)

// SignedRequest is the ephemeral result of one Sign call. It is never reused.
type SignedRequest struct {
	Method          string
	BaseURL         string
	Parameters      []Parameter
	ConsumerKey     string
	Token           string
	SignatureMethod string
	Timestamp       string
	Nonce           string
	Version         string
	Signature       string
	Realm           string
}

// Parameter is a single decoded name/value pair.
type Parameter struct {
	Name  string
	Value string
}

// AuthorizationHeader renders the value of the Authorization header.
func (r SignedRequest) AuthorizationHeader() string {
	var b strings.Builder
	b.WriteString(`OAuth realm="`)
	b.WriteString(r.Realm)
	b.WriteString(`"`)

	fields := []Parameter{
		{Name: "oauth_consumer_key", Value: r.ConsumerKey},
		{Name: "oauth_token", Value: r.Token},
		{Name: "oauth_signature_method", Value: r.SignatureMethod},
		{Name: "oauth_signature", Value: r.Signature},
		{Name: "oauth_timestamp", Value: r.Timestamp},
		{Name: "oauth_nonce", Value: r.Nonce},
		{Name: "oauth_version", Value: r.Version},
	}
	for _, field := range fields {
		b.WriteString(", ")
		b.WriteString(field.Name)
		b.WriteString(`="`)
		b.WriteString(Encode(field.Value))
		b.WriteString(`"`)
	}

	return b.String()
}

// SignedURL renders the base URL followed by every signed parameter and the
// signature itself.
func (r SignedRequest) SignedURL() string {
	return r.BaseURL + "?" + normalizeParameters(r.Parameters) + "&oauth_signature=" + Encode(r.Signature)
}
