package oauth

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

var _ Signer = (*hmacSHA1Signer)(nil)

type hmacSHA1Signer struct {
	consumerKey    string
	consumerSecret string
	tokenKey       string
	tokenSecret    string
	realm          string
	clock          func() time.Time
	nonce          NonceSource
}

// NewHMACSHA1 creates an HMAC-SHA1 Signer. Consumer key and secret are required.
func NewHMACSHA1(opts Options) (Signer, error) {
	if opts.ConsumerKey == "" {
		return nil, vo.NewConfigurationError("consumer key", "")
	}
	if opts.ConsumerSecret == "" {
		return nil, vo.NewConfigurationError("consumer secret", "")
	}

	signer := &hmacSHA1Signer{
		consumerKey:    opts.ConsumerKey,
		consumerSecret: opts.ConsumerSecret,
		tokenKey:       opts.TokenKey,
		tokenSecret:    opts.TokenSecret,
		realm:          opts.Realm,
		clock:          opts.Clock,
		nonce:          opts.Nonce,
	}
	if signer.realm == "" {
		signer.realm = DefaultRealm
	}
	if signer.clock == nil {
		signer.clock = time.Now
	}

	return signer, nil
}

func (s *hmacSHA1Signer) Sign(ctx context.Context, method, rawURL string) (SignedRequest, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		return SignedRequest{}, vo.NewInvalidArgumentError("method", "must not be empty")
	}

	baseURL, params, err := splitURL(rawURL)
	if err != nil {
		return SignedRequest{}, err
	}

	nonce, err := s.nextNonce(ctx)
	if err != nil {
		return SignedRequest{}, err
	}

	request := SignedRequest{
		Method:          method,
		BaseURL:         baseURL,
		ConsumerKey:     s.consumerKey,
		Token:           s.tokenKey,
		SignatureMethod: string(StrategyHMACSHA1),
		Timestamp:       strconv.FormatInt(s.clock().Unix(), 10),
		Nonce:           nonce,
		Version:         Version,
		Realm:           s.realm,
	}

	params = append(params,
		Parameter{Name: "oauth_consumer_key", Value: request.ConsumerKey},
		Parameter{Name: "oauth_nonce", Value: request.Nonce},
		Parameter{Name: "oauth_signature_method", Value: request.SignatureMethod},
		Parameter{Name: "oauth_timestamp", Value: request.Timestamp},
		Parameter{Name: "oauth_token", Value: request.Token},
		Parameter{Name: "oauth_version", Value: request.Version},
	)
	sortParameters(params)
	request.Parameters = params

	base := SignatureBaseString(method, baseURL, params)
	request.Signature = HMACSHA1Signature(base, s.consumerSecret, s.tokenSecret)

	return request, nil
}

func (s *hmacSHA1Signer) nextNonce(ctx context.Context) (string, error) {
	if s.nonce == nil {
		return strings.ReplaceAll(uuid.NewString(), "-", ""), nil
	}

	nonce, err := s.nonce.Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("oauth: failed to generate nonce: %w", err)
	}
	return nonce, nil
}

// SignatureBaseString builds METHOD&enc(baseURL)&enc(normalized parameters).
func SignatureBaseString(method, baseURL string, params []Parameter) string {
	sorted := make([]Parameter, len(params))
	copy(sorted, params)
	sortParameters(sorted)

	return strings.ToUpper(method) + "&" + Encode(baseURL) + "&" + Encode(normalizeParameters(sorted))
}

// HMACSHA1Signature signs base with enc(consumerSecret)&enc(tokenSecret) and
// returns the base64 digest.
func HMACSHA1Signature(base, consumerSecret, tokenSecret string) string {
	key := Encode(consumerSecret) + "&" + Encode(tokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func splitURL(rawURL string) (string, []Parameter, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", nil, vo.NewInvalidArgumentError("url", err.Error())
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, vo.NewInvalidArgumentError("url", fmt.Sprintf("%q has no scheme or host", rawURL))
	}

	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Host)
	if (scheme == "http" && strings.HasSuffix(host, ":80")) || (scheme == "https" && strings.HasSuffix(host, ":443")) {
		host = host[:strings.LastIndex(host, ":")]
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}

	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return "", nil, vo.NewInvalidArgumentError("url", err.Error())
	}

	params := make([]Parameter, 0, len(query)+6)
	for name, values := range query {
		for _, value := range values {
			params = append(params, Parameter{Name: name, Value: value})
		}
	}

	return scheme + "://" + host + path, params, nil
}

func sortParameters(params []Parameter) {
	sort.SliceStable(params, func(i, j int) bool {
		left, right := Encode(params[i].Name), Encode(params[j].Name)
		if left != right {
			return left < right
		}
		return Encode(params[i].Value) < Encode(params[j].Value)
	})
}

func normalizeParameters(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, Encode(param.Name)+"="+Encode(param.Value))
	}
	return strings.Join(parts, "&")
}

// Encode percent-encodes s per RFC 3986, leaving only A-Z a-z 0-9 - . _ ~.
func Encode(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	default:
		return false
	}
}
