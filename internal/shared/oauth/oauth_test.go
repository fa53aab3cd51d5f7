package oauth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type fixedNonce struct {
	values []string
	err    error
	calls  int
}

func (n *fixedNonce) Generate(context.Context) (string, error) {
	if n.err != nil {
		return "", n.err
	}
	value := n.values[n.calls%len(n.values)]
	n.calls++
	return value, nil
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

type HMACSHA1SignerSuite struct {
	suite.Suite

	opts Options
}

func (s *HMACSHA1SignerSuite) SetupTest() {
	s.opts = Options{
		Strategy:       StrategyHMACSHA1,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		TokenKey:       "tk",
		TokenSecret:    "ts",
		Clock:          fixedClock(1700000000),
		Nonce:          &fixedNonce{values: []string{"n1"}},
	}
}

func (s *HMACSHA1SignerSuite) newSigner(opts Options) Signer {
	signer, err := New(opts)
	require.NoError(s.T(), err)
	return signer
}

func (s *HMACSHA1SignerSuite) TestSign_ReferenceVector() {
	signer := s.newSigner(Options{
		ConsumerKey:    "xvz1evFS4wEEPTGEFPHBog",
		ConsumerSecret: "kAcSOqF21Fu85e7zjz7ZN2U4ZRhfV3WpwPAoE3Z7kBw",
		TokenKey:       "370773112-GmHxMAgYyLbNEtIKZeRNFsMKPR9EyMZeS9weJAEb",
		TokenSecret:    "LswwdoUaIvS8ltyTt5jkRh4J50vUPVVHtR2YPi5kE",
		Clock:          fixedClock(1318622958),
		Nonce:          &fixedNonce{values: []string{"kYjzVBB8Y0ZFabxSWbWovY3uYSQ2pTgmZeNu2VS4cg"}},
	})

	signed, err := signer.Sign(
		context.Background(),
		"post",
		"https://api.twitter.com/1.1/statuses/update.json?include_entities=true&status=Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21",
	)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "POST", signed.Method)
	assert.Equal(s.T(), "hCtSmYh+iHYCEqBWrE7C7hYmtUk=", signed.Signature)
}

func (s *HMACSHA1SignerSuite) TestSign_KeepsQueryParameters() {
	signed, err := s.newSigner(s.opts).Sign(context.Background(), "GET", "https://api.gnoss.test/v3/thesaurus/get-thesaurus?community_short_name=demo")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "https://api.gnoss.test/v3/thesaurus/get-thesaurus", signed.BaseURL)
	assert.Equal(s.T(),
		"GET&https%3A%2F%2Fapi.gnoss.test%2Fv3%2Fthesaurus%2Fget-thesaurus&community_short_name%3Ddemo%26oauth_consumer_key%3Dck%26oauth_nonce%3Dn1%26oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1700000000%26oauth_token%3Dtk%26oauth_version%3D1.0",
		SignatureBaseString(signed.Method, signed.BaseURL, signed.Parameters),
	)
	assert.Equal(s.T(), "carQmPIupK3dfNxOBRTafrKsMN0=", signed.Signature)
	assert.True(s.T(), strings.HasPrefix(signed.SignedURL(), "https://api.gnoss.test/v3/thesaurus/get-thesaurus?community_short_name=demo&oauth_consumer_key=ck"))
	assert.True(s.T(), strings.HasSuffix(signed.SignedURL(), "&oauth_signature=carQmPIupK3dfNxOBRTafrKsMN0%3D"))
}

func (s *HMACSHA1SignerSuite) TestSign_Deterministic() {
	const target = "https://api.gnoss.test/v3/resource/delete"

	first, err := s.newSigner(s.opts).Sign(context.Background(), "POST", target)
	require.NoError(s.T(), err)

	s.SetupTest()
	second, err := s.newSigner(s.opts).Sign(context.Background(), "POST", target)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), first.Signature, second.Signature)
	assert.Equal(s.T(), first.AuthorizationHeader(), second.AuthorizationHeader())
}

func (s *HMACSHA1SignerSuite) TestSign_AnyInputChangesSignature_TableDriven() {
	const target = "https://api.gnoss.test/v3/resource/delete"

	base, err := s.newSigner(s.opts).Sign(context.Background(), "POST", target)
	require.NoError(s.T(), err)

	tests := []struct {
		name   string
		method string
		url    string
		mutate func(*Options)
	}{
		{name: "method", method: "GET", url: target},
		{name: "url", method: "POST", url: target + "?x=1"},
		{name: "consumer key", method: "POST", url: target, mutate: func(o *Options) { o.ConsumerKey = "other" }},
		{name: "consumer secret", method: "POST", url: target, mutate: func(o *Options) { o.ConsumerSecret = "other" }},
		{name: "token", method: "POST", url: target, mutate: func(o *Options) { o.TokenKey = "other" }},
		{name: "token secret", method: "POST", url: target, mutate: func(o *Options) { o.TokenSecret = "other" }},
		{name: "timestamp", method: "POST", url: target, mutate: func(o *Options) { o.Clock = fixedClock(1700000001) }},
		{name: "nonce", method: "POST", url: target, mutate: func(o *Options) { o.Nonce = &fixedNonce{values: []string{"n2"}} }},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			opts := s.opts
			if tc.mutate != nil {
				tc.mutate(&opts)
			}

			signed, err := s.newSigner(opts).Sign(context.Background(), tc.method, tc.url)
			require.NoError(s.T(), err)
			assert.NotEqual(s.T(), base.Signature, signed.Signature)
		})
	}
}

func (s *HMACSHA1SignerSuite) TestSign_FreshNoncePerCall() {
	s.opts.Nonce = &fixedNonce{values: []string{"a", "b"}}
	signer := s.newSigner(s.opts)

	first, err := signer.Sign(context.Background(), "GET", "https://api.gnoss.test/v3/x")
	require.NoError(s.T(), err)
	second, err := signer.Sign(context.Background(), "GET", "https://api.gnoss.test/v3/x")
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), first.Nonce, second.Nonce)
	assert.NotEqual(s.T(), first.Signature, second.Signature)
}

func (s *HMACSHA1SignerSuite) TestSign_Errors_TableDriven() {
	nonceErr := errors.New("clock moved backwards")

	tests := []struct {
		name      string
		method    string
		url       string
		mutate    func(*Options)
		assertion func(error)
	}{
		{
			name:   "unparseable url",
			method: "GET",
			url:    "http://[::1",
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidArgument)
			},
		},
		{
			name:   "url without host",
			method: "GET",
			url:    "/resource/delete",
			assertion: func(err error) {
				var argErr *vo.InvalidArgumentError
				require.ErrorAs(s.T(), err, &argErr)
				assert.Equal(s.T(), "url", argErr.Argument)
			},
		},
		{
			name:   "empty method",
			method: " ",
			url:    "https://api.gnoss.test/v3/x",
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidArgument)
			},
		},
		{
			name:   "nonce failure",
			method: "GET",
			url:    "https://api.gnoss.test/v3/x",
			mutate: func(o *Options) { o.Nonce = &fixedNonce{err: nonceErr} },
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, nonceErr)
				assert.ErrorContains(s.T(), err, "failed to generate nonce")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			opts := s.opts
			if tc.mutate != nil {
				tc.mutate(&opts)
			}

			_, err := s.newSigner(opts).Sign(context.Background(), tc.method, tc.url)
			require.Error(s.T(), err)
			tc.assertion(err)
		})
	}
}

func (s *HMACSHA1SignerSuite) TestAuthorizationHeader() {
	signed, err := s.newSigner(s.opts).Sign(context.Background(), "GET", "https://api.gnoss.test/v3/thesaurus/get-thesaurus?community_short_name=demo")
	require.NoError(s.T(), err)

	assert.Equal(s.T(),
		`OAuth realm="Example", oauth_consumer_key="ck", oauth_token="tk", oauth_signature_method="HMAC-SHA1", oauth_signature="carQmPIupK3dfNxOBRTafrKsMN0%3D", oauth_timestamp="1700000000", oauth_nonce="n1", oauth_version="1.0"`,
		signed.AuthorizationHeader(),
	)
}

func (s *HMACSHA1SignerSuite) TestNew_Validation() {
	_, err := New(Options{Strategy: "RSA-SHA1", ConsumerKey: "ck", ConsumerSecret: "cs"})
	assert.ErrorContains(s.T(), err, "unknown strategy")

	_, err = New(Options{ConsumerSecret: "cs"})
	assert.ErrorIs(s.T(), err, vo.ErrConfiguration)

	_, err = New(Options{ConsumerKey: "ck"})
	assert.ErrorIs(s.T(), err, vo.ErrConfiguration)
}

func TestHMACSHA1SignerSuite(t *testing.T) {
	suite.Run(t, new(HMACSHA1SignerSuite))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21", Encode("Hello Ladies + Gentlemen, a signed OAuth request!"))
	assert.Equal(t, "-._~AZaz09", Encode("-._~AZaz09"))
	assert.Equal(t, "%C3%B1%2A", Encode("ñ*"))
}
