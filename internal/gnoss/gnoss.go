// Package gnoss holds the typed clients of the GNOSS REST API. Every client
// is a thin layer over a transport.Client: it builds and validates the
// request object, sends it signed and decodes the response.
package gnoss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

var validate = validator.New()

// Validate checks the `validate` tags of a request object. Failures are
// returned as *vo.InvalidArgumentError naming the first offending field.
func Validate(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return vo.NewInvalidArgumentError(first.Namespace(), fmt.Sprintf("failed on the %q rule", first.Tag()))
	}
	return vo.NewInvalidArgumentError("params", err.Error())
}

// base carries what every client shares.
type base struct {
	client transport.Client
	creds  domain.Credentials
	logger *slog.Logger
}

func newBase(client transport.Client, creds domain.Credentials, logger *slog.Logger) (base, error) {
	if client == nil {
		return base{}, errors.New("gnoss: transport client is required")
	}
	if strings.TrimSpace(creds.APIEndpoint) == "" {
		return base{}, vo.NewConfigurationError("gnoss.api_endpoint", "")
	}
	if logger == nil {
		logger = slog.Default()
	}

	creds.APIEndpoint = strings.TrimRight(creds.APIEndpoint, "/")
	return base{client: client, creds: creds, logger: logger}, nil
}

// endpoint joins path to the API base. Query values are URL-encoded.
func (b base) endpoint(path string, query url.Values) string {
	target := b.creds.APIEndpoint + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// community falls back to the configured community when override is blank.
func (b base) community(override string) (string, error) {
	if community := strings.TrimSpace(override); community != "" {
		return community, nil
	}
	if b.creds.CommunityShortName != "" {
		return b.creds.CommunityShortName, nil
	}
	return "", vo.NewInvalidArgumentError("community_short_name", "no community given and none configured")
}

func (b base) post(ctx context.Context, path string, params any) (string, error) {
	if err := Validate(params); err != nil {
		return "", err
	}
	return transport.PostJSON(ctx, b.client, b.endpoint(path, nil), params)
}

func (b base) postInto(ctx context.Context, path string, params, out any) error {
	if err := Validate(params); err != nil {
		return err
	}
	return transport.PostJSONInto(ctx, b.client, b.endpoint(path, nil), params, out)
}

// unquote strips the JSON string quoting some endpoints wrap plain values in.
func unquote(body string) string {
	return strings.Trim(strings.TrimSpace(body), `"`)
}
