package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	sharedhash "github.com/joshuarp/gnoss-api-wrapper/internal/shared/hash"
	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
)

type OperatorAccountRepository interface {
	GetOperatorAuthByEmail(ctx context.Context, email string) (domain.OperatorAuth, error)
}

// OperatorLoginService issues gateway tokens to operators. Tokens carry the
// community the gateway is bound to.
type OperatorLoginService struct {
	repository   OperatorAccountRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
	community    string
}

func NewOperatorLoginService(
	repository OperatorAccountRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	creds domain.Credentials,
) *OperatorLoginService {
	return &OperatorLoginService{
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
		community:    creds.CommunityShortName,
	}
}

func (s *OperatorLoginService) Login(ctx context.Context, email, password string) (vo.OperatorLogin, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" || strings.TrimSpace(password) == "" {
		return vo.OperatorLogin{}, vo.ErrInvalidCredentials
	}

	operator, err := s.repository.GetOperatorAuthByEmail(ctx, normalizedEmail)
	if err != nil {
		return vo.OperatorLogin{}, err
	}

	if err := s.hasher.Compare(ctx, operator.PasswordHash, password); err != nil {
		if errors.Is(err, sharedhash.ErrMismatch) {
			return vo.OperatorLogin{}, vo.ErrInvalidCredentials
		}
		return vo.OperatorLogin{}, fmt.Errorf("service: failed to verify password: %w", err)
	}

	token, err := s.tokenManager.Sign(ctx, sharedjwt.Claims{
		Subject:   operator.ID,
		Community: s.community,
		Role:      "operator",
	})
	if err != nil {
		return vo.OperatorLogin{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return vo.OperatorLogin{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
