package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	servicemocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/services"
	hashmocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/shared/hash"
	jwtmocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/shared/jwt"
	sharedhash "github.com/joshuarp/gnoss-api-wrapper/internal/shared/hash"
	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
)

type OperatorLoginServiceSuite struct {
	suite.Suite

	repository   *servicemocks.OperatorAccountRepository
	hasher       *hashmocks.Hasher
	tokenManager *jwtmocks.TokenManager
	service      *OperatorLoginService
}

func (s *OperatorLoginServiceSuite) SetupTest() {
	s.repository = servicemocks.NewOperatorAccountRepository(s.T())
	s.hasher = hashmocks.NewHasher(s.T())
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.service = NewOperatorLoginService(s.repository, s.hasher, s.tokenManager, domain.Credentials{CommunityShortName: "demo"})
}

func (s *OperatorLoginServiceSuite) TestLogin_TableDriven() {
	repoErr := errors.New("repository failure")
	signErr := errors.New("sign failed")
	hashErr := errors.New("malformed hash")

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func()
		assertion func(vo.OperatorLogin, error)
	}{
		{
			name:     "invalid when email empty",
			email:    "   ",
			password: "secret",
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "invalid when password empty",
			email:    "operator@example.com",
			password: "   ",
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "propagate repository error",
			email:    "OPERATOR@EXAMPLE.COM",
			password: "secret",
			setupMock: func() {
				s.repository.EXPECT().
					GetOperatorAuthByEmail(mock.Anything, "operator@example.com").
					Return(domain.OperatorAuth{}, repoErr)
			},
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, repoErr)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "invalid when password mismatch",
			email:    "operator@example.com",
			password: "wrong-password",
			setupMock: func() {
				operator := domain.OperatorAuth{ID: "operator-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetOperatorAuthByEmail(mock.Anything, "operator@example.com").
					Return(operator, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "wrong-password").
					Return(fmt.Errorf("compare: %w", sharedhash.ErrMismatch))
			},
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "returns wrapped error when hasher fails",
			email:    "operator@example.com",
			password: "secret",
			setupMock: func() {
				operator := domain.OperatorAuth{ID: "operator-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetOperatorAuthByEmail(mock.Anything, "operator@example.com").
					Return(operator, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "secret").
					Return(hashErr)
			},
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to verify password")
				assert.ErrorIs(s.T(), err, hashErr)
				assert.NotErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "returns wrapped error when token signing fails",
			email:    "operator@example.com",
			password: "secret",
			setupMock: func() {
				operator := domain.OperatorAuth{ID: "operator-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetOperatorAuthByEmail(mock.Anything, "operator@example.com").
					Return(operator, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "secret").
					Return(nil)
				s.tokenManager.EXPECT().
					Sign(mock.Anything, mock.MatchedBy(func(claims sharedjwt.Claims) bool {
						return claims.Subject == "operator-1" && claims.Community == "demo" && claims.Role == "operator"
					})).
					Return("", signErr)
			},
			assertion: func(result vo.OperatorLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to issue token")
				assert.ErrorIs(s.T(), err, signErr)
				assert.Equal(s.T(), vo.OperatorLogin{}, result)
			},
		},
		{
			name:     "success",
			email:    " operator@example.com ",
			password: "secret",
			setupMock: func() {
				operator := domain.OperatorAuth{ID: "operator-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetOperatorAuthByEmail(mock.Anything, "operator@example.com").
					Return(operator, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "secret").
					Return(nil)
				s.tokenManager.EXPECT().Sign(mock.Anything, mock.Anything).Return("signed-token", nil)
			},
			assertion: func(result vo.OperatorLogin, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "signed-token", result.AccessToken)
				assert.Equal(s.T(), "Bearer", result.TokenType)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.Login(context.Background(), tc.email, tc.password)
			tc.assertion(result, err)
		})
	}
}

func TestOperatorLoginServiceSuite(t *testing.T) {
	suite.Run(t, new(OperatorLoginServiceSuite))
}

type NotificationServiceSuite struct {
	suite.Suite

	gateway *servicemocks.NotificationGateway
	service *NotificationService
}

func (s *NotificationServiceSuite) SetupTest() {
	s.gateway = servicemocks.NewNotificationGateway(s.T())
	s.service = NewNotificationService(s.gateway, nil)
}

func (s *NotificationServiceSuite) TestSendEmail_TableDriven() {
	gatewayErr := &vo.RemoteAPIError{StatusCode: 500, Message: "smtp down"}

	tests := []struct {
		name      string
		receivers []string
		setupMock func()
		assertion func(error)
	}{
		{
			name:      "drops blank and repeated receivers",
			receivers: []string{"a@example.com", " ", "A@example.com", " b@example.com "},
			setupMock: func() {
				s.gateway.EXPECT().
					SendEmail(mock.Anything, mock.MatchedBy(func(params vo.NotificationParams) bool {
						return assert.ObjectsAreEqual([]string{"a@example.com", "b@example.com"}, params.Receivers)
					})).
					Return(nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:      "propagates gateway error",
			receivers: []string{"a@example.com"},
			setupMock: func() {
				s.gateway.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(gatewayErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrRemoteAPI)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			err := s.service.SendEmail(context.Background(), vo.NotificationParams{
				Subject:   "load finished",
				Message:   "done",
				Receivers: tc.receivers,
			})
			tc.assertion(err)
		})
	}
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

type ThesaurusServiceSuite struct {
	suite.Suite

	gateway *servicemocks.ThesaurusGateway
	cache   *servicemocks.CategoryCacheInvalidator
	service *ThesaurusService
}

func (s *ThesaurusServiceSuite) SetupTest() {
	s.gateway = servicemocks.NewThesaurusGateway(s.T())
	s.cache = servicemocks.NewCategoryCacheInvalidator(s.T())
	s.service = NewThesaurusService(s.gateway, s.cache, nil)
}

func (s *ThesaurusServiceSuite) TestEdits_TableDriven() {
	editErr := errors.New("edit failed")

	tests := []struct {
		name      string
		setupMock func()
		call      func() error
		assertion func(error)
	}{
		{
			name: "move invalidates the cache",
			setupMock: func() {
				s.gateway.EXPECT().MoveNode(mock.Anything, mock.Anything).Return(nil)
				s.cache.EXPECT().Invalidate(mock.Anything, "demo").Return(nil)
			},
			call: func() error {
				return s.service.MoveNode(context.Background(), vo.MoveNodeParams{CommunityShortName: "demo", CategoryID: "c1"})
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "rename ignores invalidation failure",
			setupMock: func() {
				s.gateway.EXPECT().ChangeNodeName(mock.Anything, mock.Anything).Return(nil)
				s.cache.EXPECT().Invalidate(mock.Anything, "demo").Return(errors.New("redis down"))
			},
			call: func() error {
				return s.service.ChangeNodeName(context.Background(), vo.ChangeNodeNameParams{CommunityShortName: "demo", CategoryName: "Music"})
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "failed edit keeps the cache",
			setupMock: func() {
				s.gateway.EXPECT().InsertNode(mock.Anything, mock.Anything).Return(editErr)
			},
			call: func() error {
				return s.service.InsertNode(context.Background(), vo.InsertNodeParams{CommunityShortName: "demo"})
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, editErr)
			},
		},
		{
			name: "delete and set parent invalidate",
			setupMock: func() {
				s.gateway.EXPECT().DeleteNode(mock.Anything, mock.Anything).Return(nil)
				s.gateway.EXPECT().SetNodeParent(mock.Anything, mock.Anything).Return(nil)
				s.cache.EXPECT().Invalidate(mock.Anything, "demo").Return(nil).Times(2)
			},
			call: func() error {
				if err := s.service.DeleteNode(context.Background(), vo.MoveNodeParams{CommunityShortName: "demo"}); err != nil {
					return err
				}
				return s.service.SetNodeParent(context.Background(), vo.ParentNodeParams{CommunityShortName: "demo"})
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "get thesaurus passes through",
			setupMock: func() {
				s.gateway.EXPECT().GetThesaurus(mock.Anything, "http://gnoss.com/taxonomy.owl", "src").Return("<rdf/>", nil)
			},
			call: func() error {
				thesaurus, err := s.service.GetThesaurus(context.Background(), "http://gnoss.com/taxonomy.owl", "src")
				assert.Equal(s.T(), "<rdf/>", thesaurus)
				return err
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			tc.assertion(tc.call())
		})
	}
}

func TestThesaurusServiceSuite(t *testing.T) {
	suite.Run(t, new(ThesaurusServiceSuite))
}
