package jwt_test

import (
	"testing"

	"stayhub/config"
	"stayhub/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessExpireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "stayhub"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessExpireMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestValidateToken(t *testing.T) {
	service := newService(15)

	token, err := service.Issue("owner-1", "owner@stayhub.test", "owner", jwt.AccessToken)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "stayhub", claims.Issuer)
}

func TestValidateToken_Rejections(t *testing.T) {
	service := newService(15)

	refresh, err := service.Issue("owner-1", "owner@stayhub.test", "owner", jwt.RefreshToken)
	require.NoError(t, err)

	expired, err := newService(-5).Issue("owner-1", "owner@stayhub.test", "owner", jwt.AccessToken)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		tokenType jwt.TokenType
		wantErr   error
	}{
		{name: "garbage", token: "not-a-token", tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
		{name: "refresh used as access", token: refresh, tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
		{name: "expired", token: expired, tokenType: jwt.AccessToken, wantErr: jwt.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token, tt.tokenType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrInvalidScheme)
}
