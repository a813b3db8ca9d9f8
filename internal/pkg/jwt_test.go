package pkg_test

import (
	"testing"

	"Simple_Twitter/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := pkg.GeneratePair(42, "user")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "access", claims.Subject)
}

func TestParseAccessRejectsRefreshSecret(t *testing.T) {
	pair, err := pkg.GeneratePair(42, "user")
	require.NoError(t, err)

	// refresh token 用的是另一把密钥，access 解析必须拒绝
	_, err = pkg.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	pair, err := pkg.GeneratePair(7, "admin")
	require.NoError(t, err)

	next, err := pkg.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := pkg.ParseAccess(next.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}
