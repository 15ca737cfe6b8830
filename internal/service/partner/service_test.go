package partner

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/caregiver-api/internal/kvstore"
	apperrors "github.com/careloop/caregiver-api/pkg/errors"
)

var codePattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func newTestService() Service {
	return NewService(kvstore.NewMemoryStore(), 0, nil)
}

func TestGenerateCodeShape(t *testing.T) {
	svc := newTestService()

	code, err := svc.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Regexp(t, codePattern, code)
}

func TestGenerateDistinctCodes(t *testing.T) {
	svc := newTestService()

	first, err := svc.Generate(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both codes stay live and resolve to the same user
	userID, err := svc.Resolve(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = svc.Resolve(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestResolveUnknownCode(t *testing.T) {
	svc := newTestService()

	_, err := svc.Resolve(context.Background(), "ABCDEF")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	svc := newTestService()

	code, err := svc.Generate(context.Background(), "user-2")
	require.NoError(t, err)

	userID, err := svc.Resolve(context.Background(), strings.ToLower(code))
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}
