package partner

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careloop/caregiver-api/internal/kvstore"
	apperrors "github.com/careloop/caregiver-api/pkg/errors"
	"github.com/careloop/caregiver-api/pkg/metrics"
)

// Codes are 6 uppercase hex characters from 3 random bytes, giving a 16.7M
// code space for short-lived out-of-band linking.
const (
	codeBytes     = 3
	codeKeyPrefix = "partner:code:"
)

type Service interface {
	Generate(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, code string) (string, error)
}

type service struct {
	codes   kvstore.Store
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewService creates a partner code service. A zero ttl means codes never
// expire.
func NewService(codes kvstore.Store, ttl time.Duration, m *metrics.Metrics) Service {
	return &service{
		codes:   codes,
		ttl:     ttl,
		metrics: m,
	}
}

func (s *service) Generate(ctx context.Context, userID string) (string, error) {
	code, err := newCode()
	if err != nil {
		return "", apperrors.Internal(err)
	}

	// One retry when the fresh code is already live for another user.
	// Overwriting it would silently re-point that user's code.
	if owner, err := s.codes.Get(ctx, codeKey(code)); err == nil && owner != userID {
		if code, err = newCode(); err != nil {
			return "", apperrors.Internal(err)
		}
	}

	if err := s.codes.Set(ctx, codeKey(code), userID, s.ttl); err != nil {
		return "", apperrors.Internal(err)
	}

	if s.metrics != nil {
		s.metrics.PartnerCodesGenerated.Inc()
	}
	return code, nil
}

func (s *service) Resolve(ctx context.Context, code string) (string, error) {
	userID, err := s.codes.Get(ctx, codeKey(strings.ToUpper(code)))
	if errors.Is(err, kvstore.ErrNotFound) {
		if s.metrics != nil {
			s.metrics.PartnerCodeLookups.WithLabelValues("miss").Inc()
		}
		return "", &apperrors.AppError{
			Code:    apperrors.ErrNotFound,
			Message: "invalid or expired partner code",
			Err:     err,
		}
	}
	if err != nil {
		return "", apperrors.Internal(err)
	}

	if s.metrics != nil {
		s.metrics.PartnerCodeLookups.WithLabelValues("hit").Inc()
	}
	return userID, nil
}

func newCode() (string, error) {
	var b [codeBytes]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("failed to generate partner code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}

func codeKey(code string) string {
	return codeKeyPrefix + code
}
