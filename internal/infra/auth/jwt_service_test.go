package auth

import (
	"strings"
	"testing"
	"time"

	"newsbite/config"
	"newsbite/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

func testTokenConfig() *config.Config {
	return &config.Config{SecretKey: testSecret}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)
	require.NotNil(t, svc)

	token, err := svc.Issue("user-42", service.TokenPurposeAccess)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Verify(token, service.TokenPurposeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	issued := time.Now()
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return issued }

	token, err := svc.Issue("user-42", service.TokenPurposeAccess)
	require.NoError(t, err)

	// Still valid just before the 60 minute default lifetime runs out.
	jwtSvc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	subject, err := svc.Verify(token, service.TokenPurposeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", subject)

	// Invalid one minute past expiry.
	jwtSvc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_PurposeMismatch(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	// A reset token must never pass as a verification token, or vice versa.
	resetToken, err := svc.Issue("a@b.com", service.TokenPurposePasswordReset)
	require.NoError(t, err)

	_, err = svc.Verify(resetToken, service.TokenPurposeEmailVerification)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	subject, err := svc.Verify(resetToken, service.TokenPurposePasswordReset)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)

	// Full matrix: each purpose only verifies as itself.
	purposes := []service.TokenPurpose{
		service.TokenPurposeAccess,
		service.TokenPurposeRefresh,
		service.TokenPurposePasswordReset,
		service.TokenPurposeEmailVerification,
	}
	for _, issued := range purposes {
		token, err := svc.Issue("user-42", issued)
		require.NoError(t, err)

		for _, expected := range purposes {
			_, err := svc.Verify(token, expected)
			if issued == expected {
				assert.NoError(t, err, "purpose %s should verify as itself", issued)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidToken,
					"purpose %s must not verify as %s", issued, expected)
			}
		}
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	token, err := svc.Issue("user-42", service.TokenPurposeAccess)
	require.NoError(t, err)

	// Flip one character of the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{SecretKey: "a_completely_different_secret_key"})
	require.NoError(t, err)

	token, err := other.Issue("user-42", service.TokenPurposeAccess)
	require.NoError(t, err)

	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	malformed := []string{
		"",
		"not.a.jwt",
		"clearly-not-a-jwt-token-format",
		"a.b",
		"....",
	}
	for _, token := range malformed {
		_, err := svc.Verify(token, service.TokenPurposeAccess)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q must be rejected", token)
	}
}

func TestJWTService_UnsignedMethodRejected(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "user-42",
		"type": "access",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingExpiryRejected(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-42",
		"type": "access",
		"iat":  time.Now().Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_MissingSubjectRejected(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"type": "access",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_NotBeforeOnFlowTokens(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	issued := time.Now()
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return issued }

	token, err := svc.Issue("a@b.com", service.TokenPurposePasswordReset)
	require.NoError(t, err)

	// A verifier whose clock runs behind the issuer must reject the token.
	jwtSvc.now = func() time.Time { return issued.Add(-2 * time.Minute) }
	_, err = svc.Verify(token, service.TokenPurposePasswordReset)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	jwtSvc.now = func() time.Time { return issued.Add(time.Minute) }
	subject, err := svc.Verify(token, service.TokenPurposePasswordReset)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestJWTService_IssueWithTTL(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	issued := time.Now()
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return issued }

	token, err := svc.IssueWithTTL("user-42", service.TokenPurposeAccess, 5*time.Minute)
	require.NoError(t, err)

	jwtSvc.now = func() time.Time { return issued.Add(4 * time.Minute) }
	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.NoError(t, err)

	jwtSvc.now = func() time.Time { return issued.Add(6 * time.Minute) }
	_, err = svc.Verify(token, service.TokenPurposeAccess)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_IssueRejectsBadInput(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	// Caller mistakes surface as real errors, not as the invalid-token sentinel.
	_, err = svc.Issue("", service.TokenPurposeAccess)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.Issue("user-42", service.TokenPurpose("session"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestJWTService_TTLDefaultsAndOverrides(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Minute*60, svc.TTL(service.TokenPurposeAccess))
	assert.Equal(t, time.Hour*24*7, svc.TTL(service.TokenPurposeRefresh))
	assert.Equal(t, time.Hour, svc.TTL(service.TokenPurposePasswordReset))
	assert.Equal(t, time.Hour*24, svc.TTL(service.TokenPurposeEmailVerification))

	cfg := testTokenConfig()
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 30 * 24 * time.Hour
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.TTL(service.TokenPurposeAccess))
	assert.Equal(t, 30*24*time.Hour, svc.TTL(service.TokenPurposeRefresh))
	assert.Equal(t, time.Hour, svc.TTL(service.TokenPurposePasswordReset))
}
