package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

const issuer = "sales-analytics-api"

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(subject, role string, ttl time.Duration) (string, error)
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// IssueToken signs an HS256 token for subject. A zero ttl uses the configured
// token lifetime.
func (s *Service) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "subject is required")
	}
	if role != domain.RoleAdmin && role != domain.RoleViewer {
		return "", NewSubjectAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, subject, role)
	}
	if s.cfg.Secret == "" {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}
	if ttl <= 0 {
		ttl = s.cfg.TokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", NewSubjectAuthError(err, apiErrors.ErrInternalServer, subject, "signing token")
	}

	logrus.WithFields(logrus.Fields{
		"user_subject": subject,
		"user_role":    role,
		"expires_at":   claims.ExpiresAt.Time,
	}).Info("auth: token issued")

	return token, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(fmt.Errorf("%w: %w", ErrExpiredToken, err), apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(fmt.Errorf("%w: %w", ErrInvalidToken, err), apiErrors.ErrInvalidToken, "")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	if claims.Role != domain.RoleAdmin && claims.Role != domain.RoleViewer {
		return nil, NewSubjectAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, claims.Subject, claims.Role)
	}

	return claims, nil
}
