package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrTokenGeneration = errors.New("failed to generate session token")
	ErrInvalidToken    = errors.New("invalid session token")
	ErrTokenExpired    = errors.New("session token has expired")
)

// SessionToken is handed to the client when a coach session starts.
type SessionToken struct {
	Token     string    `json:"token"`
	SessionID string    `json:"sessionId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionService issues and verifies the signed handles of coach sessions.
// There are no user accounts: the token only names an in-memory session.
type SessionService interface {
	StartSession(ctx context.Context) (*SessionToken, error)
	ParseToken(tokenString string) (sessionID string, err error)
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type sessionService struct {
	coach         CoachService
	jwtSecret     string
	jwtExpiration time.Duration
	now           func() time.Time
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(coachService CoachService, jwtSecret string, jwtExpiration time.Duration) SessionService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 12 * time.Hour
	}
	return &sessionService{
		coach:         coachService,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		now:           time.Now,
	}
}

func (s *sessionService) StartSession(ctx context.Context) (*SessionToken, error) {
	sessionID, err := s.coach.OpenSession(ctx)
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.jwtExpiration)
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    "fitness-coach",
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &SessionToken{Token: signed, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

func (s *sessionService) ParseToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
