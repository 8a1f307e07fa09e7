package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionLifetimeHours = 24
	BcryptCost           = 10
)

// CredentialsMessage is attached to the email field when a login
// attempt does not match a stored user/password pair.
const CredentialsMessage = "Sorry, those credentials do not match."

type AuthService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	jwtSecret    string
	jwtAlgorithm string
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	jwtAlgorithm string,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		jwtSecret:    jwtSecret,
		jwtAlgorithm: jwtAlgorithm,
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Login verifies the credentials and establishes a fresh session. Any
// session presented with the request is destroyed first, so the
// post-login identifier never equals a pre-login one (fixation
// mitigation). On a credential mismatch the error sits on the email
// field and no session state changes.
func (s *AuthService) Login(ctx context.Context, email, password, currentToken string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", NewValidationError(map[string]string{"email": CredentialsMessage})
	}

	if !s.VerifyPassword(password, user.Password) {
		return nil, "", NewValidationError(map[string]string{"email": CredentialsMessage})
	}

	if currentToken != "" {
		if sessionID, err := s.parseToken(currentToken); err == nil {
			_ = s.sessionRepo.Delete(ctx, sessionID)
		}
	}

	_, token, err := s.StartSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// StartSession creates a session for the user and returns it with its
// signed token. Also used right after registration.
func (s *AuthService) StartSession(ctx context.Context, userID int64) (*domain.Session, string, error) {
	session := domain.NewSession(userID, SessionLifetimeHours*time.Hour)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	// Clean up expired sessions
	_ = s.sessionRepo.DeleteExpired(ctx)

	token, err := s.signToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

// Logout deletes the session behind the token. A bad token is not an
// error; the session is gone either way.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Authenticate resolves a session token to its user. The database
// session row stays authoritative: a deleted or expired session fails
// even when the token signature still verifies.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid session token: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown session")
	}

	if session.IsExpired() {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return nil, nil, fmt.Errorf("session expired")
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("session user not found")
	}

	return user, session, nil
}

// sessionClaims wraps the server-side session id in a signed token.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			NotBefore: jwt.NewNumericDate(session.CreatedAt),
			Issuer:    "jobboard",
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.jwtAlgorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (string, error) {
	algorithm := s.jwtAlgorithm
	if algorithm == "" {
		algorithm = "HS256"
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != algorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.SessionID, nil
}
