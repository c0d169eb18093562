package user

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/logx"
)

// Service handles account registration and authentication.
type Service struct {
	repo             userRepository
	jwtSecret        []byte
	tokenTTL         time.Duration
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a user Service.
func NewService(r userRepository, jwtSecret string, tokenTTL, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		repo:             r,
		jwtSecret:        []byte(jwtSecret),
		tokenTTL:         tokenTTL,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register creates a new account with a hashed password.
func (s *Service) Register(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, apperr.ErrInvalid
	}
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, apperr.ErrInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		logx.String("event", "user_registered"),
		logx.String("user_id", u.ID),
		logx.String("role", string(u.Role)),
	)

	return u, nil
}

// Claims are the JWT claims issued at login.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !u.IsActive {
		return "", nil, apperr.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.ErrInvalid
	}

	now := s.now()
	claims := Claims{
		Role: string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

// VerifyToken parses and validates a token, returning its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.ErrInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalid
	}
	return &claims, nil
}

// CreateUserProfile attaches the 1:1 customer profile to a user.
func (s *Service) CreateUserProfile(ctx context.Context, p *domain.UserProfile) error {
	if p == nil || p.UserID == "" || p.FirstName == "" || p.LastName == "" {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CreateUserProfile(ctx, p)
}

// CreateCourierProfile attaches the 1:1 courier profile to a user.
func (s *Service) CreateCourierProfile(ctx context.Context, p *domain.CourierProfile) error {
	if p == nil || p.UserID == "" || p.VehicleType == "" {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CreateCourierProfile(ctx, p)
}
