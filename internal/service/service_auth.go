package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength mirrors the persistence-level minimum of the original
// schema.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and JWT token lifecycle
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new tenant account from a public registration request.
//
// Returns the persisted user (password hash cleared) or:
//   - ErrInvalidDataProvided on missing fields or a short password.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.ShopName == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(req.Password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}
	if req.MonthlyRent < 0 {
		return models.User{}, fmt.Errorf("%w: monthly rent must be non-negative", ErrInvalidDataProvided)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	dueDay := req.DueDay
	if dueDay == 0 {
		dueDay = 5
	}

	user := models.User{
		ID:           utils.NewID(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Phone:        req.Phone,
		ShopName:     req.ShopName,
		MonthlyRent:  req.MonthlyRent,
		DueDay:       dueDay,
		Role:         models.RoleUser,
		Status:       models.UserActive,
	}

	registered, err := a.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	registered.PasswordHash = ""
	return registered, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record (password hash cleared) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword when the account is unknown or the password does not
//     match; the two cases are deliberately indistinguishable to callers.
//   - ErrAccountInactive when the account has been deactivated.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.GetByEmailWithPassword(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Str("id", found.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if found.Status != models.UserActive {
		return models.User{}, ErrAccountInactive
	}

	found.PasswordHash = ""
	return found, nil
}

// UpdatePassword verifies the acting user's current password and replaces
// it with a freshly hashed new one.
func (a *authService) UpdatePassword(ctx context.Context, acting models.User, req models.UpdatePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.CurrentPassword == "" || len(req.NewPassword) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: new password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	withPassword, err := a.userRepository.GetByEmailWithPassword(ctx, acting.Email)
	if err != nil {
		log.Err(err).Str("id", acting.ID).Msg("user lookup for password change failed")
		return models.User{}, fmt.Errorf("user lookup for password change failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(withPassword.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, acting.ID, string(hash)); err != nil {
		log.Err(err).Str("id", acting.ID).Msg("password update failed")
		return models.User{}, fmt.Errorf("password update failed: %w", err)
	}

	acting.PasswordHash = ""
	return acting, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Identity validates a raw JWT string and resolves it to an active account.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid. An unknown subject surfaces as
// store.ErrUserNotFound and a deactivated account as ErrAccountInactive, so
// the middleware can distinguish 401 from 403.
func (a *authService) Identity(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.GetByID(ctx, token.UserID)
	if err != nil {
		return models.User{}, err
	}

	if user.Status != models.UserActive {
		return models.User{}, ErrAccountInactive
	}

	return user, nil
}

// EnsureSeedAdmin creates the bootstrap admin account from seed unless a
// user with that email already exists. A seed without an email is a no-op.
func (a *authService) EnsureSeedAdmin(ctx context.Context, seed config.Seed) error {
	log := logger.FromContext(ctx)

	if seed.Email == "" {
		return nil
	}

	_, err := a.userRepository.GetByEmailWithPassword(ctx, seed.Email)
	if err == nil {
		log.Info().Str("email", seed.Email).Msg("seed admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("seed admin lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing seed admin password failed: %w", err)
	}

	dueDay := seed.DueDay
	if dueDay == 0 {
		dueDay = 5
	}

	admin := models.User{
		ID:           utils.NewID(),
		Name:         seed.Name,
		Email:        strings.ToLower(strings.TrimSpace(seed.Email)),
		PasswordHash: string(hash),
		Phone:        seed.Phone,
		ShopName:     seed.ShopName,
		MonthlyRent:  seed.MonthlyRent,
		DueDay:       dueDay,
		Role:         models.RoleAdmin,
		Status:       models.UserActive,
	}

	if _, err := a.userRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin creation failed: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("seed admin created")
	return nil
}
