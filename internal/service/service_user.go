package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
	"golang.org/x/crypto/bcrypt"
)

// Defaults applied when an admin creates a user without supplying the
// optional fields.
const (
	defaultPassword = "user123"
	defaultDueDay   = 5
)

// userService is the concrete implementation of UserService: admin-side
// user management on top of the user repository.
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// List retrieves all users matching the filter, password excluded.
func (s *userService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, filter.Role)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, filter.Status)
	}

	return s.userRepository.List(ctx, filter)
}

// Get retrieves a single user by id, password excluded.
func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

// Create adds a new user from an admin request. A missing password falls
// back to the default, a missing due day to the 5th, a missing role to
// tenant.
//
// Returns store.ErrEmailAlreadyExists when the email is taken.
func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.ShopName == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if req.MonthlyRent < 0 {
		return models.User{}, fmt.Errorf("%w: monthly rent must be non-negative", ErrInvalidDataProvided)
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	if len(password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, role)
	}

	dueDay := req.DueDay
	if dueDay == 0 {
		dueDay = defaultDueDay
	}
	if dueDay < 1 || dueDay > 31 {
		return models.User{}, fmt.Errorf("%w: due date must be between 1 and 31", ErrInvalidDataProvided)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
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
		Role:         role,
		Status:       models.UserActive,
	}

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.PasswordHash = ""
	return created, nil
}

// Update applies the non-nil fields of req to the stored user and returns
// the updated record. Returns store.ErrUserNotFound for an unknown id.
func (s *userService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ShopName != nil {
		user.ShopName = *req.ShopName
	}
	if req.MonthlyRent != nil {
		if *req.MonthlyRent < 0 {
			return models.User{}, fmt.Errorf("%w: monthly rent must be non-negative", ErrInvalidDataProvided)
		}
		user.MonthlyRent = *req.MonthlyRent
	}
	if req.DueDay != nil {
		if *req.DueDay < 1 || *req.DueDay > 31 {
			return models.User{}, fmt.Errorf("%w: due date must be between 1 and 31", ErrInvalidDataProvided)
		}
		user.DueDay = *req.DueDay
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return models.User{}, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, *req.Status)
		}
		user.Status = *req.Status
	}

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the user with the given id. An identity deleting its own
// account is rejected with ErrSelfDelete; an unknown id surfaces as
// store.ErrUserNotFound.
func (s *userService) Delete(ctx context.Context, acting models.User, id string) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.ID == acting.ID {
		return ErrSelfDelete
	}

	if err := s.userRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
