package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeshare_manager/internal/model"
	"timeshare_manager/internal/repository"
	"timeshare_manager/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// invalidCredentialMessage is shared by the unknown-user and wrong-password
// exits of Login so the two failures are indistinguishable to the caller.
const invalidCredentialMessage = "Invalid Credential"

// AuthService provides authentication and role management. Expected failures
// (unknown user, wrong password, duplicate username, weak password) come back
// inside the AuthResult; returned errors are infrastructure failures only.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.AuthResult, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error)
	GrantRole(ctx context.Context, username string, role model.Role) (*model.AuthResult, error)
	SeedRoles(ctx context.Context) (*model.AuthResult, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (*model.AuthResult, error)
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtUtil  *utils.JWTUtil
	policy   utils.PasswordPolicy
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtUtil *utils.JWTUtil, policy utils.PasswordPolicy, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		jwtUtil:  jwtUtil,
		policy:   policy,
		logger:   logger.Named("AuthService"),
	}
}

func invalidCredentialResult() *model.AuthResult {
	return &model.AuthResult{
		Succeeded: false,
		Kind:      model.OutcomeInvalidCredential,
		Message:   invalidCredentialMessage,
	}
}

// Login verifies credentials and issues a signed token carrying the user's
// current role memberships.
func (s *authService) Login(ctx context.Context, username, password string) (*model.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		s.logger.Debug("login rejected", zap.String("reason", "unknown username"))
		return invalidCredentialResult(), nil
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.logger.Debug("login rejected", zap.String("reason", "wrong password"), zap.String("user_id", user.ID))
		return invalidCredentialResult(), nil
	}

	roles, err := s.roleRepo.RolesForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error collecting user roles: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return &model.AuthResult{
		Succeeded: true,
		Kind:      model.OutcomeOK,
		Message:   "Login successful",
		Token:     token,
	}, nil
}

// Register creates a new user account with a fresh security stamp and the
// default USER role.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return &model.AuthResult{
			Succeeded: false,
			Kind:      model.OutcomeAlreadyExists,
			Message:   "Username already exists",
		}, nil
	}

	if reasons := s.policy.Validate(req.Password); len(reasons) > 0 {
		return &model.AuthResult{
			Succeeded: false,
			Kind:      model.OutcomeValidationFailed,
			Message:   "User creation failed",
			Errors:    reasons,
		}, nil
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PasswordHash:  hashedPassword,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique index caught a concurrent registration for the same name
		if errors.Is(err, repository.ErrDuplicate) {
			return &model.AuthResult{
				Succeeded: false,
				Kind:      model.OutcomeAlreadyExists,
				Message:   "Username already exists",
			}, nil
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	if err := s.roleRepo.AddToUser(ctx, user.ID, model.RoleUser); err != nil {
		return nil, fmt.Errorf("failed to assign default role: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return &model.AuthResult{
		Succeeded: true,
		Kind:      model.OutcomeOK,
		Message:   "User created successfully",
	}, nil
}

// GrantRole adds a role to an existing user. One parameterized operation
// covers the admin, owner and staff grants.
func (s *authService) GrantRole(ctx context.Context, username string, role model.Role) (*model.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return &model.AuthResult{
			Succeeded: false,
			Kind:      model.OutcomeNotFound,
			Message:   "Invalid Username",
		}, nil
	}

	if err := s.roleRepo.AddToUser(ctx, user.ID, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return &model.AuthResult{
				Succeeded: false,
				Kind:      model.OutcomeNotFound,
				Message:   "Role not found",
			}, nil
		}
		return nil, fmt.Errorf("failed to add role to user: %w", err)
	}

	s.logger.Info("role granted", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return &model.AuthResult{
		Succeeded: true,
		Kind:      model.OutcomeOK,
		Message:   fmt.Sprintf("User is %s", role),
	}, nil
}

// SeedRoles creates any of the fixed roles that do not exist yet. Safe to
// call repeatedly; each role is checked and created individually.
func (s *authService) SeedRoles(ctx context.Context) (*model.AuthResult, error) {
	created := 0
	for _, role := range model.AllRoles() {
		exists, err := s.roleRepo.RoleExists(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("failed to check role existence: %w", err)
		}
		if exists {
			continue
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			// A concurrent seeder created it first
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return nil, fmt.Errorf("failed to create role: %w", err)
		}
		created++
	}

	if created == 0 {
		return &model.AuthResult{
			Succeeded: true,
			Kind:      model.OutcomeAlreadySeeded,
			Message:   "Roles seeding is already done",
		}, nil
	}

	s.logger.Info("roles seeded", zap.Int("created", created))
	return &model.AuthResult{
		Succeeded: true,
		Kind:      model.OutcomeOK,
		Message:   "Roles seeding done successfully",
	}, nil
}

// ChangePassword verifies the current password, applies the password policy
// to the new one and rotates the security stamp.
func (s *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (*model.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return invalidCredentialResult(), nil
	}

	if reasons := s.policy.Validate(newPassword); len(reasons) > 0 {
		return &model.AuthResult{
			Succeeded: false,
			Kind:      model.OutcomeValidationFailed,
			Message:   "Password change failed",
			Errors:    reasons,
		}, nil
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword, uuid.NewString()); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", zap.String("user_id", user.ID))
	return &model.AuthResult{
		Succeeded: true,
		Kind:      model.OutcomeOK,
		Message:   "Password changed successfully",
	}, nil
}
