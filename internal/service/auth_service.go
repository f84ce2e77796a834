package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/cache"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	minPasswordLength      = 6
	minClaimPasswordLength = 8
)

// Identity is the signed-in principal resolved from a session token
type Identity struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	// TokenID identifies the session so it can be revoked
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// IsAdmin reports whether the identity carries the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Session is returned by sign-in style operations
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

// ResetDelivery hands a password reset token to the account owner
type ResetDelivery func(ctx context.Context, email, token string, expiresAt time.Time)

// AuthOptions holds the tunables of AuthService
type AuthOptions struct {
	ResetTTL     time.Duration
	ClaimStatus  models.ProfileStatus
	DeliverReset ResetDelivery
}

// AuthService defines the identity operations of the portal
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*models.Account, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, identity *Identity) error
	Authenticate(ctx context.Context, token string) (*Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ClaimAccount(ctx context.Context, email, password, confirmPassword string) (*Session, error)
	EnsureAdmin(ctx context.Context, email, password, name string) error
	Subscribe(identityID string) (<-chan auth.Event, func())
}

// authService implements AuthService
type authService struct {
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	store       cache.Store
	tokens      *auth.TokenManager
	notifier    *auth.Notifier
	logger      *logger.Logger
	opts        AuthOptions
	now         func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
	store cache.Store,
	tokens *auth.TokenManager,
	notifier *auth.Notifier,
	logger *logger.Logger,
	opts AuthOptions,
) AuthService {
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = time.Hour
	}
	if !opts.ClaimStatus.Valid() {
		opts.ClaimStatus = models.StatusActive
	}
	return &authService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		store:       store,
		tokens:      tokens,
		notifier:    notifier,
		logger:      logger,
		opts:        opts,
		now:         time.Now,
	}
}

func revokedKey(tokenID string) string {
	return cache.Key("auth", "revoked", tokenID)
}

func resetKey(hash string) string {
	return cache.Key("auth", "reset", hash)
}

func validateCredentials(email, password string) error {
	if isEmpty(email) {
		return errcode.New(errcode.AuthMissingEmail)
	}
	if !isValidEmail(email) {
		return errcode.New(errcode.AuthInvalidEmail)
	}
	if password == "" {
		return errcode.New(errcode.AuthMissingPassword)
	}
	return nil
}

// SignUp creates a new sign-in identity
func (s *authService) SignUp(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, errcode.New(errcode.AuthWeakPassword)
	}

	return s.createAccount(ctx, uuid.NewString(), email, password)
}

func (s *authService) createAccount(ctx context.Context, id, email, password string) (*models.Account, error) {
	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, errcode.New(errcode.AuthEmailAlreadyInUse)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.WithError(err).WithField("email", email).Error("Failed to look up account")
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to create account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"identity_id": account.ID,
		"email":       email,
	}).Info("Account created successfully")

	return account, nil
}

// SignIn verifies credentials and issues a session token
func (s *authService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errcode.New(errcode.AuthUserNotFound)
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account.Disabled {
		return nil, errcode.New(errcode.AuthUserDisabled)
	}
	if !auth.CheckPassword(account.PasswordHash, password) {
		s.logger.WithField("identity_id", account.ID).Warn("Sign-in rejected: wrong password")
		return nil, errcode.New(errcode.AuthWrongPassword)
	}

	session, err := s.issueSession(ctx, account)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.TouchSignIn(ctx, account.ID, s.now()); err != nil {
		s.logger.WithError(err).WithField("identity_id", account.ID).Warn("Failed to record sign-in time")
	}

	s.notifier.Publish(auth.Event{
		Type:       auth.EventSignedIn,
		IdentityID: account.ID,
		Email:      account.Email,
		Role:       string(session.Identity.Role),
	})

	s.logger.WithField("identity_id", account.ID).Info("Signed in successfully")

	return session, nil
}

func (s *authService) issueSession(ctx context.Context, account *models.Account) (*Session, error) {
	role := models.RoleMember
	profile, err := s.profileRepo.GetByID(ctx, account.ID)
	switch {
	case err == nil:
		role = profile.Role
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	token, claims, err := s.tokens.Generate(account.ID, account.Email, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Identity: Identity{
			ID:        account.ID,
			Email:     account.Email,
			Role:      role,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		},
	}, nil
}

// SignOut revokes the session until its natural expiry
func (s *authService) SignOut(ctx context.Context, identity *Identity) error {
	if identity == nil || identity.TokenID == "" {
		return errcode.New(errcode.AuthInvalidToken)
	}

	claims := &auth.Claims{}
	if !identity.ExpiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(identity.ExpiresAt)
	}
	ttl := s.tokens.RemainingTTL(claims)
	if ttl == 0 {
		return nil
	}
	if err := s.store.Set(ctx, revokedKey(identity.TokenID), identity.ID, ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("identity_id", identity.ID).Error("Failed to revoke session")
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.notifier.Publish(auth.Event{
		Type:       auth.EventSignedOut,
		IdentityID: identity.ID,
		Email:      identity.Email,
	})

	s.logger.WithField("identity_id", identity.ID).Info("Signed out successfully")
	return nil
}

// Authenticate resolves the current identity from a session token
func (s *authService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, errcode.New(errcode.AuthInvalidToken)
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, errcode.Wrap(errcode.AuthInvalidToken, err)
	}

	if err := s.store.Get(ctx, revokedKey(claims.ID)).Err(); err == nil {
		return nil, errcode.New(errcode.AuthInvalidToken)
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}

	account, err := s.accountRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errcode.New(errcode.AuthInvalidToken)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.Disabled {
		return nil, errcode.New(errcode.AuthUserDisabled)
	}

	return &Identity{
		ID:        account.ID,
		Email:     account.Email,
		Role:      models.Role(claims.Role),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// DeleteIdentity removes an identity again, used when the profile write after sign-up fails
func (s *authService) DeleteIdentity(ctx context.Context, id string) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("identity_id", id).Error("Failed to delete identity")
		return err
	}
	s.logger.WithField("identity_id", id).Info("Identity deleted")
	return nil
}

// RequestPasswordReset stores a hashed one-time token and hands the raw token to DeliverReset
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if isEmpty(email) {
		return errcode.New(errcode.AuthMissingEmail)
	}
	if !isValidEmail(email) {
		return errcode.New(errcode.AuthInvalidEmail)
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errcode.New(errcode.AuthUserNotFound)
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	raw, hashed, err := auth.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	if err := s.store.Set(ctx, resetKey(hashed), account.ID, s.opts.ResetTTL).Err(); err != nil {
		s.logger.WithError(err).WithField("identity_id", account.ID).Error("Failed to store reset token")
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if s.opts.DeliverReset != nil {
		s.opts.DeliverReset(ctx, account.Email, raw, s.now().Add(s.opts.ResetTTL))
	}

	s.logger.WithField("identity_id", account.ID).Info("Password reset requested")
	return nil
}

// ResetPassword consumes a reset token and sets a new password
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return errcode.New(errcode.AuthInvalidResetToken)
	}
	if newPassword == "" {
		return errcode.New(errcode.AuthMissingPassword)
	}
	if len(newPassword) < minClaimPasswordLength {
		return errcode.New(errcode.AuthPasswordTooShort)
	}

	key := resetKey(auth.HashToken(token))
	identityID, err := s.store.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return errcode.New(errcode.AuthInvalidResetToken)
		}
		return fmt.Errorf("failed to read reset token: %w", err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePassword(ctx, identityID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errcode.New(errcode.AuthInvalidResetToken)
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.store.Del(ctx, key).Err(); err != nil {
		s.logger.WithError(err).WithField("identity_id", identityID).Warn("Failed to consume reset token")
	}

	s.notifier.Publish(auth.Event{Type: auth.EventPasswordChanged, IdentityID: identityID})
	s.logger.WithField("identity_id", identityID).Info("Password reset successfully")
	return nil
}

// ClaimAccount creates an identity for a member that is already in the register and signs it in.
// The profile status is set to the configured claim status.
func (s *authService) ClaimAccount(ctx context.Context, email, password, confirmPassword string) (*Session, error) {
	email = normalizeEmail(email)
	if isEmpty(email) {
		return nil, errcode.New(errcode.AuthMissingEmail)
	}
	if !isValidEmail(email) {
		return nil, errcode.New(errcode.AuthInvalidEmail)
	}
	if password == "" || confirmPassword == "" {
		return nil, errcode.New(errcode.ValidationFailed)
	}
	if password != confirmPassword {
		return nil, errcode.New(errcode.AuthPasswordMismatch)
	}
	if len(password) < minClaimPasswordLength {
		return nil, errcode.New(errcode.AuthPasswordTooShort)
	}

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errcode.New(errcode.AuthMemberNotRegistered)
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	if _, err := s.accountRepo.GetByID(ctx, profile.ID); err == nil {
		return nil, errcode.New(errcode.AuthEmailAlreadyInUse)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	account, err := s.createAccount(ctx, profile.ID, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateFields(ctx, profile.ID, map[string]interface{}{
		"status": s.opts.ClaimStatus,
	}); err != nil {
		s.logger.WithError(err).WithField("profile_id", profile.ID).Error("Failed to update claimed profile")
		if delErr := s.DeleteIdentity(ctx, account.ID); delErr != nil {
			s.logger.WithError(delErr).WithField("identity_id", account.ID).Error("Failed to roll back claimed identity")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"profile_id": profile.ID,
		"status":     s.opts.ClaimStatus,
	}).Info("Member account claimed")

	return s.issueSession(ctx, account)
}

// EnsureAdmin creates the bootstrap administrator when it does not exist yet
func (s *authService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		s.logger.Info("No bootstrap admin configured")
		return nil
	}

	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	account, err := s.createAccount(ctx, uuid.NewString(), email, password)
	if err != nil {
		return err
	}

	now := s.now()
	profile := &models.Profile{
		ID:         account.ID,
		Email:      email,
		FullName:   name,
		Role:       models.RoleAdmin,
		Status:     models.StatusApproved,
		Verified:   true,
		ApprovedAt: &now,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		_ = s.accountRepo.Delete(ctx, account.ID)
		return fmt.Errorf("failed to create admin profile: %w", err)
	}

	s.logger.WithField("email", email).Info("Bootstrap admin created")
	return nil
}

// Subscribe streams identity-change events for one identity
func (s *authService) Subscribe(identityID string) (<-chan auth.Event, func()) {
	return s.notifier.Subscribe(identityID)
}
