package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/cache/cachetest"
	"strata-be-svc/internal/database/dbtest"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/internal/storage"
	"strata-be-svc/pkg/logger"

	"github.com/google/uuid"
)

type resetMail struct {
	email string
	token string
}

type testEnv struct {
	accounts      repository.AccountRepository
	profiles      repository.ProfileRepository
	announcements repository.AnnouncementRepository
	fees          repository.SecurityFeeRepository
	contacts      repository.ContactRepository
	drafts        repository.DraftRepository
	store         *cachetest.MemoryStore
	uploader      *storage.LocalUploader
	notifier      *auth.Notifier
	tokens        *auth.TokenManager
	logger        *logger.Logger
	auth          AuthService
	resets        []resetMail
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := dbtest.NewSQLiteMemory()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	uploader, err := storage.NewLocalUploader(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("uploader: %v", err)
	}

	env := &testEnv{
		accounts:      repository.NewAccountRepository(db.DB),
		profiles:      repository.NewProfileRepository(db.DB),
		announcements: repository.NewAnnouncementRepository(db.DB),
		fees:          repository.NewSecurityFeeRepository(db.DB),
		contacts:      repository.NewContactRepository(db.DB),
		store:         cachetest.NewMemoryStore(),
		uploader:      uploader,
		notifier:      auth.NewNotifier(4),
		tokens:        auth.NewTokenManager(strings.Repeat("s", 32), time.Hour),
		logger:        logger.NewNopLogger(),
	}
	env.drafts = repository.NewDraftRepository(env.store)
	env.auth = NewAuthService(env.accounts, env.profiles, env.store, env.tokens, env.notifier, env.logger, AuthOptions{
		ResetTTL:    time.Hour,
		ClaimStatus: models.StatusActive,
		DeliverReset: func(ctx context.Context, email, token string, expiresAt time.Time) {
			env.resets = append(env.resets, resetMail{email: email, token: token})
		},
	})
	return env
}

func (e *testEnv) seedProfile(t *testing.T, name, email string, status models.ProfileStatus, role models.Role, createdAt time.Time) *models.Profile {
	t.Helper()
	p := &models.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  name,
		Status:    status,
		Role:      role,
		CreatedAt: createdAt,
	}
	if err := e.profiles.Create(context.Background(), p); err != nil {
		t.Fatalf("seed profile %s: %v", email, err)
	}
	return p
}

func assertCode(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %q, got nil", want)
	}
	if got := errcode.CodeOf(err); got != want {
		t.Fatalf("expected code %q, got %q (%v)", want, got, err)
	}
}

// pdfBytes is a minimal document mimetype sniffs as application/pdf
func pdfBytes(size int) []byte {
	head := []byte("%PDF-1.4\n")
	if size < len(head) {
		size = len(head)
	}
	data := make([]byte, size)
	copy(data, head)
	return data
}

// pngBytes starts with the PNG signature
func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
}
