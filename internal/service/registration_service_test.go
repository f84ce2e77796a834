package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
)

type failingProfileRepo struct {
	repository.ProfileRepository
}

func (failingProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	return errors.New("database is down")
}

func newRegistrationService(env *testEnv) RegistrationService {
	return NewRegistrationService(env.auth, env.profiles, env.drafts, env.uploader, env.logger, time.Hour)
}

func validRegistration() *RegistrationInput {
	return &RegistrationInput{
		Email:      "ahmad@example.com",
		Password:   "rahsia123",
		FullName:   "Ahmad Bin Ali",
		NationalID: "800101-14-5555",
		Phone:      "0123456789",
		Address:    models.Address{HouseNo: "12A", Street: "Jalan Puteri 1"},
		Household: []models.HouseholdRow{
			{Name: "Siti", Relationship: "Isteri", Phone: "0198765432"},
			{},
		},
		Vehicles: []models.VehicleRow{{}, {Model: "Myvi", PlateNumber: "WXY1234"}},
	}
}

func TestRegisterCreatesPendingProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := newRegistrationService(env)
	ctx := context.Background()

	input := validRegistration()
	input.Document = &DocumentUpload{FileName: "bil air.pdf", Data: pdfBytes(2048)}

	profile, err := svc.Register(ctx, input)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if profile.Status != models.StatusPending || profile.Role != models.RoleMember || profile.Verified {
		t.Fatalf("unexpected moderation state: status=%s role=%s verified=%v", profile.Status, profile.Role, profile.Verified)
	}
	if len(profile.Household) != 1 || profile.Household[0].Position != 1 {
		t.Fatalf("expected one numbered household row, got %+v", profile.Household)
	}
	if len(profile.Vehicles) != 1 || profile.Vehicles[0].PlateNumber != "WXY1234" || profile.Vehicles[0].Position != 1 {
		t.Fatalf("expected one numbered vehicle row, got %+v", profile.Vehicles)
	}
	if !profile.HasDocument() || profile.Document.MimeType != "application/pdf" {
		t.Fatalf("expected pdf document, got %+v", profile.Document)
	}
	if !strings.HasPrefix(profile.Document.URL, "/uploads/documents/"+profile.ID+"/") {
		t.Fatalf("unexpected document url %q", profile.Document.URL)
	}

	stored := filepath.Join(env.uploader.Dir(), "documents", profile.ID, "bil air.pdf")
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("document not written: %v", err)
	}

	if _, err := env.auth.SignIn(ctx, "ahmad@example.com", "rahsia123"); err != nil {
		t.Fatalf("registered member cannot sign in: %v", err)
	}
}

func TestRegisterValidatesBeforeAnyWrite(t *testing.T) {
	env := newTestEnv(t)
	svc := newRegistrationService(env)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*RegistrationInput)
		want   string
	}{
		{"missing name", func(in *RegistrationInput) { in.FullName = " " }, errcode.RegistrationIncomplete},
		{"malformed email", func(in *RegistrationInput) { in.Email = "ahmad" }, errcode.AuthInvalidEmail},
		{"weak password", func(in *RegistrationInput) { in.Password = "123" }, errcode.AuthWeakPassword},
		{"word document", func(in *RegistrationInput) {
			in.Document = &DocumentUpload{FileName: "borang.docx", Data: []byte("PK\x03\x04 not a pdf")}
		}, errcode.DocumentInvalidType},
		{"oversized document", func(in *RegistrationInput) {
			in.Document = &DocumentUpload{FileName: "besar.pdf", Data: pdfBytes(int(MaxDocumentSize) + 1)}
		}, errcode.DocumentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegistration()
			tt.mutate(input)

			_, err := svc.Register(ctx, input)
			assertCode(t, err, tt.want)

			if _, err := env.accounts.GetByEmail(ctx, "ahmad@example.com"); !errors.Is(err, repository.ErrNotFound) {
				t.Fatalf("no identity may be created on validation failure, got %v", err)
			}
		})
	}
}

func TestRegisterRejectsKnownEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newRegistrationService(env)

	env.seedProfile(t, "Ahmad Lama", "ahmad@example.com", models.StatusPending, models.RoleMember, time.Now())

	_, err := svc.Register(context.Background(), validRegistration())
	assertCode(t, err, errcode.AuthEmailAlreadyInUse)
}

func TestRegisterRollsBackIdentityWhenProfileWriteFails(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRegistrationService(env.auth, failingProfileRepo{env.profiles}, env.drafts, env.uploader, env.logger, time.Hour)
	ctx := context.Background()

	input := validRegistration()
	input.Document = &DocumentUpload{FileName: "bil.pdf", Data: pdfBytes(512)}

	if _, err := svc.Register(ctx, input); err == nil {
		t.Fatal("expected registration to fail")
	}

	if _, err := env.accounts.GetByEmail(ctx, "ahmad@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("identity should have been removed, got %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(env.uploader.Dir(), "documents"))
	if err == nil {
		for _, dir := range entries {
			files, _ := os.ReadDir(filepath.Join(env.uploader.Dir(), "documents", dir.Name()))
			if len(files) > 0 {
				t.Fatalf("orphaned document left in %s", dir.Name())
			}
		}
	}
}

func TestDraftRowEditing(t *testing.T) {
	env := newTestEnv(t)
	svc := newRegistrationService(env)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if len(draft.Household) != 1 || draft.Household[0].Removable {
		t.Fatalf("new draft must have one non-removable household row: %+v", draft.Household)
	}

	removal, err := svc.RemoveDraftRow(ctx, draft.ID, RowsHousehold, 1)
	if err != nil {
		t.Fatalf("remove only row: %v", err)
	}
	if removal.Removed || len(removal.Draft.Household) != 1 {
		t.Fatalf("removing the only row must be a no-op: %+v", removal)
	}

	draft, err = svc.AddDraftRow(ctx, draft.ID, RowsHousehold)
	if err != nil {
		t.Fatalf("add row: %v", err)
	}
	if len(draft.Household) != 2 || !draft.Household[0].Removable || draft.Household[1].No != 2 {
		t.Fatalf("unexpected rows after add: %+v", draft.Household)
	}

	if _, err := svc.UpdateHouseholdRow(ctx, draft.ID, 2, models.HouseholdRow{Name: "Amin", Relationship: "Anak"}); err != nil {
		t.Fatalf("update row: %v", err)
	}
	_, err = svc.UpdateHouseholdRow(ctx, draft.ID, 5, models.HouseholdRow{Name: "X"})
	assertCode(t, err, errcode.ValidationFailed)

	removal, err = svc.RemoveDraftRow(ctx, draft.ID, RowsHousehold, 1)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	if !removal.Removed || len(removal.Draft.Household) != 1 {
		t.Fatalf("expected one remaining row: %+v", removal)
	}
	remaining := removal.Draft.Household[0]
	if remaining.No != 1 || remaining.Removable || remaining.Row.Name != "Amin" {
		t.Fatalf("unexpected remaining row: %+v", remaining)
	}

	_, err = svc.AddDraftRow(ctx, draft.ID, RowKind("pets"))
	assertCode(t, err, errcode.DraftInvalidRowKind)

	_, err = svc.GetDraft(ctx, "missing")
	assertCode(t, err, errcode.DraftNotFound)
}

func TestRegisterUsesDraftRows(t *testing.T) {
	env := newTestEnv(t)
	svc := newRegistrationService(env)
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.UpdateVehicleRow(ctx, draft.ID, 1, models.VehicleRow{Model: "Axia", PlateNumber: "ABC123"}); err != nil {
		t.Fatalf("update vehicle: %v", err)
	}

	input := validRegistration()
	input.DraftID = draft.ID
	profile, err := svc.Register(ctx, input)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(profile.Household) != 0 {
		t.Fatalf("draft had only a blank household row, got %+v", profile.Household)
	}
	if len(profile.Vehicles) != 1 || profile.Vehicles[0].Model != "Axia" {
		t.Fatalf("expected vehicle from draft, got %+v", profile.Vehicles)
	}

	_, err = svc.GetDraft(ctx, draft.ID)
	assertCode(t, err, errcode.DraftNotFound)
}
