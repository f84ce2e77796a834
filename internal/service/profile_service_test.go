package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
)

func TestUpdateOwnProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProfileService(env.profiles, env.logger)
	ctx := context.Background()

	member := env.seedProfile(t, "Ahmad", "ahmad@example.com", models.StatusApproved, models.RoleMember, time.Now())

	phone := "0199999999"
	street := "Jalan Puteri 5"
	household := []models.HouseholdRow{{Name: "Siti", Relationship: "Isteri"}, {}}
	tags := []string{"pemilik", "penduduk"}

	detail, err := svc.UpdateOwn(ctx, member.ID, ProfileUpdate{
		Phone:          &phone,
		Street:         &street,
		MembershipTags: &tags,
		Household:      &household,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if detail.Phone != phone || detail.Address.Street != street || detail.FullName != "Ahmad" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if len(detail.MembershipTags) != 2 {
		t.Fatalf("expected tags, got %v", detail.MembershipTags)
	}
	if len(detail.Household.Rows) != 1 || detail.Household.Empty {
		t.Fatalf("expected one household row, got %+v", detail.Household)
	}
	if !detail.Vehicles.Empty {
		t.Fatal("vehicles were not touched and must stay empty")
	}
	if detail.Status != models.StatusApproved {
		t.Fatalf("status must not change, got %s", detail.Status)
	}

	blank := " "
	_, err = svc.UpdateOwn(ctx, member.ID, ProfileUpdate{FullName: &blank})
	assertCode(t, err, errcode.ValidationFailed)

	_, err = svc.GetOwn(ctx, "missing")
	assertCode(t, err, errcode.DataNotFound)
}

type rowFailingProfileRepo struct {
	repository.ProfileRepository
}

func (rowFailingProfileRepo) UpdateWithRows(ctx context.Context, id string, fields map[string]interface{}, household []models.HouseholdMember, vehicles []models.Vehicle) error {
	return errors.New("database is down")
}

func TestUpdateOwnProfileWritesNothingWhenRowsFail(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProfileService(rowFailingProfileRepo{env.profiles}, env.logger)
	ctx := context.Background()

	member := env.seedProfile(t, "Ahmad", "ahmad@example.com", models.StatusApproved, models.RoleMember, time.Now())

	name := "Ahmad Bin Ali"
	vehicles := []models.VehicleRow{{Model: "Myvi", PlateNumber: "WXY1234"}}
	if _, err := svc.UpdateOwn(ctx, member.ID, ProfileUpdate{FullName: &name, Vehicles: &vehicles}); err == nil {
		t.Fatal("expected update to fail")
	}

	got, err := env.profiles.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.FullName != "Ahmad" || len(got.Vehicles) != 0 {
		t.Fatalf("profile must be left untouched, got %q with %d vehicles", got.FullName, len(got.Vehicles))
	}
}
