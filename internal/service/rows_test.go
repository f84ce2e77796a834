package service

import (
	"testing"

	"strata-be-svc/internal/models"
)

func TestRemoveRowKeepsAtLeastOne(t *testing.T) {
	rows := []models.HouseholdRow{{Name: "Ali"}}

	rows, removed := removeRow(rows, 1)
	if removed || len(rows) != 1 {
		t.Fatalf("removing the only row must be a no-op, got removed=%v len=%d", removed, len(rows))
	}

	numbered := numberRows(rows)
	if numbered[0].No != 1 || numbered[0].Removable {
		t.Fatalf("single row must be numbered 1 and not removable: %+v", numbered[0])
	}
}

func TestRemoveRowRenumbers(t *testing.T) {
	rows := []models.VehicleRow{{Model: "Myvi"}, {Model: "Axia"}, {Model: "Bezza"}}

	rows, removed := removeRow(rows, 2)
	if !removed {
		t.Fatal("expected row to be removed")
	}

	numbered := numberRows(rows)
	if len(numbered) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(numbered))
	}
	for i, row := range numbered {
		if row.No != i+1 || !row.Removable {
			t.Fatalf("row %d: %+v", i, row)
		}
	}
	if numbered[1].Row.Model != "Bezza" {
		t.Fatalf("expected Bezza to move up, got %s", numbered[1].Row.Model)
	}

	if _, removed := removeRow(rows, 9); removed {
		t.Fatal("unknown row number must not remove anything")
	}
}

func TestToHouseholdMembersDropsBlankRows(t *testing.T) {
	members := toHouseholdMembers([]models.HouseholdRow{
		{Name: "  "},
		{Name: "Siti", Relationship: "Isteri"},
		{},
		{Name: "Amin", Relationship: "Anak"},
	})

	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Position != 1 || members[0].Name != "Siti" || members[1].Position != 2 {
		t.Fatalf("unexpected members: %+v", members)
	}
}
