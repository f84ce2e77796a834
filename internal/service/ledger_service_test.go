package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"strata-be-svc/internal/config"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"

	"github.com/xuri/excelize/v2"
)

func ledgerConfig() config.LedgerConfig {
	return config.LedgerConfig{
		MonthlyFee:      100,
		CutoffYear:      2025,
		PaymentBaseURL:  "https://toyyibpay.com",
		FirstLedgerYear: 2022,
	}
}

func TestPaymentURL(t *testing.T) {
	tests := []struct {
		year, month int
		want        string
	}{
		{2024, 6, "https://toyyibpay.com/Sekuriti-Jun-24"},
		{2023, 3, "https://toyyibpay.com/Sekuriti-Mar-23"},
		{2022, 8, "https://toyyibpay.com/Sekuriti-Aug-22"},
		{2024, 12, "https://toyyibpay.com/Sekuriti-Dec-24"},
		{2024, 13, ""},
	}
	for _, tt := range tests {
		if got := PaymentURL("https://toyyibpay.com/", tt.year, tt.month); got != tt.want {
			t.Errorf("PaymentURL(%d, %d) = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if MonthName(3) != "Mac" || MonthName(8) != "Agustus" || MonthName(12) != "Disember" {
		t.Fatal("unexpected Malay month names")
	}
}

func seedLedgerYear(t *testing.T, env *testEnv, svc LedgerService, profileID string, year int, outstanding ...int) {
	t.Helper()
	ctx := context.Background()
	for month := 1; month <= 12; month++ {
		if _, err := svc.BulkCreate(ctx, month, year, []string{profileID}); err != nil {
			t.Fatalf("bulk create month %d: %v", month, err)
		}
	}

	fees, err := env.fees.ListByProfileYear(ctx, profileID, year)
	if err != nil {
		t.Fatalf("list fees: %v", err)
	}
	unpaid := make(map[int]bool)
	for _, m := range outstanding {
		unpaid[m] = true
	}
	var paid []uint
	for _, fee := range fees {
		if !unpaid[fee.Month] {
			paid = append(paid, fee.ID)
		}
	}
	if _, err := svc.ConfirmPayment(ctx, paid); err != nil {
		t.Fatalf("confirm: %v", err)
	}
}

func TestMemberLedger(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.fees, env.profiles, ledgerConfig(), env.logger)
	ctx := context.Background()

	member := env.seedProfile(t, "Ahmad", "ahmad@example.com", models.StatusApproved, models.RoleMember, time.Now())
	seedLedgerYear(t, env, svc, member.ID, 2024, 6, 9, 11)

	ledger, err := svc.MemberLedger(ctx, member.ID, 2024, "")
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if ledger.Filter != LedgerFilterAll || len(ledger.Entries) != 12 {
		t.Fatalf("expected 12 entries under semua, got %d (%s)", len(ledger.Entries), ledger.Filter)
	}
	if s := ledger.Summary; s == nil || s.Completed != 9 || s.Outstanding != 3 || s.OutstandingAmount != 300 || s.OutstandingLabel != "RM 300" {
		t.Fatalf("unexpected summary: %+v", ledger.Summary)
	}

	outstanding, err := svc.MemberLedger(ctx, member.ID, 2024, "tertunggak")
	if err != nil {
		t.Fatalf("filtered ledger: %v", err)
	}
	if len(outstanding.Entries) != 3 {
		t.Fatalf("expected 3 outstanding entries, got %d", len(outstanding.Entries))
	}
	june := outstanding.Entries[0]
	if june.No != 6 || june.MonthName != "Jun" || june.Label != "TERTUNGGAK" || june.PaymentURL != "https://toyyibpay.com/Sekuriti-Jun-24" {
		t.Fatalf("unexpected June entry: %+v", june)
	}
	if outstanding.Summary.Completed != 9 {
		t.Fatal("summary must cover the whole year regardless of the filter")
	}

	paid, err := svc.MemberLedger(ctx, member.ID, 2024, "selesai")
	if err != nil {
		t.Fatalf("paid ledger: %v", err)
	}
	for _, e := range paid.Entries {
		if e.PaymentURL != "" {
			t.Fatalf("paid entry must not carry a payment link: %+v", e)
		}
	}

	empty, err := svc.MemberLedger(ctx, member.ID, 2023, "")
	if err != nil {
		t.Fatalf("empty year: %v", err)
	}
	if !empty.Empty || len(empty.Entries) != 0 {
		t.Fatalf("expected empty marker, got %+v", empty)
	}

	_, err = svc.MemberLedger(ctx, member.ID, 2024, "lain")
	assertCode(t, err, errcode.ValidationFailed)
}

func TestMemberLedgerNumbersEntriesByMonth(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.fees, env.profiles, ledgerConfig(), env.logger)
	ctx := context.Background()

	member := env.seedProfile(t, "Siti", "siti@example.com", models.StatusApproved, models.RoleMember, time.Now())
	for month := 8; month <= 12; month++ {
		if _, err := svc.BulkCreate(ctx, month, 2022, []string{member.ID}); err != nil {
			t.Fatalf("bulk create month %d: %v", month, err)
		}
	}

	ledger, err := svc.MemberLedger(ctx, member.ID, 2022, "")
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if len(ledger.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(ledger.Entries))
	}
	for _, e := range ledger.Entries {
		if e.No != e.Month {
			t.Fatalf("entry for month %d numbered %d", e.Month, e.No)
		}
	}
	if first := ledger.Entries[0]; first.No != 8 || first.MonthName != "Agustus" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
}

func TestMemberLedgerFromCutoffYear(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.fees, env.profiles, ledgerConfig(), env.logger)

	ledger, err := svc.MemberLedger(context.Background(), "any", 2025, "")
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if ledger.Summary != nil || len(ledger.Entries) != 0 || len(ledger.Notice) != 3 {
		t.Fatalf("expected only the notice, got %+v", ledger)
	}
	if ledger.Notice[1] != "Untuk 2025 keatas, perlu melalui aplikasi JagaApp 2.0." {
		t.Fatalf("unexpected notice %q", ledger.Notice[1])
	}
	if ledger.Notice[2] != "Link ToyyibPay hanya untuk backdated payment sahaja (Aug 2022 - Dec 2024)" {
		t.Fatalf("unexpected notice %q", ledger.Notice[2])
	}
}

func TestBulkCreateSkipsExistingAndBillsApprovedMembers(t *testing.T) {
	env := newTestEnv(t)
	svc := NewLedgerService(env.fees, env.profiles, ledgerConfig(), env.logger)
	ctx := context.Background()
	now := time.Now()

	approved := env.seedProfile(t, "Ahmad", "ahmad@example.com", models.StatusApproved, models.RoleMember, now)
	env.seedProfile(t, "Siti", "siti@example.com", models.StatusApproved, models.RoleMember, now)
	env.seedProfile(t, "Baru", "baru@example.com", models.StatusPending, models.RoleMember, now)
	env.seedProfile(t, "Pentadbir", "admin@example.com", models.StatusApproved, models.RoleAdmin, now)

	if _, err := svc.BulkCreate(ctx, 5, 2024, []string{approved.ID}); err != nil {
		t.Fatalf("bulk create single: %v", err)
	}

	result, err := svc.BulkCreate(ctx, 5, 2024, nil)
	if err != nil {
		t.Fatalf("bulk create all: %v", err)
	}
	if result.Requested != 2 || result.Created != 1 || result.Skipped != 1 {
		t.Fatalf("unexpected bulk result: %+v", result)
	}

	_, err = svc.BulkCreate(ctx, 13, 2024, nil)
	assertCode(t, err, errcode.ValidationFailed)

	_, err = svc.ConfirmPayment(ctx, nil)
	assertCode(t, err, errcode.ValidationFailed)

	entries, err := svc.ListYear(ctx, 2024, "tertunggak")
	if err != nil {
		t.Fatalf("list year: %v", err)
	}
	if len(entries) != 2 || entries[0].FullName == "" {
		t.Fatalf("expected 2 outstanding entries with member names, got %+v", entries)
	}

	data, filename, err := svc.ExportYear(ctx, 2024, "")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filename == "" {
		t.Fatal("expected a file name")
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Kutipan Sekuriti")
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
}
