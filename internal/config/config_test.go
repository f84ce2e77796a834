package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLAIM_PROFILE_STATUS", "")
	t.Setenv("LEDGER_CUTOFF_YEAR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Registration.ClaimProfileStatus != "active" {
		t.Errorf("expected claim status active, got %q", cfg.Registration.ClaimProfileStatus)
	}
	if cfg.Ledger.CutoffYear != 2025 {
		t.Errorf("expected cutoff 2025, got %d", cfg.Ledger.CutoffYear)
	}
	if cfg.Ledger.MonthlyFee != 100 {
		t.Errorf("expected monthly fee 100, got %d", cfg.Ledger.MonthlyFee)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MODERATION_STALE_AFTER", "48h")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scheduler.ModerationStaleAfter != 48*time.Hour {
		t.Errorf("unexpected stale after %s", cfg.Scheduler.ModerationStaleAfter)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("unexpected db port %d", cfg.Database.Port)
	}
	if cfg.RateLimit.RequestsPerSecond != 0.5 {
		t.Errorf("unexpected rps %v", cfg.RateLimit.RequestsPerSecond)
	}
	origins := cfg.CORS.Origins()
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", origins)
	}
}

func TestLoadRejectsUnknownClaimStatus(t *testing.T) {
	t.Setenv("CLAIM_PROFILE_STATUS", "verified")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown claim status")
	}
}
