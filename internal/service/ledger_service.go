package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"strata-be-svc/internal/config"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"
)

// Ledger status filters
const (
	LedgerFilterAll         = "semua"
	LedgerFilterPaid        = string(models.FeePaid)
	LedgerFilterOutstanding = string(models.FeeOutstanding)
)

var monthNames = [...]string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Agustus", "September", "Oktober", "November", "Disember",
}

var monthAbbreviations = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the Malay name of a 1-based month
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return monthNames[month-1]
}

// PaymentURL builds the ToyyibPay link of one month, e.g. https://toyyibpay.com/Sekuriti-Jun-24
func PaymentURL(baseURL string, year, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%s/Sekuriti-%s-%02d", strings.TrimRight(baseURL, "/"), monthAbbreviations[month-1], year%100)
}

// LedgerService defines the security fee ledger operations
type LedgerService interface {
	MemberLedger(ctx context.Context, profileID string, year int, filter string) (*response.LedgerResponse, error)
	ListYear(ctx context.Context, year int, filter string) ([]response.FeeEntryResponse, error)
	BulkCreate(ctx context.Context, month, year int, profileIDs []string) (*response.BulkFeeResponse, error)
	ConfirmPayment(ctx context.Context, ids []uint) (*response.ConfirmFeeResponse, error)
	ExportYear(ctx context.Context, year int, filter string) ([]byte, string, error)
}

// ledgerService implements LedgerService
type ledgerService struct {
	feeRepo     repository.SecurityFeeRepository
	profileRepo repository.ProfileRepository
	cfg         config.LedgerConfig
	logger      *logger.Logger
	now         func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	feeRepo repository.SecurityFeeRepository,
	profileRepo repository.ProfileRepository,
	cfg config.LedgerConfig,
	logger *logger.Logger,
) LedgerService {
	return &ledgerService{
		feeRepo:     feeRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func parseLedgerFilter(filter string) (string, *models.FeeStatus, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", LedgerFilterAll:
		return LedgerFilterAll, nil, nil
	case LedgerFilterPaid:
		status := models.FeePaid
		return LedgerFilterPaid, &status, nil
	case LedgerFilterOutstanding:
		status := models.FeeOutstanding
		return LedgerFilterOutstanding, &status, nil
	}
	return "", nil, errcode.New(errcode.ValidationFailed)
}

func statusLabel(status models.FeeStatus) string {
	if status == models.FeePaid {
		return "SELESAI"
	}
	return "TERTUNGGAK"
}

func (s *ledgerService) cutoffNotice() []string {
	return []string{
		fmt.Sprintf("Bayaran masih boleh guna link ToyyibPay untuk Sekuriti %d", s.cfg.CutoffYear),
		fmt.Sprintf("Untuk %d keatas, perlu melalui aplikasi JagaApp 2.0.", s.cfg.CutoffYear),
		fmt.Sprintf("Link ToyyibPay hanya untuk backdated payment sahaja (Aug %d - Dec %d)", s.cfg.FirstLedgerYear, s.cfg.CutoffYear-1),
	}
}

// MemberLedger returns one member's year. Entries keep their month number under any filter
// and the summary always covers the whole year. Years from the cutoff on only carry a notice.
func (s *ledgerService) MemberLedger(ctx context.Context, profileID string, year int, filter string) (*response.LedgerResponse, error) {
	filter, status, err := parseLedgerFilter(filter)
	if err != nil {
		return nil, err
	}

	result := &response.LedgerResponse{
		Year:    year,
		Filter:  filter,
		Entries: []response.LedgerEntryResponse{},
	}

	if year >= s.cfg.CutoffYear {
		result.Empty = true
		result.Notice = s.cutoffNotice()
		return result, nil
	}

	fees, err := s.feeRepo.ListByProfileYear(ctx, profileID, year)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"profile_id": profileID,
			"year":       year,
		}).Error("Failed to load security fees")
		return nil, fmt.Errorf("failed to load security fees: %w", err)
	}

	summary := &response.LedgerSummaryResponse{}
	for _, fee := range fees {
		if fee.Status == models.FeePaid {
			summary.Completed++
		} else {
			summary.Outstanding++
			summary.OutstandingAmount += fee.Amount
		}

		if status != nil && fee.Status != *status {
			continue
		}

		entry := response.LedgerEntryResponse{
			No:        fee.Month,
			Month:     fee.Month,
			MonthName: MonthName(fee.Month),
			Status:    string(fee.Status),
			Label:     statusLabel(fee.Status),
			Amount:    fee.Amount,
		}
		if fee.Status == models.FeeOutstanding {
			entry.PaymentURL = PaymentURL(s.cfg.PaymentBaseURL, fee.Year, fee.Month)
		}
		result.Entries = append(result.Entries, entry)
	}
	summary.OutstandingLabel = fmt.Sprintf("RM %d", summary.OutstandingAmount)

	result.Empty = len(result.Entries) == 0
	result.Summary = summary
	return result, nil
}

func feeEntry(fee *models.SecurityFee) response.FeeEntryResponse {
	entry := response.FeeEntryResponse{
		ID:        fee.ID,
		ProfileID: fee.ProfileID,
		Year:      fee.Year,
		Month:     fee.Month,
		MonthName: MonthName(fee.Month),
		Amount:    fee.Amount,
		Status:    string(fee.Status),
		PaidAt:    fee.PaidAt,
	}
	if fee.Profile != nil {
		entry.FullName = fee.Profile.FullName
		entry.HouseNo = fee.Profile.Address.HouseNo
	}
	return entry
}

// ListYear returns every entry of a year for the admin listing
func (s *ledgerService) ListYear(ctx context.Context, year int, filter string) ([]response.FeeEntryResponse, error) {
	_, status, err := parseLedgerFilter(filter)
	if err != nil {
		return nil, err
	}

	fees, err := s.feeRepo.ListByYear(ctx, year, status)
	if err != nil {
		s.logger.WithError(err).WithField("year", year).Error("Failed to list security fees")
		return nil, fmt.Errorf("failed to list security fees: %w", err)
	}

	out := make([]response.FeeEntryResponse, len(fees))
	for i := range fees {
		out[i] = feeEntry(&fees[i])
	}
	return out, nil
}

// BulkCreate adds outstanding entries for a month. Without explicit members every approved
// member is billed. Periods that already have an entry are skipped.
func (s *ledgerService) BulkCreate(ctx context.Context, month, year int, profileIDs []string) (*response.BulkFeeResponse, error) {
	if month < 1 || month > 12 || year < s.cfg.FirstLedgerYear {
		return nil, errcode.New(errcode.ValidationFailed)
	}

	if len(profileIDs) == 0 {
		ids, err := s.profileRepo.ListApprovedMemberIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list approved members: %w", err)
		}
		profileIDs = ids
	}

	fees := make([]models.SecurityFee, 0, len(profileIDs))
	seen := make(map[string]bool, len(profileIDs))
	for _, id := range profileIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		fees = append(fees, models.SecurityFee{
			ProfileID: id,
			Year:      year,
			Month:     month,
			Amount:    s.cfg.MonthlyFee,
			Status:    models.FeeOutstanding,
		})
	}

	created, err := s.feeRepo.CreateMissing(ctx, fees)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"month": month,
			"year":  year,
		}).Error("Failed to create security fees")
		return nil, fmt.Errorf("failed to create security fees: %w", err)
	}

	result := &response.BulkFeeResponse{
		Month:     month,
		Year:      year,
		Requested: len(fees),
		Created:   created,
		Skipped:   int64(len(fees)) - created,
	}

	s.logger.WithFields(map[string]interface{}{
		"month":     month,
		"year":      year,
		"requested": result.Requested,
		"created":   result.Created,
	}).Info("Security fees created")

	return result, nil
}

// ConfirmPayment marks outstanding entries as paid
func (s *ledgerService) ConfirmPayment(ctx context.Context, ids []uint) (*response.ConfirmFeeResponse, error) {
	if len(ids) == 0 {
		return nil, errcode.New(errcode.ValidationFailed)
	}

	confirmed, err := s.feeRepo.MarkPaid(ctx, ids, s.now())
	if err != nil {
		s.logger.WithError(err).Error("Failed to confirm security fee payment")
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(ids),
		"confirmed": confirmed,
	}).Info("Security fee payment confirmed")

	return &response.ConfirmFeeResponse{Confirmed: confirmed}, nil
}

// ExportYear writes a year of the ledger to an Excel workbook
func (s *ledgerService) ExportYear(ctx context.Context, year int, filter string) ([]byte, string, error) {
	entries, err := s.ListYear(ctx, year, filter)
	if err != nil {
		return nil, "", err
	}

	sheetName := "Kutipan Sekuriti"
	headers := []string{"No", "No. Rumah", "Nama", "Bulan", "Tahun", "Jumlah (RM)", "Status", "Tarikh Bayar"}
	f, err := newWorkbook(sheetName, headers)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	for i, entry := range entries {
		paidAt := "-"
		if entry.PaidAt != nil {
			paidAt = entry.PaidAt.Format("2006-01-02")
		}
		setRow(f, sheetName, i+2,
			i+1,
			entry.HouseNo,
			entry.FullName,
			entry.MonthName,
			entry.Year,
			entry.Amount,
			statusLabel(models.FeeStatus(entry.Status)),
			paidAt,
		)
	}

	data, filename, err := writeWorkbook(f, fmt.Sprintf("kutipan_sekuriti_%d", year), s.now())
	if err != nil {
		return nil, "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"year":     year,
		"rows":     len(entries),
		"filename": filename,
	}).Info("Security fees exported")

	return data, filename, nil
}
