package service

import (
	"context"
	"time"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

// ReportService computes the read-only aggregates. All queries are read-only,
// so the multi-statement reports run without a transaction; a failure
// mid-sequence just aborts the request.
type ReportService struct {
	reportRepo  ReportStore
	carRepo     CarStore
	recordRepo  RecordStore
	paymentRepo PaymentStore
}

func NewReportService(reportRepo ReportStore, carRepo CarStore, recordRepo RecordStore, paymentRepo PaymentStore) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		carRepo:     carRepo,
		recordRepo:  recordRepo,
		paymentRepo: paymentRepo,
	}
}

// DailyReport totals payments made on the given calendar date (YYYY-MM-DD).
func (s *ReportService) DailyReport(ctx context.Context, date string) (*entity.DailyReport, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperr.Validation("Date must be in YYYY-MM-DD format")
	}

	records, err := s.reportRepo.DailyPayments(ctx, date)
	if err != nil {
		logger.Error().Err(err).Msgf("Error generating daily report for %s", date)
		return nil, err
	}

	var total float64
	for _, rec := range records {
		total += rec.AmountPaid
	}

	return &entity.DailyReport{
		Date:        date,
		TotalAmount: total,
		Records:     records,
		Count:       len(records),
	}, nil
}

func (s *ReportService) PaymentsReport(ctx context.Context) ([]entity.ReportRow, error) {
	records, err := s.reportRepo.AllPayments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating payments report")
		return nil, err
	}
	return records, nil
}

func (s *ReportService) Summary(ctx context.Context) (*entity.Summary, error) {
	carCount, err := s.reportRepo.CountCars(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting cars")
		return nil, err
	}
	packageCount, err := s.reportRepo.CountPackages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting packages")
		return nil, err
	}
	serviceCount, err := s.reportRepo.CountServiceRecords(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting service records")
		return nil, err
	}
	paymentCount, err := s.reportRepo.CountPayments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting payments")
		return nil, err
	}
	totalRevenue, err := s.reportRepo.SumPayments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error summing payments")
		return nil, err
	}

	return &entity.Summary{
		CarCount:     carCount,
		PackageCount: packageCount,
		ServiceCount: serviceCount,
		PaymentCount: paymentCount,
		TotalRevenue: totalRevenue,
	}, nil
}

// ComprehensiveReport dumps cars, service records and payments with totals,
// for the printable report view.
func (s *ReportService) ComprehensiveReport(ctx context.Context) (*entity.ComprehensiveReport, error) {
	allCars, err := s.carRepo.GetCars(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching cars for comprehensive report")
		return nil, err
	}
	allRecords, err := s.recordRepo.GetRecords(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching service records for comprehensive report")
		return nil, err
	}
	allPayments, err := s.paymentRepo.GetPayments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching payments for comprehensive report")
		return nil, err
	}

	var totalRevenue float64
	for _, p := range allPayments {
		totalRevenue += p.AmountPaid
	}

	return &entity.ComprehensiveReport{
		Cars:     allCars,
		Services: allRecords,
		Payments: allPayments,
		Summary: entity.ComprehensiveSummary{
			TotalCars:     len(allCars),
			TotalServices: len(allRecords),
			TotalPayments: len(allPayments),
			TotalRevenue:  totalRevenue,
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
