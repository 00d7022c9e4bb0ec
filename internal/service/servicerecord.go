package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"carwash-service/internal/entity"
)

const defaultPackageNumber = 1

// RecordService provides service-record (visit) CRUD. Mutations are published
// to the event topic; a nil writer disables publishing.
type RecordService struct {
	recordRepo  RecordStore
	kafkaWriter *kafka.Writer
}

func NewRecordService(recordRepo RecordStore, kafkaWriter *kafka.Writer) *RecordService {
	return &RecordService{recordRepo: recordRepo, kafkaWriter: kafkaWriter}
}

func (s *RecordService) GetRecords(ctx context.Context) ([]entity.ServiceRecord, error) {
	records, err := s.recordRepo.GetRecords(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching service records")
		return nil, err
	}
	return records, nil
}

func (s *RecordService) GetRecordsByCar(ctx context.Context, plateNumber string) ([]entity.ServiceRecord, error) {
	records, err := s.recordRepo.GetRecordsByPlate(ctx, plateNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching service records for car %s", plateNumber)
		return nil, err
	}
	return records, nil
}

func (s *RecordService) GetRecord(ctx context.Context, recordNumber int) (*entity.ServiceRecord, error) {
	rec, err := s.recordRepo.GetRecordByID(ctx, recordNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching service record %d", recordNumber)
		return nil, err
	}
	return rec, nil
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	if rec.PackageNumber == 0 {
		rec.PackageNumber = defaultPackageNumber
	}
	if err := s.recordRepo.CreateRecord(ctx, rec); err != nil {
		logger.Error().Err(err).Msg("Error creating service record")
		return err
	}
	s.publishEvent(ctx, "created", rec)
	return nil
}

func (s *RecordService) UpdateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	if err := s.recordRepo.UpdateRecord(ctx, rec); err != nil {
		logger.Error().Err(err).Msgf("Error updating service record %d", rec.RecordNumber)
		return err
	}
	s.publishEvent(ctx, "updated", rec)
	return nil
}

// DeleteRecord removes the record; the schema cascades to its payments.
func (s *RecordService) DeleteRecord(ctx context.Context, recordNumber int) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordNumber); err != nil {
		logger.Error().Err(err).Msgf("Error deleting service record %d", recordNumber)
		return err
	}
	s.publishEvent(ctx, "deleted", &entity.ServiceRecord{RecordNumber: recordNumber})
	return nil
}

// publishEvent is best-effort: the row is already committed, so a broker
// failure is logged, not returned.
func (s *RecordService) publishEvent(ctx context.Context, action string, rec *entity.ServiceRecord) {
	if s.kafkaWriter == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("service-%s-%d", action, rec.RecordNumber)),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing service record event %s", action)
	}
}
