package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"carwash-service/internal/entity"
)

// PaymentService provides payment CRUD and the by-record/by-car filters.
// Mutations are published to the event topic; a nil writer disables
// publishing.
type PaymentService struct {
	paymentRepo PaymentStore
	kafkaWriter *kafka.Writer
}

func NewPaymentService(paymentRepo PaymentStore, kafkaWriter *kafka.Writer) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, kafkaWriter: kafkaWriter}
}

func (s *PaymentService) GetPayments(ctx context.Context) ([]entity.Payment, error) {
	payments, err := s.paymentRepo.GetPayments(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching payments")
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentsByRecord(ctx context.Context, recordNumber int) ([]entity.Payment, error) {
	payments, err := s.paymentRepo.GetPaymentsByRecord(ctx, recordNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching payments for record %d", recordNumber)
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentsByCar(ctx context.Context, plateNumber string) ([]entity.Payment, error) {
	payments, err := s.paymentRepo.GetPaymentsByPlate(ctx, plateNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching payments for car %s", plateNumber)
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentNumber int) (*entity.Payment, error) {
	p, err := s.paymentRepo.GetPaymentByID(ctx, paymentNumber)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching payment %d", paymentNumber)
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) CreatePayment(ctx context.Context, p *entity.Payment) error {
	if err := s.paymentRepo.CreatePayment(ctx, p); err != nil {
		logger.Error().Err(err).Msg("Error creating payment")
		return err
	}
	s.publishEvent(ctx, "created", p)
	return nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, p *entity.Payment) error {
	if err := s.paymentRepo.UpdatePayment(ctx, p); err != nil {
		logger.Error().Err(err).Msgf("Error updating payment %d", p.PaymentNumber)
		return err
	}
	s.publishEvent(ctx, "updated", p)
	return nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, paymentNumber int) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentNumber); err != nil {
		logger.Error().Err(err).Msgf("Error deleting payment %d", paymentNumber)
		return err
	}
	s.publishEvent(ctx, "deleted", &entity.Payment{PaymentNumber: paymentNumber})
	return nil
}

func (s *PaymentService) publishEvent(ctx context.Context, action string, p *entity.Payment) {
	if s.kafkaWriter == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("payment-%s-%d", action, p.PaymentNumber)),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing payment event %s", action)
	}
}
