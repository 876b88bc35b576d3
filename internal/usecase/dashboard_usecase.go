package usecase

import (
	"context"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"
)

// IDashboardUseCase produces the read-only summary report.

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	clientRepo   interfaces.IClientRepository
	invoiceRepo  interfaces.IInvoiceRepository
	paymentRepo  interfaces.IPaymentRepository
	feedbackRepo interfaces.IFeedbackRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clientRepo interfaces.IClientRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	paymentRepo interfaces.IPaymentRepository,
	feedbackRepo interfaces.IFeedbackRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clientRepo:   clientRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	var s entities.DashboardSummary
	var err error

	if s.TotalClients, err = u.clientRepo.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.TotalInvoices, err = u.invoiceRepo.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.TotalPayments, err = u.paymentRepo.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}
	if s.TotalFeedbacks, err = u.feedbackRepo.Count(ctx); err != nil {
		return entities.DashboardSummary{}, err
	}

	invoices, err := u.invoiceRepo.ListAll(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	for _, inv := range invoices {
		s.TotalSales += inv.Total
	}

	feedbacks, err := u.feedbackRepo.ListAll(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	if len(feedbacks) > 0 {
		var sum float64
		for _, f := range feedbacks {
			if f.Rating != nil {
				sum += *f.Rating
			}
		}
		avg := sum / float64(len(feedbacks))
		s.AvgRating = &avg
	}

	return s, nil
}
