package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/infrastructure/logging"
	"studio_ops/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidGatewayPayload       = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

var logg = logging.GetLogger()

// IPaymentUseCase exposes payment CRUD. Create optionally charges the
// payment through the configured gateway when the caller supplies an
// mp_payload; the provider response is persisted on the record.

type IPaymentUseCase interface {
	Create(ctx context.Context, p entities.Payment, mpPayload json.RawMessage) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Payment, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) error
	Delete(ctx context.Context, id entities.ID) error
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) Create(ctx context.Context, p entities.Payment, mpPayload json.RawMessage) (entities.Payment, error) {
	p.ID = entities.NewID()

	if len(mpPayload) > 0 {
		if !json.Valid(mpPayload) {
			return entities.Payment{}, ErrInvalidGatewayPayload
		}
		if u.gateway == nil {
			logg.Printf("[payment][usecase] mp_payload supplied but gateway not configured")
			return entities.Payment{}, ErrPaymentGatewayNotConfigured
		}

		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			logg.Printf("[payment][usecase] gateway create failed payment_id=%s err=%v", p.ID, err)
			return entities.Payment{}, err
		}

		p.MPPaymentID = providerID
		p.MPStatus = providerStatus
		p.MPResponseRaw = providerResp

		var parsed map[string]any
		if err := json.Unmarshal(providerResp, &parsed); err == nil {
			p.MPResponse = parsed
		}
		logg.Printf("[payment][usecase] gateway create success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerID, providerStatus)
	}

	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.repo.ListAll(ctx)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id entities.ID) (entities.Payment, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) Update(ctx context.Context, id entities.ID, fields map[string]any) error {
	found, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !found {
		return ErrPaymentNotFound
	}
	return nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id entities.ID) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrPaymentNotFound
	}
	return nil
}
