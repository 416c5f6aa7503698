package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractUseCase casos de uso para contratos de servicio. El estado vigente
// o vencido se recalcula por fecha al leer.
type ContractUseCase struct {
	repo       repository.ContractRepository
	clientRepo repository.ClientRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository, clientRepo repository.ClientRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo, clientRepo: clientRepo}
}

// Create registra un contrato vigente sin pagos.
func (uc *ContractUseCase) Create(tenantID string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.ClientID == "" || in.Service == "" || in.StartDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalValue.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(tenantID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contract := &entity.Contract{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ClientID:    in.ClientID,
		Service:     in.Service,
		Kind:        in.Kind,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      entity.ContratoVigente,
		TotalValue:  in.TotalValue,
		PaidAmount:  decimal.Zero,
		Responsible: in.Responsible,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	contract.RefreshStatus(now)
	if err := uc.repo.Create(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato con estado recalculado por fecha.
func (uc *ContractUseCase) GetByID(tenantID, id string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	contract.RefreshStatus(time.Now())
	return toContractResponse(contract), nil
}

// Update actualiza datos del contrato. Los pagos nunca superan el valor total
// ni bajan de lo ya pagado.
func (uc *ContractUseCase) Update(tenantID, id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if in.Service != nil {
		if *in.Service == "" {
			return nil, domain.ErrInvalidInput
		}
		contract.Service = *in.Service
	}
	if in.Kind != nil {
		contract.Kind = *in.Kind
	}
	if in.EndDate != nil {
		if in.EndDate.Before(contract.StartDate) {
			return nil, domain.ErrInvalidInput
		}
		contract.EndDate = in.EndDate
	}
	if in.TotalValue != nil {
		if in.TotalValue.LessThan(contract.PaidAmount) {
			return nil, domain.ErrInvalidInput
		}
		contract.TotalValue = *in.TotalValue
	}
	if in.PaidAmount != nil {
		if in.PaidAmount.LessThan(contract.PaidAmount) || in.PaidAmount.GreaterThan(contract.TotalValue) {
			return nil, domain.ErrInvalidInput
		}
		contract.PaidAmount = *in.PaidAmount
	}
	if in.Status != nil {
		// solo la rescisión se fija a mano; vigente/vencido los decide la fecha
		if *in.Status != entity.ContratoRescindido {
			return nil, domain.ErrInvalidInput
		}
		contract.Status = entity.ContratoRescindido
	}
	if in.Responsible != nil {
		contract.Responsible = *in.Responsible
	}
	if in.Notes != nil {
		contract.Notes = *in.Notes
	}
	contract.RefreshStatus(time.Now())
	contract.UpdatedAt = time.Now()
	if err := uc.repo.Update(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// List lista contratos del tenant, opcionalmente por estado.
func (uc *ContractUseCase) List(tenantID, status string, page dto.PageRequest) (*dto.ContractListResponse, error) {
	page.DefaultPage()
	if status != "" {
		switch status {
		case entity.ContratoVigente, entity.ContratoVencido, entity.ContratoRescindido:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.repo.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		c.RefreshStatus(now)
		items = append(items, *toContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		ClientID:    c.ClientID,
		Service:     c.Service,
		Kind:        c.Kind,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		TotalValue:  c.TotalValue,
		PaidAmount:  c.PaidAmount,
		PaidPercent: c.PaidPercent(),
		Outstanding: c.Outstanding(),
		Responsible: c.Responsible,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}
