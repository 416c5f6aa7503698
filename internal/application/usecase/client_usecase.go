package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
)

// ClientUseCase casos de uso CRUD para clientes del estudio.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func validClientType(s string) bool {
	switch s {
	case entity.ClientPersona, entity.ClientEmpresa, entity.ClientOtro:
		return true
	}
	return false
}

// Create registra un cliente. Sin tipo explícito se asume persona.
func (uc *ClientUseCase) Create(tenantID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Type
	if kind == "" {
		kind = entity.ClientPersona
	}
	if !validClientType(kind) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Type:        kind,
		Contact:     in.Contact,
		CompanyName: in.CompanyName,
		Address:     in.Address,
		Email:       in.Email,
		Phone:       in.Phone,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente del tenant.
func (uc *ClientUseCase) GetByID(tenantID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza los campos enviados.
func (uc *ClientUseCase) Update(tenantID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Type != nil {
		if !validClientType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		client.Type = *in.Type
	}
	if in.Contact != nil {
		client.Contact = *in.Contact
	}
	if in.CompanyName != nil {
		client.CompanyName = *in.CompanyName
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes del tenant, con búsqueda opcional por nombre o email.
func (uc *ClientUseCase) List(tenantID, search string, page dto.PageRequest) (*dto.ClientListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(tenantID, id string) error {
	client, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Name:        c.Name,
		Type:        c.Type,
		Contact:     c.Contact,
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Email:       c.Email,
		Phone:       c.Phone,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
