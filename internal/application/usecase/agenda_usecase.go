package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
)

// AgendaUseCase casos de uso para la agenda de citas del estudio.
type AgendaUseCase struct {
	repo repository.AppointmentRepository
}

// NewAgendaUseCase construye el caso de uso.
func NewAgendaUseCase(repo repository.AppointmentRepository) *AgendaUseCase {
	return &AgendaUseCase{repo: repo}
}

func validCitaKind(s string) bool {
	switch s {
	case entity.CitaReunion, entity.CitaSesion, entity.CitaEntrega:
		return true
	}
	return false
}

func validCitaStatus(s string) bool {
	switch s {
	case entity.CitaPendiente, entity.CitaConfirmada, entity.CitaCompletada, entity.CitaCancelada:
		return true
	}
	return false
}

// Create agenda una cita. Sin tipo explícito se asume sesión.
func (uc *AgendaUseCase) Create(tenantID, userID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Title == "" || in.StartsAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Kind
	if kind == "" {
		kind = entity.CitaSesion
	}
	if !validCitaKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	if in.EndsAt != nil && !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		ClientName:   in.ClientName,
		Kind:         kind,
		Status:       entity.CitaPendiente,
		StartsAt:     in.StartsAt,
		EndsAt:       in.EndsAt,
		Location:     in.Location,
		Participants: in.Participants,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID obtiene una cita del tenant.
func (uc *AgendaUseCase) GetByID(tenantID, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	return toAppointmentResponse(appt), nil
}

// Update actualiza los campos enviados de la cita.
func (uc *AgendaUseCase) Update(tenantID, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		appt.Title = *in.Title
	}
	if in.Description != nil {
		appt.Description = *in.Description
	}
	if in.ClientName != nil {
		appt.ClientName = *in.ClientName
	}
	if in.Kind != nil {
		if !validCitaKind(*in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		appt.Kind = *in.Kind
	}
	if in.Status != nil {
		if !validCitaStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		appt.Status = *in.Status
	}
	if in.StartsAt != nil {
		appt.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		appt.EndsAt = in.EndsAt
	}
	if appt.EndsAt != nil && !appt.EndsAt.After(appt.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.Location != nil {
		appt.Location = *in.Location
	}
	if in.Participants != nil {
		appt.Participants = *in.Participants
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List lista citas del tenant en un rango de fechas opcional.
func (uc *AgendaUseCase) List(tenantID string, from, to *time.Time, page dto.PageRequest) (*dto.AppointmentListResponse, error) {
	page.DefaultPage()
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByTenant(tenantID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una cita.
func (uc *AgendaUseCase) Delete(tenantID, id string) error {
	appt, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:           a.ID,
		TenantID:     a.TenantID,
		UserID:       a.UserID,
		Title:        a.Title,
		Description:  a.Description,
		ClientName:   a.ClientName,
		Kind:         a.Kind,
		Status:       a.Status,
		StartsAt:     a.StartsAt,
		EndsAt:       a.EndsAt,
		Location:     a.Location,
		Participants: a.Participants,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}
