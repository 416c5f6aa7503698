package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body para POST /api/contracts.
type CreateContractRequest struct {
	ClientID    string          `json:"cliente_id"`
	Service     string          `json:"servicio"`
	Kind        string          `json:"tipo,omitempty"`
	StartDate   time.Time       `json:"fecha_inicio"`
	EndDate     *time.Time      `json:"fecha_fin,omitempty"`
	TotalValue  decimal.Decimal `json:"valor"`
	Responsible string          `json:"responsable,omitempty"`
	Notes       string          `json:"observaciones,omitempty"`
}

// UpdateContractRequest body para PUT /api/contracts/:id.
type UpdateContractRequest struct {
	Service     *string          `json:"servicio,omitempty"`
	Kind        *string          `json:"tipo,omitempty"`
	EndDate     *time.Time       `json:"fecha_fin,omitempty"`
	Status      *string          `json:"estado,omitempty"`
	TotalValue  *decimal.Decimal `json:"valor,omitempty"`
	PaidAmount  *decimal.Decimal `json:"pagado,omitempty"`
	Responsible *string          `json:"responsable,omitempty"`
	Notes       *string          `json:"observaciones,omitempty"`
}

// ContractResponse contrato con campos derivados (porcentaje pagado, saldo).
type ContractResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	ClientID    string          `json:"cliente_id"`
	Service     string          `json:"servicio"`
	Kind        string          `json:"tipo"`
	StartDate   time.Time       `json:"fecha_inicio"`
	EndDate     *time.Time      `json:"fecha_fin,omitempty"`
	Status      string          `json:"estado"`
	TotalValue  decimal.Decimal `json:"valor"`
	PaidAmount  decimal.Decimal `json:"pagado"`
	PaidPercent decimal.Decimal `json:"porcentaje_pagado"`
	Outstanding decimal.Decimal `json:"saldo_pendiente"`
	Responsible string          `json:"responsable,omitempty"`
	Notes       string          `json:"observaciones,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ContractListResponse listado paginado de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
