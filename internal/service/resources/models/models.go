package models

import (
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// Request модели

// CreateResourceRequest запрос на добавление ресурса на план
// Пустое имя заменяется на "New Desk N", тип по умолчанию - стол
type CreateResourceRequest struct {
	Name *string `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"` // "desk" | "room"
	X    int     `json:"x"`
	Y    int     `json:"y"`
}

// UpdateResourceRequest запрос на изменение ресурса
// Все поля опциональны - обновляются только переданные значения
type UpdateResourceRequest struct {
	Name *string `json:"name,omitempty"`
	Kind *string `json:"kind,omitempty"`
	X    *int    `json:"x,omitempty"`
	Y    *int    `json:"y,omitempty"`
}

// Response модели

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ResourceListResponse ответ со списком ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// DeleteResourceResponse результат удаления ресурса
type DeleteResourceResponse struct {
	ID              string `json:"id"`
	RemovedBookings int    `json:"removedBookings"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	return &ResourceResponse{
		ID:   r.ID,
		Name: r.Name,
		Kind: string(r.Kind),
		X:    r.X,
		Y:    r.Y,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(resources)),
	}

	for _, resource := range resources {
		if r := FromDomainResource(resource); r != nil {
			resp.Resources = append(resp.Resources, *r)
		}
	}

	return resp
}

// ApplyToResource применяет переданные поля к ресурсу
func (r *UpdateResourceRequest) ApplyToResource(resource *domain.Resource, kind *domain.ResourceKind) {
	if r.Name != nil {
		resource.Name = *r.Name
	}
	if kind != nil {
		resource.Kind = *kind
	}
	if r.X != nil {
		resource.X = *r.X
	}
	if r.Y != nil {
		resource.Y = *r.Y
	}
}
