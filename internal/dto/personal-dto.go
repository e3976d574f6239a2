package dto

import "movilab/internal/entities"

type CreateTecnicoDTO struct {
	Nombre string `json:"technicianName" form:"technicianName" validate:"required,notblank"`
}

type CreateIngenieroDTO struct {
	Nombre string `json:"engineerName" form:"engineerName" validate:"required,notblank"`
}

// UpdatePersonalDTO is shared by /edit-technician and /edit-engineer.
type UpdatePersonalDTO struct {
	ID     uint64 `json:"id" form:"id" validate:"required"`
	Nombre string `json:"name" form:"name" validate:"required,notblank"`
}

type DeletePersonalDTO struct {
	ID uint64 `json:"id" form:"id" validate:"required"`
}

// ViewDataDTO is the combined listing of GET /view-data.
type ViewDataDTO struct {
	Technicians []entities.Personal `json:"technicians"`
	Engineers   []entities.Personal `json:"engineers"`
}
