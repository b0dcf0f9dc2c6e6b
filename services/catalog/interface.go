// File: services/catalog/interface.go
package catalog

import (
	"context"

	"clinic/models"
)

// CatalogService lists doctors, specialties and services, with a short-lived
// cache in front of the store.
type CatalogService interface {
	GetDoctors(ctx context.Context) ([]models.Doctor, error)
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
	GetServices(ctx context.Context) ([]models.Service, error)
	GetDoctorServices(ctx context.Context) ([]models.DoctorService, error)
}
