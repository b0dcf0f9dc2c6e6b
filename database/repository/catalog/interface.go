// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"clinic/database"
	"clinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository lists doctors, specialties and services.
type CatalogRepository interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListDoctorServices(ctx context.Context) ([]models.DoctorService, error)
}

type mongoCatalogRepo struct {
	doctors        *mongo.Collection
	specialties    *mongo.Collection
	services       *mongo.Collection
	doctorServices *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("clinic")
	return &mongoCatalogRepo{
		doctors:        db.Collection("doctors"),
		specialties:    db.Collection("specialties"),
		services:       db.Collection("services"),
		doctorServices: db.Collection("doctor_services"),
	}
}
