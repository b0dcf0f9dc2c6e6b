package catalogRepo

import (
	"context"
	"fmt"

	"clinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoCatalogRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := repo.doctors.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (repo *mongoCatalogRepo) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := repo.specialties.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}

func (repo *mongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := repo.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (repo *mongoCatalogRepo) ListDoctorServices(ctx context.Context) ([]models.DoctorService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "doctor_id", Value: 1}, {Key: "service_id", Value: 1}})
	cursor, err := repo.doctorServices.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor services: %w", err)
	}
	defer cursor.Close(ctx)

	var links []models.DoctorService
	if err := cursor.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("failed to decode doctor services: %w", err)
	}
	return links, nil
}
