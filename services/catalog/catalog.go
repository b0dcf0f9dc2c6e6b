package catalog

import (
	"context"
	"encoding/json"
	"time"

	catalogRepo "clinic/database/repository/catalog"
	"clinic/models"
	"clinic/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyDoctors        = "catalog:doctors"
	cacheKeySpecialties    = "catalog:specialties"
	cacheKeyServices       = "catalog:services"
	cacheKeyDoctorServices = "catalog:doctor_services"

	cacheTTL = 5 * time.Minute
)

// DefaultCatalogService is the production CatalogService implementation.
// Cache may be nil, which disables caching entirely.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

func (s *DefaultCatalogService) GetDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if s.cacheGet(ctx, cacheKeyDoctors, &doctors) {
		return doctors, nil
	}
	doctors, err := s.Repo.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyDoctors, doctors)
	return doctors, nil
}

func (s *DefaultCatalogService) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if s.cacheGet(ctx, cacheKeySpecialties, &specialties) {
		return specialties, nil
	}
	specialties, err := s.Repo.ListSpecialties(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeySpecialties, specialties)
	return specialties, nil
}

func (s *DefaultCatalogService) GetServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if s.cacheGet(ctx, cacheKeyServices, &services) {
		return services, nil
	}
	services, err := s.Repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyServices, services)
	return services, nil
}

func (s *DefaultCatalogService) GetDoctorServices(ctx context.Context) ([]models.DoctorService, error) {
	var links []models.DoctorService
	if s.cacheGet(ctx, cacheKeyDoctorServices, &links) {
		return links, nil
	}
	links, err := s.Repo.ListDoctorServices(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyDoctorServices, links)
	return links, nil
}

// cacheGet reports whether the key was found and decoded into dst.
// Cache failures are treated as misses.
func (s *DefaultCatalogService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (s *DefaultCatalogService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("catalog cache set failed", zap.String("key", key), zap.Error(err))
	}
}
