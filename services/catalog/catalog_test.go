package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"clinic/models"
)

type fakeCatalogRepo struct {
	doctors []models.Doctor
	err     error
	calls   int
}

func (f *fakeCatalogRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doctors, nil
}

func (f *fakeCatalogRepo) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) ListDoctorServices(ctx context.Context) ([]models.DoctorService, error) {
	return nil, nil
}

func TestGetDoctorsWithoutCache(t *testing.T) {
	repo := &fakeCatalogRepo{
		doctors: []models.Doctor{
			{ID: 1, Name: "Dr. Adams", SpecialtyID: 3, IdentStaffID: "ident-1"},
			{ID: 2, Name: "Dr. Brown", SpecialtyID: 5, IdentStaffID: "ident-2"},
		},
	}
	svc := &DefaultCatalogService{Repo: repo}

	got, err := svc.GetDoctors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, repo.doctors) {
		t.Fatalf("got %v, want %v", got, repo.doctors)
	}

	// With no cache configured every call goes through to the repo.
	if _, err := svc.GetDoctors(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("repo called %d times, want 2", repo.calls)
	}
}

func TestGetDoctorsRepoError(t *testing.T) {
	repo := &fakeCatalogRepo{err: errors.New("mongo: no reachable servers")}
	svc := &DefaultCatalogService{Repo: repo}

	if _, err := svc.GetDoctors(context.Background()); !errors.Is(err, repo.err) {
		t.Fatalf("repo error not propagated: %v", err)
	}
}
