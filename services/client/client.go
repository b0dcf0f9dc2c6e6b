package client

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	clientRepo "clinic/database/repository/client"
	"clinic/models"
	"clinic/utils"

	"go.uber.org/zap"
)

// DefaultClientService is the production ClientService implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) GetClient(ctx context.Context, userID string) (*models.Client, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *DefaultClientService) RegisterClient(ctx context.Context, userID, fullName, birthDate, phone string) (*models.Client, error) {
	logger := utils.GetLogger()

	if fullName == "" {
		fullName = "New patient"
	}
	candidate := models.Client{
		UserID:     userID,
		FullName:   fullName,
		BirthDate:  birthDate,
		Phone:      phone,
		ClientCode: newClientCode(),
		Role:       "client",
		RegDate:    time.Now(),
	}

	stored, err := s.Repo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, err
	}
	logger.Info("client registered", zap.String("userID", userID), zap.String("clientCode", stored.ClientCode))
	return stored, nil
}

func (s *DefaultClientService) UpdateClient(ctx context.Context, userID, fullName, birthDate, phone string) error {
	return s.Repo.UpdateProfile(ctx, userID, fullName, birthDate, phone)
}

// newClientCode generates the short human-readable code printed on the
// patient card, e.g. "483-129".
func newClientCode() string {
	return fmt.Sprintf("%d-%d", 100+rand.Intn(900), 100+rand.Intn(900))
}
