package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrganizationRepository struct {
	DB *gorm.DB
}

func NewDefaultOrganizationRepository(db *gorm.DB) *DefaultOrganizationRepository {
	return &DefaultOrganizationRepository{
		DB: db,
	}
}

func (r *DefaultOrganizationRepository) CreateOrganization(org *domain.Organization) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	model := mappers.ToGORMOrganization(org)
	return r.DB.Create(model).Error
}

func (r *DefaultOrganizationRepository) GetOrganizationByID(orgID string) (*domain.Organization, error) {
	var model models.OrganizationModel
	if err := r.DB.Where("id = ?", orgID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainOrganization(&model), nil
}
