package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{
		DB: db,
	}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	model := mappers.ToGORMUser(user)
	return r.DB.Create(model).Error
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetUserByPartnerID(partnerID string) (*domain.User, error) {
	var model models.UserModel
	if err := r.DB.Where("partner_id = ?", partnerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetReferredUsers(userID string) ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Where("referred_by_id = ?", userID).Find(&userModels).Error; err != nil {
		return nil, err
	}
	return toDomainUsers(userModels), nil
}

func (r *DefaultUserRepository) GetCoaches() ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Where("is_coach = ?", true).Find(&userModels).Error; err != nil {
		return nil, err
	}
	return toDomainUsers(userModels), nil
}

func (r *DefaultUserRepository) FindCoachForPartner(partnerID string) (*domain.User, error) {
	user, err := r.GetUserByPartnerID(partnerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.IsCoach {
		return user, nil
	}
	if user.ReferredByID == "" {
		return nil, nil
	}

	var referrer models.UserModel
	err = r.DB.Where("id = ? AND is_coach = ?", user.ReferredByID, true).First(&referrer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainUser(&referrer), nil
}

func toDomainUsers(userModels []models.UserModel) []*domain.User {
	users := make([]*domain.User, len(userModels))
	for i, model := range userModels {
		users[i] = mappers.ToDomainUser(&model)
	}
	return users
}
