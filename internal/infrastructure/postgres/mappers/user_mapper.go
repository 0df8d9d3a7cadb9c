package mappers

import (
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		PartnerID:    model.PartnerID,
		Name:         model.Name,
		IsCoach:      model.IsCoach,
		ReferredByID: model.ReferredByID,
		OrgID:        model.OrgID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID,
		PartnerID:    user.PartnerID,
		Name:         user.Name,
		IsCoach:      user.IsCoach,
		ReferredByID: user.ReferredByID,
		OrgID:        user.OrgID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func ToDomainOrganization(model *models.OrganizationModel) *domain.Organization {
	return &domain.Organization{
		ID:                  model.ID,
		Name:                model.Name,
		CommissionCycleDays: model.CommissionCycleDays,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMOrganization(org *domain.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:                  org.ID,
		Name:                org.Name,
		CommissionCycleDays: org.CommissionCycleDays,
		CreatedAt:           org.CreatedAt,
		UpdatedAt:           org.UpdatedAt,
	}
}
