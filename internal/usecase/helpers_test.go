package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/repository"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeClock struct {
	today time.Time
}

func (c *fakeClock) Today() time.Time { return c.today }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	DB           *gorm.DB
	Clock        *fakeClock
	SliceRepo    *repository.DefaultSliceRepository
	TrackRepo    *repository.DefaultTrackRepository
	UserRepo     *repository.DefaultUserRepository
	OrgRepo      *repository.DefaultOrganizationRepository
	InvoiceRepo  *repository.DefaultInvoiceRepository
	WalletRepo   *repository.DefaultWalletRepository
	SliceUC      *usecase.DefaultSliceUsecase
	TrackUC      *usecase.DefaultTrackUsecase
	SettlementUC *usecase.DefaultSettlementUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.OrganizationModel{},
		&models.UserModel{},
		&models.CommissionSliceModel{},
		&models.CommissionTrackModel{},
		&models.InvoiceModel{},
		&models.WalletProgramModel{},
		&models.WalletCardModel{},
		&models.WalletEntryModel{},
	))

	env := &testEnv{
		DB:          db,
		Clock:       &fakeClock{today: date(2025, time.January, 15)},
		SliceRepo:   repository.NewDefaultSliceRepository(db),
		TrackRepo:   repository.NewDefaultTrackRepository(db),
		UserRepo:    repository.NewDefaultUserRepository(db),
		OrgRepo:     repository.NewDefaultOrganizationRepository(db),
		InvoiceRepo: repository.NewDefaultInvoiceRepository(db),
		WalletRepo:  repository.NewDefaultWalletRepository(db),
	}
	require.NoError(t, env.WalletRepo.SeedEWalletProgram("eWallet"))

	env.SliceUC = usecase.NewDefaultSliceUsecase(env.SliceRepo)
	env.TrackUC = usecase.NewDefaultTrackUsecase(
		env.TrackRepo, env.UserRepo, env.OrgRepo, env.SliceUC,
		env.InvoiceRepo, env.Clock, nil,
	)
	env.SettlementUC = usecase.NewDefaultSettlementUsecase(
		env.TrackRepo, env.UserRepo, env.WalletRepo, env.TrackUC,
		nil, "commission-events", nil,
	)
	return env
}

func (env *testEnv) createCoach(t *testing.T, name string) *domain.User {
	t.Helper()
	user := &domain.User{
		PartnerID: uuid.New().String(),
		Name:      name,
		IsCoach:   true,
	}
	require.NoError(t, env.UserRepo.CreateUser(user))
	return user
}

func (env *testEnv) createPlayer(t *testing.T, name, referredByID string) *domain.User {
	t.Helper()
	user := &domain.User{
		PartnerID:    uuid.New().String(),
		Name:         name,
		IsCoach:      false,
		ReferredByID: referredByID,
	}
	require.NoError(t, env.UserRepo.CreateUser(user))
	return user
}

func (env *testEnv) addPaidInvoice(t *testing.T, partnerID string, amount float64, invoiceDate time.Time) {
	t.Helper()
	require.NoError(t, env.InvoiceRepo.SaveInvoice(&domain.Invoice{
		ID:            uuid.New().String(),
		PartnerID:     partnerID,
		MoveType:      domain.MoveTypeOutInvoice,
		State:         domain.InvoiceStatePosted,
		PaymentState:  domain.PaymentStatePaid,
		AmountUntaxed: amount,
		InvoiceDate:   invoiceDate,
	}))
}

func (env *testEnv) createTrack(t *testing.T, track *domain.CommissionTrack) *domain.CommissionTrack {
	t.Helper()
	require.NoError(t, env.TrackRepo.CreateTrack(track))
	return track
}
