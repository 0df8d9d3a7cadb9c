package usecase

import (
	"context"
	"log/slog"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	publisher "github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/kafka"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/metrics"
	topupdto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/topup"
)

type SettlementUsecase interface {
	// ManualTopUp moves a requested amount of settled commission into
	// the caller's wallet. The amount lands on the most recently closed
	// track only.
	ManualTopUp(ctx context.Context, input *topupdto.ManualTopUpInput) (*topupdto.TopUpOutput, error)
	// AutoTopUpSweep settles every coach's full available balance,
	// marking every closed track fully transferred. A failure for one
	// coach never aborts the rest of the sweep.
	AutoTopUpSweep(ctx context.Context) (*topupdto.SweepSummary, error)
}

type DefaultSettlementUsecase struct {
	TrackRepo    domain.TrackRepository
	UserRepo     domain.UserRepository
	Wallet       domain.WalletService
	TrackUsecase TrackUsecase
	Publisher    *publisher.DefaultKafkaPublisher
	Topic        string
	Metrics      *metrics.CommissionMetrics
}

func NewDefaultSettlementUsecase(
	trackRepo domain.TrackRepository,
	userRepo domain.UserRepository,
	wallet domain.WalletService,
	trackUsecase TrackUsecase,
	settlementPublisher *publisher.DefaultKafkaPublisher,
	topic string,
	commissionMetrics *metrics.CommissionMetrics) *DefaultSettlementUsecase {

	return &DefaultSettlementUsecase{
		TrackRepo:    trackRepo,
		UserRepo:     userRepo,
		Wallet:       wallet,
		TrackUsecase: trackUsecase,
		Publisher:    settlementPublisher,
		Topic:        topic,
		Metrics:      commissionMetrics,
	}
}

func (uc *DefaultSettlementUsecase) ManualTopUp(ctx context.Context, input *topupdto.ManualTopUpInput) (*topupdto.TopUpOutput, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if input.RequestedBy != user.ID {
		return nil, domain.ErrNotAllowed
	}
	if !user.IsCoach {
		return nil, domain.ErrNotCoach
	}

	closed, err := uc.TrackRepo.GetClosedTracks(user.ID)
	if err != nil {
		return nil, err
	}
	if len(closed) == 0 {
		return nil, domain.ErrNoBalance
	}

	available := availableBalance(closed)
	if available <= 0 {
		return nil, domain.ErrNoBalance
	}
	if input.Amount > available {
		return nil, domain.ErrAmountExceedsBalance
	}

	// The balance is re-checked and reserved in one store transaction
	// before any wallet money moves, so concurrent top-ups summing to
	// more than the available balance cannot all go through.
	if err := uc.TrackRepo.RecordTransfer(user.ID, input.Amount); err != nil {
		return nil, err
	}

	walletBalance, err := uc.Wallet.Credit(ctx, user.PartnerID, input.Amount, "Top-up from Commission Balance")
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.TopUpErrorsTotal.WithLabelValues(publisher.SettlementModeManual).Inc()
		}
		if releaseErr := uc.TrackRepo.ReleaseTransfer(user.ID, input.Amount); releaseErr != nil {
			slog.Error("failed to release reserved commission",
				"user_id", user.ID, "amount", input.Amount, "error", releaseErr.Error())
		}
		return nil, err
	}

	newBalance, err := uc.TrackUsecase.RefreshBalance(user.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("commission transferred to wallet",
		"user_id", user.ID, "amount", input.Amount,
		"new_balance", newBalance, "wallet_balance", walletBalance)
	uc.recordTopUp(publisher.SettlementModeManual, input.Amount)
	uc.publishSettlement(publisher.SettlementEvent{
		UserID:        user.ID,
		PartnerID:     user.PartnerID,
		Amount:        input.Amount,
		Mode:          publisher.SettlementModeManual,
		WalletBalance: walletBalance,
	})

	return &topupdto.TopUpOutput{
		Amount:        input.Amount,
		NewBalance:    newBalance,
		WalletBalance: walletBalance,
	}, nil
}

func (uc *DefaultSettlementUsecase) AutoTopUpSweep(ctx context.Context) (*topupdto.SweepSummary, error) {
	coaches, err := uc.UserRepo.GetCoaches()
	if err != nil {
		return nil, err
	}

	summary := &topupdto.SweepSummary{}
	for _, coach := range coaches {
		amount, err := uc.sweepCoach(ctx, coach)
		if err != nil {
			// Per-coach isolation: log and move on to the next coach.
			slog.Error("auto top-up failed for coach",
				"user_id", coach.ID, "error", err.Error())
			if uc.Metrics != nil {
				uc.Metrics.TopUpErrorsTotal.WithLabelValues(publisher.SettlementModeAuto).Inc()
			}
			continue
		}
		if amount > 0 {
			summary.Processed++
			summary.TotalAmount += amount
		}
	}

	slog.Info("auto top-up sweep completed",
		"processed", summary.Processed, "total_amount", summary.TotalAmount)
	return summary, nil
}

func (uc *DefaultSettlementUsecase) sweepCoach(ctx context.Context, coach *domain.User) (float64, error) {
	closed, err := uc.TrackRepo.GetClosedTracks(coach.ID)
	if err != nil {
		return 0, err
	}
	if len(closed) == 0 {
		return 0, nil
	}

	available := availableBalance(closed)
	if available <= 0 {
		return 0, nil
	}

	walletBalance, err := uc.Wallet.Credit(ctx, coach.PartnerID, available, "Automatic Top-up from Commission Balance (Cron)")
	if err != nil {
		return 0, err
	}

	// The sweep settles every closed track in full, unlike the manual
	// flow which only touches the latest one.
	for _, track := range closed {
		if track.Commission <= track.CommissionTransferred {
			continue
		}
		track.CommissionTransferred = track.Commission
		if err := uc.TrackRepo.UpdateTrack(track); err != nil {
			return 0, err
		}
	}

	if _, err := uc.TrackUsecase.RefreshBalance(coach.ID); err != nil {
		return 0, err
	}

	uc.recordTopUp(publisher.SettlementModeAuto, available)
	if uc.Metrics != nil {
		uc.Metrics.SweepCoachesTotal.Inc()
	}
	uc.publishSettlement(publisher.SettlementEvent{
		UserID:        coach.ID,
		PartnerID:     coach.PartnerID,
		Amount:        available,
		Mode:          publisher.SettlementModeAuto,
		WalletBalance: walletBalance,
	})
	return available, nil
}

func availableBalance(closed []*domain.CommissionTrack) float64 {
	var total float64
	for _, track := range closed {
		total += track.Commission - track.CommissionTransferred
	}
	return total
}

func (uc *DefaultSettlementUsecase) recordTopUp(mode string, amount float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.TopUpsTotal.WithLabelValues(mode).Inc()
	uc.Metrics.TopUpAmountTotal.WithLabelValues(mode).Add(amount)
}

func (uc *DefaultSettlementUsecase) publishSettlement(event publisher.SettlementEvent) {
	if uc.Publisher == nil {
		return
	}
	go func() {
		if err := uc.Publisher.PublishSettlement(uc.Topic, event); err != nil {
			slog.Error("failed to publish settlement event",
				"user_id", event.UserID, "error", err.Error())
		}
	}()
}
