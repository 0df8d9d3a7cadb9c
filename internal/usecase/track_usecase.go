package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/metrics"
	trackdto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/track"
)

const DefaultCycleDays = 90

type TrackUsecase interface {
	CreateTrack(input *trackdto.CreateTrackInput) (*domain.CommissionTrack, error)
	// RecomputeTrack runs one recompute pass over the track: purchase
	// aggregation, slice matching, auto-close with successor creation,
	// and balance refresh.
	RecomputeTrack(ctx context.Context, trackID string) error
	// HandleInvoiceCreated ensures a coach whose partner got a new
	// customer invoice has an accrual cycle to absorb it.
	HandleInvoiceCreated(ctx context.Context, partnerID string) error
	// HandleInvoicePaid recomputes the active tracks of the coach
	// affected by a partner's invoice (the partner's own user when a
	// coach, otherwise the referring coach).
	HandleInvoicePaid(ctx context.Context, partnerID string) error
	// ProcessExpiredTracks is the daily sweep over active tracks whose
	// close date has passed.
	ProcessExpiredTracks(ctx context.Context) error
	RefreshBalance(userID string) (float64, error)
	GetTracksByUserID(userID string) ([]*domain.CommissionTrack, error)
}

type DefaultTrackUsecase struct {
	TrackRepo    domain.TrackRepository
	UserRepo     domain.UserRepository
	OrgRepo      domain.OrganizationRepository
	SliceUsecase SliceUsecase
	Aggregator   domain.InvoiceAggregator
	Clock        domain.Clock
	Metrics      *metrics.CommissionMetrics
	CycleDays    int
}

func NewDefaultTrackUsecase(
	trackRepo domain.TrackRepository,
	userRepo domain.UserRepository,
	orgRepo domain.OrganizationRepository,
	sliceUsecase SliceUsecase,
	aggregator domain.InvoiceAggregator,
	clock domain.Clock,
	commissionMetrics *metrics.CommissionMetrics) *DefaultTrackUsecase {

	return &DefaultTrackUsecase{
		TrackRepo:    trackRepo,
		UserRepo:     userRepo,
		OrgRepo:      orgRepo,
		SliceUsecase: sliceUsecase,
		Aggregator:   aggregator,
		Clock:        clock,
		Metrics:      commissionMetrics,
		CycleDays:    DefaultCycleDays,
	}
}

func (uc *DefaultTrackUsecase) CreateTrack(input *trackdto.CreateTrackInput) (*domain.CommissionTrack, error) {
	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsCoach {
		return nil, domain.ErrNotCoach
	}
	if input.StartDate.After(input.CloseDate) {
		return nil, domain.ErrTrackDates
	}

	status := input.Status
	if status == "" {
		status = domain.TrackStatusInactive
	}
	track := &domain.CommissionTrack{
		UserID:    input.UserID,
		Seq:       input.Seq,
		StartDate: domain.Date(input.StartDate),
		CloseDate: domain.Date(input.CloseDate),
		Status:    status,
	}
	if err := uc.TrackRepo.CreateTrack(track); err != nil {
		return nil, err
	}
	if uc.Metrics != nil {
		uc.Metrics.TracksCreatedTotal.WithLabelValues("manual").Inc()
	}
	return track, nil
}

func (uc *DefaultTrackUsecase) RecomputeTrack(ctx context.Context, trackID string) error {
	track, err := uc.TrackRepo.GetTrackByID(trackID)
	if err != nil {
		return err
	}
	today := uc.Clock.Today()

	user, err := uc.UserRepo.GetUserByID(track.UserID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	snapshot, err := uc.computeSnapshot(ctx, track, user)
	if err != nil {
		return err
	}
	track.DirectPurchase = snapshot.DirectPurchase
	track.IndirectPurchase = snapshot.IndirectPurchase
	track.TotalPurchase = snapshot.TotalPurchase
	track.Commission = snapshot.Commission
	track.CommissionRate = snapshot.CommissionRate

	// The closed status flips exactly once, so a recompute of an
	// already-closed track never spawns a second successor.
	closedNow := track.Status == domain.TrackStatusActive && track.CloseDate.Before(today)
	if closedNow {
		track.Status = domain.TrackStatusClosed
	}

	if err := uc.TrackRepo.UpdateTrack(track); err != nil {
		return err
	}

	if closedNow {
		slog.Info("closing commission cycle",
			"user_id", track.UserID, "seq", track.Seq, "commission", track.Commission)
		if uc.Metrics != nil {
			uc.Metrics.TracksClosedTotal.Inc()
		}
		if err := uc.openSuccessor(track, user); err != nil {
			return err
		}
	}

	if _, err := uc.RefreshBalance(track.UserID); err != nil {
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.CommissionComputedTotal.Inc()
	}
	return nil
}

// computeSnapshot aggregates the track window's purchases and matches
// the slice table. Missing user or dates zero everything out.
func (uc *DefaultTrackUsecase) computeSnapshot(ctx context.Context, track *domain.CommissionTrack, user *domain.User) (domain.TrackSnapshot, error) {
	var snapshot domain.TrackSnapshot
	if user == nil || track.StartDate.IsZero() || track.CloseDate.IsZero() {
		return snapshot, nil
	}

	direct, err := uc.Aggregator.SumPaidInvoices(ctx, user.PartnerID, track.StartDate, track.CloseDate)
	if err != nil {
		return snapshot, err
	}

	var indirect float64
	referred, err := uc.UserRepo.GetReferredUsers(user.ID)
	if err != nil {
		return snapshot, err
	}
	for _, refUser := range referred {
		sum, err := uc.Aggregator.SumPaidInvoices(ctx, refUser.PartnerID, track.StartDate, track.CloseDate)
		if err != nil {
			return snapshot, err
		}
		indirect += sum
	}

	total := direct + indirect

	var rate float64
	matched, err := uc.SliceUsecase.FindSlice(total)
	if err != nil {
		return snapshot, err
	}
	if matched != nil {
		rate = matched.Rate
	}

	snapshot.DirectPurchase = direct
	snapshot.IndirectPurchase = indirect
	snapshot.TotalPurchase = total
	snapshot.Commission = total * rate
	snapshot.CommissionRate = rate * 100
	return snapshot, nil
}

func (uc *DefaultTrackUsecase) openSuccessor(closed *domain.CommissionTrack, user *domain.User) error {
	cycleDays := uc.cycleDaysFor(user)
	nextStart := closed.CloseDate.AddDate(0, 0, 1)
	successor := &domain.CommissionTrack{
		UserID:    closed.UserID,
		Seq:       closed.Seq + 1,
		StartDate: nextStart,
		CloseDate: nextStart.AddDate(0, 0, cycleDays),
		Status:    domain.TrackStatusActive,
	}
	if err := uc.TrackRepo.CreateTrack(successor); err != nil {
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.TracksCreatedTotal.WithLabelValues("auto_close").Inc()
	}
	return nil
}

func (uc *DefaultTrackUsecase) HandleInvoiceCreated(ctx context.Context, partnerID string) error {
	user, err := uc.UserRepo.GetUserByPartnerID(partnerID)
	if err != nil {
		return err
	}
	if user == nil || !user.IsCoach {
		return nil
	}
	today := uc.Clock.Today()

	// Current cycle absorbs the purchase.
	current, err := uc.TrackRepo.GetActiveTrackContaining(user.ID, today)
	if err != nil {
		return err
	}
	if current != nil {
		return nil
	}

	// A future active track already queued means nothing to do either,
	// otherwise two active tracks would coexist.
	future, err := uc.TrackRepo.GetFutureActiveTrack(user.ID, today)
	if err != nil {
		return err
	}
	if future != nil {
		return nil
	}

	last, err := uc.TrackRepo.GetLastTrack(user.ID)
	if err != nil {
		return err
	}
	start := today
	seq := 1
	if last != nil {
		start = last.CloseDate.AddDate(0, 0, 1)
		seq = last.Seq + 1
	}

	track := &domain.CommissionTrack{
		UserID:    user.ID,
		Seq:       seq,
		StartDate: start,
		CloseDate: start.AddDate(0, 0, uc.cycleDaysFor(user)),
		Status:    domain.TrackStatusActive,
	}
	if err := uc.TrackRepo.CreateTrack(track); err != nil {
		return err
	}
	slog.Info("new commission track created",
		"user_id", user.ID, "seq", seq, "start_date", track.StartDate, "close_date", track.CloseDate)
	if uc.Metrics != nil {
		uc.Metrics.TracksCreatedTotal.WithLabelValues("invoice").Inc()
	}
	return nil
}

func (uc *DefaultTrackUsecase) HandleInvoicePaid(ctx context.Context, partnerID string) error {
	coach, err := uc.UserRepo.FindCoachForPartner(partnerID)
	if err != nil {
		return err
	}
	if coach == nil {
		return nil
	}

	tracks, err := uc.TrackRepo.GetActiveTracks(coach.ID)
	if err != nil {
		return err
	}
	for _, track := range tracks {
		if err := uc.RecomputeTrack(ctx, track.ID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *DefaultTrackUsecase) ProcessExpiredTracks(ctx context.Context) error {
	today := uc.Clock.Today()
	expired, err := uc.TrackRepo.GetExpiredActiveTracks(today)
	if err != nil {
		return err
	}
	for _, track := range expired {
		if err := uc.RecomputeTrack(ctx, track.ID); err != nil {
			slog.Error("failed to process expired track",
				"track_id", track.ID, "user_id", track.UserID, "error", err.Error())
		}
	}
	return nil
}

// RefreshBalance recomputes max(sum(commission) - sum(transferred), 0)
// over the user's closed tracks and writes it onto all the user's
// tracks.
func (uc *DefaultTrackUsecase) RefreshBalance(userID string) (float64, error) {
	closed, err := uc.TrackRepo.GetClosedTracks(userID)
	if err != nil {
		return 0, err
	}
	var totalCommission, totalTransferred float64
	for _, track := range closed {
		totalCommission += track.Commission
		totalTransferred += track.CommissionTransferred
	}
	balance := totalCommission - totalTransferred
	if balance < 0 {
		balance = 0
	}
	if err := uc.TrackRepo.UpdateCurrentBalance(userID, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (uc *DefaultTrackUsecase) GetTracksByUserID(userID string) ([]*domain.CommissionTrack, error) {
	return uc.TrackRepo.GetTracksByUserID(userID)
}

func (uc *DefaultTrackUsecase) cycleDaysFor(user *domain.User) int {
	fallback := uc.CycleDays
	if fallback <= 0 {
		fallback = DefaultCycleDays
	}
	if user == nil || user.OrgID == "" || uc.OrgRepo == nil {
		return fallback
	}
	org, err := uc.OrgRepo.GetOrganizationByID(user.OrgID)
	if err != nil || org == nil || org.CommissionCycleDays <= 0 {
		return fallback
	}
	return org.CommissionCycleDays
}
