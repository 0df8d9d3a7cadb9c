package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	slicedto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/slice"
	trackdto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDefaultSlices(t *testing.T, env *testEnv) {
	t.Helper()
	for _, in := range []*slicedto.CreateSliceInput{
		{Name: "Bronze", FromAmount: 0, ToAmount: 1000, Rate: 0.05},
		{Name: "Silver", FromAmount: 1000.01, ToAmount: 5000, Rate: 0.10},
	} {
		_, err := env.SliceUC.CreateSlice(in)
		require.NoError(t, err)
	}
}

func TestCreateTrack_NonCoachRejected(t *testing.T) {
	env := newTestEnv(t)
	player := env.createPlayer(t, "Player One", "")

	_, err := env.TrackUC.CreateTrack(&trackdto.CreateTrackInput{
		UserID:    player.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
	})
	assert.ErrorIs(t, err, domain.ErrNotCoach)

	tracks, err := env.TrackRepo.GetTracksByUserID(player.ID)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestCreateTrack_RejectsInvertedDates(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")

	_, err := env.TrackUC.CreateTrack(&trackdto.CreateTrackInput{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.April, 1),
		CloseDate: date(2025, time.January, 1),
	})
	assert.ErrorIs(t, err, domain.ErrTrackDates)
}

func TestRecomputeTrack_CommissionFromSliceTable(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	env.addPaidInvoice(t, coach.PartnerID, 800, date(2025, time.January, 10))

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	got, err := env.TrackRepo.GetTrackByID(track.ID)
	require.NoError(t, err)
	assert.InDelta(t, 800.0, got.DirectPurchase, 1e-9)
	assert.InDelta(t, 0.0, got.IndirectPurchase, 1e-9)
	assert.InDelta(t, 800.0, got.TotalPurchase, 1e-9)
	assert.InDelta(t, 40.0, got.Commission, 1e-9)
	assert.InDelta(t, 5.0, got.CommissionRate, 1e-9)
	assert.Equal(t, domain.TrackStatusActive, got.Status)
}

func TestRecomputeTrack_IgnoresNonQualifyingInvoices(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	env.addPaidInvoice(t, coach.PartnerID, 300, date(2025, time.January, 10))
	// Unpaid, drafted and out-of-window invoices never count.
	require.NoError(t, env.InvoiceRepo.SaveInvoice(&domain.Invoice{
		ID: "inv-unpaid", PartnerID: coach.PartnerID,
		MoveType: domain.MoveTypeOutInvoice, State: domain.InvoiceStatePosted,
		PaymentState: "not_paid", AmountUntaxed: 500,
		InvoiceDate: date(2025, time.January, 11),
	}))
	require.NoError(t, env.InvoiceRepo.SaveInvoice(&domain.Invoice{
		ID: "inv-draft", PartnerID: coach.PartnerID,
		MoveType: domain.MoveTypeOutInvoice, State: "draft",
		PaymentState: domain.PaymentStatePaid, AmountUntaxed: 500,
		InvoiceDate: date(2025, time.January, 12),
	}))
	env.addPaidInvoice(t, coach.PartnerID, 500, date(2025, time.June, 1))

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	got, err := env.TrackRepo.GetTrackByID(track.ID)
	require.NoError(t, err)
	assert.InDelta(t, 300.0, got.TotalPurchase, 1e-9)
}

func TestRecomputeTrack_InPaymentCounts(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	require.NoError(t, env.InvoiceRepo.SaveInvoice(&domain.Invoice{
		ID: "inv-inpay", PartnerID: coach.PartnerID,
		MoveType: domain.MoveTypeOutInvoice, State: domain.InvoiceStatePosted,
		PaymentState: domain.PaymentStateInPayment, AmountUntaxed: 200,
		InvoiceDate: date(2025, time.February, 1),
	}))

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	got, err := env.TrackRepo.GetTrackByID(track.ID)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, got.DirectPurchase, 1e-9)
}

func TestRecomputeTrack_OneLevelReferrals(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")
	player := env.createPlayer(t, "Player", coach.ID)
	// Referred by the player, two hops away from the coach.
	grandPlayer := env.createPlayer(t, "Grand Player", player.ID)

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	env.addPaidInvoice(t, coach.PartnerID, 600, date(2025, time.January, 10))
	env.addPaidInvoice(t, player.PartnerID, 300, date(2025, time.January, 20))
	env.addPaidInvoice(t, grandPlayer.PartnerID, 1000, date(2025, time.January, 25))

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	got, err := env.TrackRepo.GetTrackByID(track.ID)
	require.NoError(t, err)
	assert.InDelta(t, 600.0, got.DirectPurchase, 1e-9)
	// Only the directly referred player's purchase counts.
	assert.InDelta(t, 300.0, got.IndirectPurchase, 1e-9)
	assert.InDelta(t, 900.0, got.TotalPurchase, 1e-9)
	assert.InDelta(t, 45.0, got.Commission, 1e-9)
}

func TestRecomputeTrack_AutoCloseOpensSuccessor(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	closeDate := date(2025, time.January, 10)
	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2024, time.October, 12),
		CloseDate: closeDate,
		Status:    domain.TrackStatusActive,
	})
	env.addPaidInvoice(t, coach.PartnerID, 800, date(2024, time.December, 1))
	env.Clock.today = date(2025, time.January, 15)

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	var closed, successor *domain.CommissionTrack
	for _, tr := range tracks {
		switch tr.Seq {
		case 1:
			closed = tr
		case 2:
			successor = tr
		}
	}
	require.NotNil(t, closed)
	require.NotNil(t, successor)

	assert.Equal(t, domain.TrackStatusClosed, closed.Status)
	assert.InDelta(t, 40.0, closed.Commission, 1e-9)

	assert.Equal(t, domain.TrackStatusActive, successor.Status)
	assert.Equal(t, closeDate.AddDate(0, 0, 1), successor.StartDate.UTC())
	assert.Equal(t, closeDate.AddDate(0, 0, 91), successor.CloseDate.UTC())
}

func TestRecomputeTrack_CloseIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2024, time.October, 12),
		CloseDate: date(2025, time.January, 10),
		Status:    domain.TrackStatusActive,
	})

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))
	// A second recompute of the now-closed track must not spawn another
	// successor.
	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestRecomputeTrack_OrgCycleDaysOverride(t *testing.T) {
	env := newTestEnv(t)
	org := &domain.Organization{Name: "Academy", CommissionCycleDays: 30}
	require.NoError(t, env.OrgRepo.CreateOrganization(org))

	coach := &domain.User{
		PartnerID: "partner-org-coach",
		Name:      "Org Coach",
		IsCoach:   true,
		OrgID:     org.ID,
	}
	require.NoError(t, env.UserRepo.CreateUser(coach))

	closeDate := date(2025, time.January, 10)
	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2024, time.October, 12),
		CloseDate: closeDate,
		Status:    domain.TrackStatusActive,
	})

	require.NoError(t, env.TrackUC.RecomputeTrack(context.Background(), track.ID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	var successor *domain.CommissionTrack
	for _, tr := range tracks {
		if tr.Seq == 2 {
			successor = tr
		}
	}
	require.NotNil(t, successor)
	assert.Equal(t, closeDate.AddDate(0, 0, 1), successor.StartDate.UTC())
	// The organization's 30 day cycle wins over the service default.
	assert.Equal(t, closeDate.AddDate(0, 0, 31), successor.CloseDate.UTC())
}

func TestHandleInvoiceCreated_FirstTrack(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")
	env.Clock.today = date(2025, time.March, 1)

	require.NoError(t, env.TrackUC.HandleInvoiceCreated(context.Background(), coach.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, 1, tracks[0].Seq)
	assert.Equal(t, domain.TrackStatusActive, tracks[0].Status)
	assert.Equal(t, date(2025, time.March, 1), tracks[0].StartDate.UTC())
	assert.Equal(t, date(2025, time.May, 30), tracks[0].CloseDate.UTC())
}

func TestHandleInvoiceCreated_ActiveWindowAbsorbs(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")
	env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})

	require.NoError(t, env.TrackUC.HandleInvoiceCreated(context.Background(), coach.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}

func TestHandleInvoiceCreated_FutureActiveSkips(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")
	env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       3,
		StartDate: date(2025, time.February, 1),
		CloseDate: date(2025, time.May, 2),
		Status:    domain.TrackStatusActive,
	})

	require.NoError(t, env.TrackUC.HandleInvoiceCreated(context.Background(), coach.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}

func TestHandleInvoiceCreated_ChainsFromLastTrack(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")
	env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       4,
		StartDate: date(2024, time.October, 1),
		CloseDate: date(2024, time.December, 30),
		Status:    domain.TrackStatusClosed,
	})

	require.NoError(t, env.TrackUC.HandleInvoiceCreated(context.Background(), coach.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	var created *domain.CommissionTrack
	for _, tr := range tracks {
		if tr.Seq == 5 {
			created = tr
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, domain.TrackStatusActive, created.Status)
	assert.Equal(t, date(2024, time.December, 31), created.StartDate.UTC())
	assert.Equal(t, date(2025, time.March, 31), created.CloseDate.UTC())
}

func TestHandleInvoiceCreated_NonCoachIgnored(t *testing.T) {
	env := newTestEnv(t)
	player := env.createPlayer(t, "Player", "")

	require.NoError(t, env.TrackUC.HandleInvoiceCreated(context.Background(), player.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(player.ID)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestHandleInvoicePaid_RecomputesReferringCoach(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")
	player := env.createPlayer(t, "Player", coach.ID)

	track := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	env.addPaidInvoice(t, player.PartnerID, 400, date(2025, time.January, 20))

	// The payer is a plain player, so the recompute lands on the coach
	// who referred them.
	require.NoError(t, env.TrackUC.HandleInvoicePaid(context.Background(), player.PartnerID))

	got, err := env.TrackRepo.GetTrackByID(track.ID)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, got.IndirectPurchase, 1e-9)
	assert.InDelta(t, 20.0, got.Commission, 1e-9)
}

func TestProcessExpiredTracks_ClosesAndChains(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")
	other := env.createCoach(t, "Other Coach")

	expired := env.createTrack(t, &domain.CommissionTrack{
		UserID:    coach.ID,
		Seq:       1,
		StartDate: date(2024, time.October, 1),
		CloseDate: date(2024, time.December, 30),
		Status:    domain.TrackStatusActive,
	})
	stillOpen := env.createTrack(t, &domain.CommissionTrack{
		UserID:    other.ID,
		Seq:       1,
		StartDate: date(2025, time.January, 1),
		CloseDate: date(2025, time.April, 1),
		Status:    domain.TrackStatusActive,
	})
	env.Clock.today = date(2025, time.January, 15)

	require.NoError(t, env.TrackUC.ProcessExpiredTracks(context.Background()))

	got, err := env.TrackRepo.GetTrackByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackStatusClosed, got.Status)

	coachTracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	assert.Len(t, coachTracks, 2)

	untouched, err := env.TrackRepo.GetTrackByID(stillOpen.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackStatusActive, untouched.Status)
}

func TestRefreshBalance_NeverNegative(t *testing.T) {
	env := newTestEnv(t)
	coach := env.createCoach(t, "Coach")

	env.createTrack(t, &domain.CommissionTrack{
		UserID:                coach.ID,
		Seq:                   1,
		StartDate:             date(2024, time.July, 1),
		CloseDate:             date(2024, time.September, 29),
		Status:                domain.TrackStatusClosed,
		Commission:            100,
		CommissionTransferred: 250,
	})

	balance, err := env.TrackUC.RefreshBalance(coach.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)
}

func TestTrackLifecycle_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	seedDefaultSlices(t, env)
	coach := env.createCoach(t, "Coach")

	ctx := context.Background()
	start := date(2025, time.January, 15)
	env.Clock.today = start

	// First paid invoice opens the first cycle.
	require.NoError(t, env.TrackUC.HandleInvoiceCreated(ctx, coach.PartnerID))
	env.addPaidInvoice(t, coach.PartnerID, 800, start)
	require.NoError(t, env.TrackUC.HandleInvoicePaid(ctx, coach.PartnerID))

	tracks, err := env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	first := tracks[0]
	assert.Equal(t, start, first.StartDate.UTC())
	assert.Equal(t, start.AddDate(0, 0, 90), first.CloseDate.UTC())
	assert.InDelta(t, 40.0, first.Commission, 1e-9)

	// The daily sweep after the close date settles the cycle and opens
	// the next one.
	env.Clock.today = start.AddDate(0, 0, 91)
	require.NoError(t, env.TrackUC.ProcessExpiredTracks(ctx))

	tracks, err = env.TrackRepo.GetTracksByUserID(coach.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	var closed, successor *domain.CommissionTrack
	for _, tr := range tracks {
		switch tr.Seq {
		case 1:
			closed = tr
		case 2:
			successor = tr
		}
	}
	require.NotNil(t, closed)
	require.NotNil(t, successor)
	assert.Equal(t, domain.TrackStatusClosed, closed.Status)
	assert.Equal(t, start.AddDate(0, 0, 91), successor.StartDate.UTC())
	assert.Equal(t, start.AddDate(0, 0, 181), successor.CloseDate.UTC())
	assert.InDelta(t, 40.0, closed.CurrentBalance, 1e-9)
}
