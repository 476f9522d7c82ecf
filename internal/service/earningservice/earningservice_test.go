package earningservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/pg"
	"github.com/GlebRadaev/tapearn/internal/price"
)

const (
	userID    = int64(42)
	halfPrice = 0.5
)

var (
	// 09:30 UTC falls into the third four-hour partition.
	clickTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	today     = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
)

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFakeService(store *memStore, now *time.Time) *Service {
	s := New(store, store, store, nil, config.DefaultLimits())
	s.now = func() time.Time { return *now }
	return s
}

func NewMock(t *testing.T) (*Service, *MockEarningRepo, *MockUserRepo, *MockPriceSource) {
	ctrl := gomock.NewController(t)
	earningRepo := NewMockEarningRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	prices := NewMockPriceSource(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()

	service := New(earningRepo, userRepo, txManager, prices, config.DefaultLimits())
	service.now = func() time.Time { return clickTime }
	service.newID = func() uuid.UUID { return uuid.MustParse("7f8c2f43-4c5a-4d0b-9f3e-0b3c5d1c2a11") }
	return service, earningRepo, userRepo, prices
}

func TestProcessClick_FillsPartitionExactly(t *testing.T) {
	store := newMemStore(userID)
	now := clickTime
	service := newFakeService(store, &now)
	ctx := context.Background()

	for i := 1; i <= 250; i++ {
		result, err := service.ProcessClick(ctx, userID, 200, halfPrice)
		require.NoError(t, err)
		require.True(t, result.Accepted, "click %d: %s", i, result.Reason)
		assert.True(t, usd("0.02").Equal(result.EarnedUSD))
		assert.Equal(t, int64(40000), result.EarnedTokens)
		assert.Equal(t, 3, result.PartitionNumber)
		now = now.Add(time.Second)
	}

	p, _ := store.GetPartition(ctx, userID, today, 3)
	assert.True(t, usd("5").Equal(p.EarnedUSD))
	assert.Equal(t, 250, p.ClicksCount)
	assert.True(t, p.IsFull)
	require.NotNil(t, p.EndTime)

	result, err := service.ProcessClick(ctx, userID, 200, halfPrice)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, domain.RejectPartitionMaxClicks, result.RejectCode)
	assert.True(t, result.EarnedUSD.IsZero())

	daily, _ := store.GetDaily(ctx, userID, today)
	assert.True(t, usd("5").Equal(daily.TotalEarnedUSD))
	assert.Equal(t, int64(10_000_000), daily.TotalEarnedTokens)
	assert.Equal(t, 1, daily.PartitionsUsed)
	assert.False(t, daily.DailyLimitReached)
	assert.Len(t, store.state.history, 250)
	assert.Equal(t, int64(10_000_000), store.state.users[userID].Balance)
}

func TestProcessClick_ClampsToDailyRemainder(t *testing.T) {
	store := newMemStore(userID)
	now := clickTime
	service := newFakeService(store, &now)
	ctx := context.Background()

	daily, _ := store.LockOrCreateDaily(ctx, userID, today, 6)
	daily.TotalEarnedUSD = usd("29.99")
	daily.TotalEarnedTokens = 59_980_000
	require.NoError(t, store.UpdateDaily(ctx, daily))

	result, err := service.ProcessClick(ctx, userID, 200, halfPrice)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	assert.True(t, usd("0.01").Equal(result.EarnedUSD))
	assert.Equal(t, int64(20000), result.EarnedTokens)
	require.NotNil(t, result.Status)
	assert.True(t, result.Status.DailyLimitReached)
	assert.True(t, result.Status.RemainingUSD.IsZero())

	daily, _ = store.GetDaily(ctx, userID, today)
	assert.True(t, usd("30").Equal(daily.TotalEarnedUSD))
	assert.True(t, daily.DailyLimitReached)

	result, err = service.ProcessClick(ctx, userID, 200, halfPrice)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, domain.RejectDailyLimitReached, result.RejectCode)
}

func TestProcessClick_InvalidPriceTouchesNothing(t *testing.T) {
	for _, p := range []float64{0, -1} {
		store := newMemStore(userID)
		now := clickTime
		service := newFakeService(store, &now)

		result, err := service.ProcessClick(context.Background(), userID, 200, p)

		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Nil(t, result)
		assert.Empty(t, store.state.daily)
		assert.Empty(t, store.state.partitions)
	}
}

func TestProcessClick_RejectionLeavesNoRows(t *testing.T) {
	store := newMemStore(userID)
	now := clickTime
	service := newFakeService(store, &now)

	result, err := service.ProcessClick(context.Background(), userID, 0, halfPrice)

	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, domain.RejectNoEarningsPossible, result.RejectCode)
	assert.Empty(t, store.state.daily)
	assert.Empty(t, store.state.partitions)
	assert.Empty(t, store.state.history)
}

func TestProcessClick_UnknownUserRollsBack(t *testing.T) {
	store := newMemStore()
	now := clickTime
	service := newFakeService(store, &now)

	result, err := service.ProcessClick(context.Background(), userID, 100, halfPrice)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, result)
	assert.Empty(t, store.state.daily)
	assert.Empty(t, store.state.history)
}

func TestProcessClick_PartitionBoundary(t *testing.T) {
	store := newMemStore(userID)
	now := time.Date(2026, 3, 14, 3, 59, 59, 0, time.UTC)
	service := newFakeService(store, &now)
	ctx := context.Background()

	result, err := service.ProcessClick(ctx, userID, 100, halfPrice)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PartitionNumber)

	now = now.Add(time.Second)
	result, err = service.ProcessClick(ctx, userID, 100, halfPrice)
	require.NoError(t, err)
	assert.Equal(t, 2, result.PartitionNumber)

	now = time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	result, err = service.ProcessClick(ctx, userID, 100, halfPrice)
	require.NoError(t, err)
	assert.Equal(t, 6, result.PartitionNumber)

	daily, _ := store.GetDaily(ctx, userID, today)
	assert.Equal(t, 3, daily.PartitionsUsed)
	assert.True(t, usd("0.03").Equal(daily.TotalEarnedUSD))
}

func TestProcessClick_ConcurrentClicksRespectCaps(t *testing.T) {
	store := newMemStore(userID)
	now := clickTime
	service := newFakeService(store, &now)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		total    = decimal.Zero
	)
	for i := 0; i < 300; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.ProcessClick(context.Background(), userID, 200, halfPrice)
			if !assert.NoError(t, err) {
				return
			}
			if result.Accepted {
				mu.Lock()
				accepted++
				total = total.Add(result.EarnedUSD)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 250, accepted)
	assert.True(t, usd("5").Equal(total))
	p, _ := store.GetPartition(context.Background(), userID, today, 3)
	assert.True(t, total.Equal(p.EarnedUSD))
}

func TestProcessClick_EnergyMultiplier(t *testing.T) {
	tests := []struct {
		energy int
		want   string
	}{
		{energy: 1, want: "0.0001"},
		{energy: 50, want: "0.005"},
		{energy: 100, want: "0.01"},
		{energy: 150, want: "0.015"},
		{energy: 1000, want: "0.02"},
		{energy: -20, want: "0"},
	}

	for _, tt := range tests {
		store := newMemStore(userID)
		now := clickTime
		service := newFakeService(store, &now)

		result, err := service.ProcessClick(context.Background(), userID, tt.energy, halfPrice)
		require.NoError(t, err)
		assert.True(t, usd(tt.want).Equal(result.EarnedUSD), "energy %d: got %s", tt.energy, result.EarnedUSD)
		assert.Equal(t, !usd(tt.want).IsZero(), result.Accepted)
	}
}

func TestProcessClick_StoreFailures(t *testing.T) {
	dbErr := errors.New("database error")
	daily := func() *domain.DailyEarning {
		return &domain.DailyEarning{ID: 1, UserID: userID, EarningDate: today, TotalEarnedUSD: decimal.Zero, MaxPartitions: 6}
	}
	part := func() *domain.EarningPartition {
		return &domain.EarningPartition{ID: 11, UserID: userID, DailyEarningID: 1, PartitionNumber: 3, PartitionDate: today, EarnedUSD: decimal.Zero, MaxClicks: 250}
	}
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	knownUser := func(userRepo *MockUserRepo) {
		userRepo.EXPECT().Get(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	}

	tests := []struct {
		name          string
		price         float64
		prepareMock   func(earningRepo *MockEarningRepo, userRepo *MockUserRepo)
		expectedError error
		rejectCode    domain.RejectCode
	}{
		{
			name: "User lookup fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name: "User does not exist",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Daily lock fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(nil, dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name: "Daily limit already reached",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				d := daily()
				d.DailyLimitReached = true
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(d, nil)
			},
			rejectCode: domain.RejectDailyLimitReached,
		},
		{
			name: "Partition lock fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(nil, false, dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name: "Partition at earning cap",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				p := part()
				p.EarnedUSD = usd("5")
				p.ClicksCount = 100
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(p, false, nil)
			},
			rejectCode: domain.RejectPartitionLimitReached,
		},
		{
			name: "Partition marked full",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				p := part()
				p.IsFull = true
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(p, false, nil)
			},
			rejectCode: domain.RejectPartitionFull,
		},
		{
			name: "Partition update fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(part(), true, nil)
				earningRepo.EXPECT().UpdatePartition(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name: "History insert fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(part(), true, nil)
				earningRepo.EXPECT().UpdatePartition(gomock.Any(), gomock.Any()).Return(nil)
				earningRepo.EXPECT().UpdateDaily(gomock.Any(), gomock.Any()).Return(nil)
				earningRepo.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name: "Balance update fails",
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(part(), true, nil)
				earningRepo.EXPECT().UpdatePartition(gomock.Any(), gomock.Any()).Return(nil)
				earningRepo.EXPECT().UpdateDaily(gomock.Any(), gomock.Any()).Return(nil)
				earningRepo.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, h *domain.EarningHistory) (*domain.EarningHistory, error) { return h, nil })
				userRepo.EXPECT().IncrementBalance(gomock.Any(), userID, int64(40000)).Return(nil, dbErr)
			},
			expectedError: ErrPersistence,
		},
		{
			name:  "Token amount does not fit",
			price: 1e-15,
			prepareMock: func(earningRepo *MockEarningRepo, userRepo *MockUserRepo) {
				knownUser(userRepo)
				earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(daily(), nil)
				earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), gomock.Any(), 3, 250, start).Return(part(), true, nil)
			},
			expectedError: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, userRepo, _ := NewMock(t)
			tt.prepareMock(earningRepo, userRepo)
			clickPrice := tt.price
			if clickPrice == 0 {
				clickPrice = halfPrice
			}

			result, err := service.ProcessClick(context.Background(), userID, 200, clickPrice)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.False(t, result.Accepted)
			assert.Equal(t, tt.rejectCode, result.RejectCode)
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestProcessClick_WritesAuditEntry(t *testing.T) {
	service, earningRepo, userRepo, _ := NewMock(t)
	d := &domain.DailyEarning{ID: 1, UserID: userID, EarningDate: today, TotalEarnedUSD: decimal.Zero, MaxPartitions: 6}
	p := &domain.EarningPartition{ID: 11, UserID: userID, DailyEarningID: 1, PartitionNumber: 3, PartitionDate: today, EarnedUSD: decimal.Zero, MaxClicks: 250}

	userRepo.EXPECT().Get(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	earningRepo.EXPECT().LockOrCreateDaily(gomock.Any(), userID, today, 6).Return(d, nil)
	earningRepo.EXPECT().LockOrCreatePartition(gomock.Any(), d, 3, 250, gomock.Any()).Return(p, true, nil)
	earningRepo.EXPECT().UpdatePartition(gomock.Any(), p).Return(nil)
	earningRepo.EXPECT().UpdateDaily(gomock.Any(), d).
		DoAndReturn(func(_ context.Context, daily *domain.DailyEarning) error {
			assert.Equal(t, 1, daily.PartitionsUsed)
			return nil
		})
	earningRepo.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *domain.EarningHistory) (*domain.EarningHistory, error) {
			assert.Equal(t, int64(11), h.PartitionID)
			assert.Equal(t, int64(1), h.DailyEarningID)
			assert.Equal(t, clickTime, h.ClickTimestamp)
			assert.Equal(t, halfPrice, h.PriceAtClick)
			assert.Equal(t, 150, h.EnergyConsumed)
			assert.True(t, usd("0.015").Equal(h.EarnedUSD))
			assert.Equal(t, int64(30000), h.EarnedTokens)
			return h, nil
		})
	userRepo.EXPECT().IncrementBalance(gomock.Any(), userID, int64(30000)).Return(&domain.User{ID: userID, Balance: 30000}, nil)

	result, err := service.ProcessClick(context.Background(), userID, 150, halfPrice)

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "7f8c2f43-4c5a-4d0b-9f3e-0b3c5d1c2a11", result.ClickID.String())
	require.NotNil(t, result.Status)
	assert.Equal(t, 1, result.Status.CurrentPartitionClicks)
	assert.Equal(t, &clickTime, result.Status.LastClickTime)
}

func TestClick(t *testing.T) {
	t.Run("Price unavailable fails closed", func(t *testing.T) {
		service, _, _, prices := NewMock(t)
		prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.0, price.ErrPriceUnavailable)

		result, err := service.Click(context.Background(), userID, 100)

		assert.ErrorIs(t, err, price.ErrPriceUnavailable)
		assert.Nil(t, result)
	})

	t.Run("Zero price is invalid", func(t *testing.T) {
		service, _, _, prices := NewMock(t)
		prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.0, nil)

		_, err := service.Click(context.Background(), userID, 100)

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Live price is used", func(t *testing.T) {
		store := newMemStore(userID)
		now := clickTime
		service := newFakeService(store, &now)
		ctrl := gomock.NewController(t)
		prices := NewMockPriceSource(ctrl)
		prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.25, nil)
		service.prices = prices

		result, err := service.Click(context.Background(), userID, 100)

		require.NoError(t, err)
		assert.Equal(t, int64(40000), result.EarnedTokens)
		assert.Equal(t, 0.25, store.state.history[0].PriceAtClick)
	})
}

func TestGetStatus(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	lastClick := clickTime.Add(-time.Minute)

	tests := []struct {
		name        string
		date        *time.Time
		prepareMock func(earningRepo *MockEarningRepo)
		check       func(t *testing.T, status *domain.DailyStatus)
		expectedErr error
	}{
		{
			name: "No record yields defaults",
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().GetDaily(gomock.Any(), userID, today).Return(nil, nil)
			},
			check: func(t *testing.T, status *domain.DailyStatus) {
				assert.Equal(t, today, status.EarningDate)
				assert.True(t, status.TotalEarnedUSD.IsZero())
				assert.True(t, usd("30").Equal(status.RemainingUSD))
				assert.Equal(t, 6, status.MaxPartitions)
				assert.Equal(t, 3, status.CurrentPartition)
				assert.Equal(t, 250, status.CurrentPartitionMaxClicks)
				assert.Nil(t, status.NextPartitionResetTime)
				assert.Nil(t, status.LastClickTime)
			},
		},
		{
			name: "Today with activity",
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().GetDaily(gomock.Any(), userID, today).Return(&domain.DailyEarning{
					ID: 1, UserID: userID, EarningDate: today, TotalEarnedUSD: usd("7.5"), TotalEarnedTokens: 15_000_000,
					PartitionsUsed: 2, MaxPartitions: 6,
				}, nil)
				earningRepo.EXPECT().GetPartition(gomock.Any(), userID, today, 3).Return(&domain.EarningPartition{
					PartitionNumber: 3, EarnedUSD: usd("2.5"), ClicksCount: 125, MaxClicks: 250,
				}, nil)
				earningRepo.EXPECT().LastHistory(gomock.Any(), int64(1)).Return(&domain.EarningHistory{ClickTimestamp: lastClick}, nil)
			},
			check: func(t *testing.T, status *domain.DailyStatus) {
				assert.True(t, usd("22.5").Equal(status.RemainingUSD))
				assert.Equal(t, 2, status.PartitionsUsed)
				assert.True(t, usd("2.5").Equal(status.CurrentPartitionEarnedUSD))
				assert.Equal(t, 125, status.CurrentPartitionClicks)
				require.NotNil(t, status.NextPartitionResetTime)
				assert.Equal(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), *status.NextPartitionResetTime)
				assert.Equal(t, &lastClick, status.LastClickTime)
			},
		},
		{
			name: "Past date has no upcoming reset",
			date: &yesterday,
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().GetDaily(gomock.Any(), userID, yesterday).Return(&domain.DailyEarning{
					ID: 2, UserID: userID, EarningDate: yesterday, TotalEarnedUSD: usd("30"), DailyLimitReached: true, MaxPartitions: 6,
				}, nil)
				earningRepo.EXPECT().GetPartition(gomock.Any(), userID, yesterday, 3).Return(nil, nil)
				earningRepo.EXPECT().LastHistory(gomock.Any(), int64(2)).Return(nil, nil)
			},
			check: func(t *testing.T, status *domain.DailyStatus) {
				assert.True(t, status.DailyLimitReached)
				assert.True(t, status.RemainingUSD.IsZero())
				assert.Nil(t, status.NextPartitionResetTime)
				assert.Zero(t, status.CurrentPartitionClicks)
			},
		},
		{
			name: "Store failure",
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().GetDaily(gomock.Any(), userID, today).Return(nil, errors.New("database error"))
			},
			expectedErr: ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, _, _ := NewMock(t)
			tt.prepareMock(earningRepo)

			status, err := service.GetStatus(context.Background(), userID, tt.date)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, status.UserID)
			tt.check(t, status)
		})
	}
}

func TestGetSummary(t *testing.T) {
	store := newMemStore(userID)
	now := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)
	service := newFakeService(store, &now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.ProcessClick(ctx, userID, 200, halfPrice)
		require.NoError(t, err)
	}
	now = clickTime
	_, err := service.ProcessClick(ctx, userID, 100, halfPrice)
	require.NoError(t, err)

	summary, err := service.GetSummary(ctx, userID, nil)
	require.NoError(t, err)

	require.Len(t, summary.Partitions, 2)
	assert.Equal(t, 1, summary.Partitions[0].PartitionNumber)
	assert.Equal(t, 3, summary.Partitions[1].PartitionNumber)
	assert.Nil(t, summary.Partitions[0].TimeUntilReset)
	require.NotNil(t, summary.Partitions[1].TimeUntilReset)
	assert.Equal(t, 150*time.Minute, *summary.Partitions[1].TimeUntilReset)
	assert.Equal(t, 4, summary.TotalClicksToday)
	assert.True(t, usd("0.07").Equal(summary.TotalEarnedUSD))
	assert.True(t, usd("0.0175").Equal(summary.AverageEarningsPerClick))
	assert.Equal(t, 2, summary.PartitionsUsed)
}

func TestGetSummary_Empty(t *testing.T) {
	store := newMemStore(userID)
	now := clickTime
	service := newFakeService(store, &now)

	summary, err := service.GetSummary(context.Background(), userID, nil)

	require.NoError(t, err)
	assert.Empty(t, summary.Partitions)
	assert.Zero(t, summary.TotalClicksToday)
	assert.True(t, summary.AverageEarningsPerClick.IsZero())
}

func TestResetPartition(t *testing.T) {
	t.Run("Re-opens a full partition and keeps daily totals", func(t *testing.T) {
		store := newMemStore(userID)
		now := clickTime
		service := newFakeService(store, &now)
		ctx := context.Background()

		for i := 0; i < 250; i++ {
			_, err := service.ProcessClick(ctx, userID, 200, halfPrice)
			require.NoError(t, err)
		}
		now = now.Add(time.Minute)

		require.NoError(t, service.ResetPartition(ctx, userID, 3))

		p, _ := store.GetPartition(ctx, userID, today, 3)
		assert.Zero(t, p.ClicksCount)
		assert.True(t, p.EarnedUSD.IsZero())
		assert.False(t, p.IsFull)
		assert.Nil(t, p.EndTime)
		assert.Equal(t, &now, p.StartTime)

		daily, _ := store.GetDaily(ctx, userID, today)
		assert.True(t, usd("5").Equal(daily.TotalEarnedUSD))
		require.NotNil(t, daily.LastPartitionReset)
		assert.Equal(t, now, *daily.LastPartitionReset)

		result, err := service.ProcessClick(ctx, userID, 200, halfPrice)
		require.NoError(t, err)
		assert.True(t, result.Accepted)
	})

	tests := []struct {
		name        string
		number      int
		prepareMock func(earningRepo *MockEarningRepo)
		expectedErr error
	}{
		{
			name:        "Number below range",
			number:      0,
			prepareMock: func(earningRepo *MockEarningRepo) {},
			expectedErr: ErrInvalidPartition,
		},
		{
			name:        "Number above range",
			number:      7,
			prepareMock: func(earningRepo *MockEarningRepo) {},
			expectedErr: ErrInvalidPartition,
		},
		{
			name:   "Missing partition",
			number: 2,
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().LockPartition(gomock.Any(), userID, today, 2).Return(nil, nil)
			},
			expectedErr: ErrPartitionNotFound,
		},
		{
			name:   "Stamp fails",
			number: 2,
			prepareMock: func(earningRepo *MockEarningRepo) {
				earningRepo.EXPECT().LockPartition(gomock.Any(), userID, today, 2).
					Return(&domain.EarningPartition{ID: 5, DailyEarningID: 1, PartitionNumber: 2}, nil)
				earningRepo.EXPECT().UpdatePartition(gomock.Any(), gomock.Any()).Return(nil)
				earningRepo.EXPECT().SetLastPartitionReset(gomock.Any(), int64(1), clickTime).Return(errors.New("database error"))
			},
			expectedErr: ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, _, _ := NewMock(t)
			tt.prepareMock(earningRepo)

			err := service.ResetPartition(context.Background(), userID, tt.number)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
