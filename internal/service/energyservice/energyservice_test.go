package energyservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GlebRadaev/tapearn/internal/cache"
	"github.com/GlebRadaev/tapearn/internal/config"
	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/price"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// At $0.5 and a $30 daily limit: 150000 energy per day, 1.736/s quantized to 1.7/s,
// 18750 max energy and 75 per click.
var halfDollarParams = domain.EnergyParams{
	CurrentPrice:          0.5,
	DailyLimitTokens:      150000,
	ChargePerSecond:       1.7,
	MaxEnergyPerPartition: 18750,
	DischargePerClick:     75,
}

func NewMock(t *testing.T) (*Service, *MockStore, *MockPriceSource) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	prices := NewMockPriceSource(ctrl)
	service := New(store, prices, config.DefaultLimits())
	service.now = func() time.Time { return fixedNow }
	return service, store, prices
}

func mustJSON(t *testing.T, v any) []byte {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
	sets atomic.Int32
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets.Add(1)
	m.data[key] = value
	return nil
}

func (m *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

type fixedPrice struct {
	price float64
	calls atomic.Int32
}

func (f *fixedPrice) CurrentPrice(context.Context) (float64, error) {
	f.calls.Add(1)
	time.Sleep(10 * time.Millisecond)
	return f.price, nil
}

func TestComputeParameters(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		modify func(l *config.Limits)
		want   domain.EnergyParams
	}{
		{
			name:  "Half dollar",
			price: 0.5,
			want:  halfDollarParams,
		},
		{
			name:  "Charge rounds down to a 0.05 step",
			price: 0.001,
			modify: func(l *config.Limits) {
				l.DailyUSDLimit = decimal.NewFromInt(1000)
			},
			want: domain.EnergyParams{
				CurrentPrice:          0.001,
				DailyLimitTokens:      10000,
				ChargePerSecond:       0.1,
				MaxEnergyPerPartition: 1250,
				DischargePerClick:     5,
			},
		},
		{
			name:  "Price too low for a whole token",
			price: 0.01,
			want: domain.EnergyParams{
				CurrentPrice: 0.01,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := config.DefaultLimits()
			if tt.modify != nil {
				tt.modify(&limits)
			}

			got := ComputeParameters(tt.price, limits)

			assert.Equal(t, tt.want.DailyLimitTokens, got.DailyLimitTokens)
			assert.InDelta(t, tt.want.ChargePerSecond, got.ChargePerSecond, 1e-9)
			assert.InDelta(t, tt.want.MaxEnergyPerPartition, got.MaxEnergyPerPartition, 1e-9)
			assert.InDelta(t, tt.want.DischargePerClick, got.DischargePerClick, 1e-9)
			assert.Equal(t, got, ComputeParameters(tt.price, limits))
		})
	}
}

func TestGetOrComputeParameters(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(store *MockStore, prices *MockPriceSource)
		expectedError error
	}{
		{
			name: "Cache hit",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(mustJSON(t, halfDollarParams), nil)
			},
		},
		{
			name: "Cache miss recomputes and stores",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheMiss)
				prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.5, nil)
				store.EXPECT().Set(gomock.Any(), ParamsKey, gomock.Any(), ParamsTTL).Return(nil)
			},
		},
		{
			name: "Corrupt entry recomputes",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return([]byte("{"), nil)
				prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.5, nil)
				store.EXPECT().Set(gomock.Any(), ParamsKey, gomock.Any(), ParamsTTL).Return(nil)
			},
		},
		{
			name: "Read fault is not a miss",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheRead)
			},
			expectedError: ErrCacheReadFailed,
		},
		{
			name: "Price unavailable caches nothing",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheMiss)
				prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.0, price.ErrPriceUnavailable)
			},
			expectedError: price.ErrPriceUnavailable,
		},
		{
			name: "Zero price caches nothing",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheMiss)
				prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.0, nil)
			},
			expectedError: price.ErrPriceUnavailable,
		},
		{
			name: "Write failure",
			prepareMock: func(store *MockStore, prices *MockPriceSource) {
				store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheMiss)
				prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.5, nil)
				store.EXPECT().Set(gomock.Any(), ParamsKey, gomock.Any(), ParamsTTL).Return(cache.ErrCacheWrite)
			},
			expectedError: ErrCacheWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, prices := NewMock(t)
			tt.prepareMock(store, prices)

			params, err := service.GetOrComputeParameters(context.Background())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, params)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(150000), params.DailyLimitTokens)
				assert.InDelta(t, 1.7, params.ChargePerSecond, 1e-9)
				assert.InDelta(t, 18750, params.MaxEnergyPerPartition, 1e-9)
			}
		})
	}
}

func TestGetOrComputeParameters_CoalescesMisses(t *testing.T) {
	store := newMemStore()
	prices := &fixedPrice{price: 0.5}
	service := New(store, prices, config.DefaultLimits())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			params, err := service.GetOrComputeParameters(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, int64(150000), params.DailyLimitTokens)
		}()
	}
	wg.Wait()

	assert.Less(t, prices.calls.Load(), int32(20))
	assert.Equal(t, prices.calls.Load(), store.sets.Load())
}

type ctxRecordingPrice struct {
	price float64
	calls atomic.Int32
	err   atomic.Value
}

func (c *ctxRecordingPrice) CurrentPrice(ctx context.Context) (float64, error) {
	c.calls.Add(1)
	if err := ctx.Err(); err != nil {
		c.err.Store(err)
	}
	return c.price, nil
}

func TestGetOrComputeParameters_CallerCancelled(t *testing.T) {
	store := newMemStore()
	prices := &ctxRecordingPrice{price: 0.5}
	service := New(store, prices, config.DefaultLimits())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _ = service.GetOrComputeParameters(ctx)

	require.Eventually(t, func() bool { return store.sets.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Nil(t, prices.err.Load())

	params, err := service.GetOrComputeParameters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(150000), params.DailyLimitTokens)
	assert.Equal(t, int32(1), prices.calls.Load())
}

func TestGetOrComputeParameters_LogsCorruptEntry(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	service, store, prices := NewMock(t)
	store.EXPECT().Get(gomock.Any(), ParamsKey).Return([]byte("{"), nil)
	prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.5, nil)
	store.EXPECT().Set(gomock.Any(), ParamsKey, gomock.Any(), ParamsTTL).Return(nil)

	_, err := service.GetOrComputeParameters(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("cached energy parameters are corrupt, recomputing").All()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["error"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, logged)
}

func TestSyncBalance(t *testing.T) {
	tests := []struct {
		name          string
		balance       int64
		value         float64
		prepareMock   func(store *MockStore)
		expectedError error
	}{
		{
			name:    "Stored with five day ttl",
			balance: 100,
			value:   50,
			prepareMock: func(store *MockStore) {
				want := mustJSON(t, domain.EnergySnapshot{Balance: 100, Value: 50, SyncAt: fixedNow})
				store.EXPECT().Set(gomock.Any(), "user:energy:42", want, SnapshotTTL).Return(nil)
			},
		},
		{
			name:          "Negative balance",
			balance:       -1,
			value:         50,
			prepareMock:   func(store *MockStore) {},
			expectedError: ErrInvalidSnapshot,
		},
		{
			name:          "Negative value",
			balance:       1,
			value:         -0.5,
			prepareMock:   func(store *MockStore) {},
			expectedError: ErrInvalidSnapshot,
		},
		{
			name:    "Write failure",
			balance: 100,
			value:   50,
			prepareMock: func(store *MockStore) {
				store.EXPECT().Set(gomock.Any(), "user:energy:42", gomock.Any(), SnapshotTTL).Return(cache.ErrCacheWrite)
			},
			expectedError: ErrCacheWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := NewMock(t)
			tt.prepareMock(store)

			snapshot, err := service.SyncBalance(context.Background(), 42, tt.balance, tt.value)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, snapshot)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.balance, snapshot.Balance)
				assert.Equal(t, tt.value, snapshot.Value)
				assert.Equal(t, fixedNow, snapshot.SyncAt)
			}
		})
	}
}

func TestGetCurrentEnergy(t *testing.T) {
	tests := []struct {
		name          string
		snapshot      []byte
		snapshotErr   error
		wantValue     float64
		wantRecharge  int64
		wantBalance   int64
		expectedError error
	}{
		{
			name:        "No snapshot yields a full default",
			snapshotErr: cache.ErrCacheMiss,
			wantValue:   18750,
		},
		{
			name:         "Linear regeneration",
			snapshot:     []byte(`{"balance":100,"value":50,"sync_at":"2026-03-14T08:59:00Z"}`),
			wantValue:    50 + 1.7*60,
			wantRecharge: 60,
			wantBalance:  100,
		},
		{
			name:         "Recharge window is capped",
			snapshot:     []byte(`{"balance":100,"value":0,"sync_at":"2026-03-13T09:00:00Z"}`),
			wantValue:    18360,
			wantRecharge: 10800,
			wantBalance:  100,
		},
		{
			name:         "Value is capped at max energy",
			snapshot:     []byte(`{"balance":100,"value":18700,"sync_at":"2026-03-14T08:00:00Z"}`),
			wantValue:    18750,
			wantRecharge: 3600,
			wantBalance:  100,
		},
		{
			name:        "Future sync time does not recharge",
			snapshot:    []byte(`{"balance":7,"value":10,"sync_at":"2026-03-14T10:00:00Z"}`),
			wantValue:   10,
			wantBalance: 7,
		},
		{
			name:          "Read fault is not a miss",
			snapshotErr:   cache.ErrCacheRead,
			expectedError: ErrCacheReadFailed,
		},
		{
			name:          "Undecodable snapshot",
			snapshot:      []byte(`[]`),
			expectedError: ErrCacheReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := NewMock(t)
			store.EXPECT().Get(gomock.Any(), ParamsKey).Return(mustJSON(t, halfDollarParams), nil)
			store.EXPECT().Get(gomock.Any(), "user:energy:42").Return(tt.snapshot, tt.snapshotErr)

			snapshot, err := service.GetCurrentEnergy(context.Background(), 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantValue, snapshot.Value, 1e-6)
			assert.Equal(t, tt.wantRecharge, snapshot.SecondsRecharge)
			assert.Equal(t, tt.wantBalance, snapshot.Balance)
			assert.InDelta(t, 1.7, snapshot.ChargePerSecond, 1e-9)
			assert.LessOrEqual(t, snapshot.Value, halfDollarParams.MaxEnergyPerPartition)
		})
	}
}

func TestGetCurrentEnergy_ParametersUnavailable(t *testing.T) {
	service, store, prices := NewMock(t)
	store.EXPECT().Get(gomock.Any(), ParamsKey).Return(nil, cache.ErrCacheMiss)
	prices.EXPECT().CurrentPrice(gomock.Any()).Return(0.0, errors.New("timeout"))

	_, err := service.GetCurrentEnergy(context.Background(), 42)
	assert.Error(t, err)
}

func TestSyncThenReadWithoutElapsedTime(t *testing.T) {
	store := newMemStore()
	service := New(store, &fixedPrice{price: 0.5}, config.DefaultLimits())
	service.now = func() time.Time { return fixedNow }

	_, err := service.SyncBalance(context.Background(), 42, 100, 50)
	require.NoError(t, err)

	snapshot, err := service.GetCurrentEnergy(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 50.0, snapshot.Value)
	assert.Zero(t, snapshot.SecondsRecharge)

	raw, err := store.Get(context.Background(), SnapshotKey(42))
	require.NoError(t, err)
	var stored domain.EnergySnapshot
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, fixedNow, stored.SyncAt)
}

func TestListSnapshots(t *testing.T) {
	t.Run("Collects snapshots and skips expired and malformed keys", func(t *testing.T) {
		service, store, _ := NewMock(t)
		store.EXPECT().Scan(gomock.Any(), "user:energy:*").
			Return([]string{"user:energy:1", "user:energy:2", "user:energy:oops"}, nil)
		store.EXPECT().Get(gomock.Any(), "user:energy:1").
			Return([]byte(`{"balance":300,"value":10,"sync_at":"2026-03-14T08:00:00Z"}`), nil)
		store.EXPECT().Get(gomock.Any(), "user:energy:2").Return(nil, cache.ErrCacheMiss)

		snapshots, err := service.ListSnapshots(context.Background())

		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, int64(300), snapshots[1].Balance)
	})

	t.Run("Scan fault", func(t *testing.T) {
		service, store, _ := NewMock(t)
		store.EXPECT().Scan(gomock.Any(), "user:energy:*").Return(nil, cache.ErrCacheRead)

		_, err := service.ListSnapshots(context.Background())
		assert.ErrorIs(t, err, ErrCacheReadFailed)
	})

	t.Run("Read fault", func(t *testing.T) {
		service, store, _ := NewMock(t)
		store.EXPECT().Scan(gomock.Any(), "user:energy:*").Return([]string{"user:energy:1"}, nil)
		store.EXPECT().Get(gomock.Any(), "user:energy:1").Return(nil, cache.ErrCacheRead)

		_, err := service.ListSnapshots(context.Background())
		assert.ErrorIs(t, err, ErrCacheReadFailed)
	})
}
