package earningservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/tapearn/internal/domain"
	"github.com/GlebRadaev/tapearn/internal/pg"
)

type dailyKey struct {
	userID int64
	date   time.Time
}

type partitionKey struct {
	userID int64
	date   time.Time
	number int
}

type memState struct {
	nextID     int64
	daily      map[dailyKey]domain.DailyEarning
	partitions map[partitionKey]domain.EarningPartition
	history    []domain.EarningHistory
	users      map[int64]domain.User
}

func (s memState) clone() memState {
	c := memState{
		nextID:     s.nextID,
		daily:      make(map[dailyKey]domain.DailyEarning, len(s.daily)),
		partitions: make(map[partitionKey]domain.EarningPartition, len(s.partitions)),
		history:    append([]domain.EarningHistory(nil), s.history...),
		users:      make(map[int64]domain.User, len(s.users)),
	}
	for k, v := range s.daily {
		c.daily[k] = v
	}
	for k, v := range s.partitions {
		c.partitions[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// memStore is an in-memory EarningRepo and UserRepo. Its TXManager
// serializes transactions and restores the previous state when fn fails.
type memStore struct {
	mu    sync.Mutex
	state memState
}

var _ EarningRepo = (*memStore)(nil)
var _ UserRepo = (*memStore)(nil)
var _ pg.TXManager = (*memStore)(nil)

func newMemStore(userIDs ...int64) *memStore {
	m := &memStore{state: memState{
		daily:      map[dailyKey]domain.DailyEarning{},
		partitions: map[partitionKey]domain.EarningPartition{},
		users:      map[int64]domain.User{},
	}}
	for _, id := range userIDs {
		m.state.users[id] = domain.User{ID: id}
	}
	return m
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := m.state.clone()
	if err := fn(ctx); err != nil {
		m.state = saved
		return err
	}
	return nil
}

func (m *memStore) id() int64 {
	m.state.nextID++
	return m.state.nextID
}

func (m *memStore) LockOrCreateDaily(_ context.Context, userID int64, date time.Time, maxPartitions int) (*domain.DailyEarning, error) {
	key := dailyKey{userID, date}
	d, ok := m.state.daily[key]
	if !ok {
		d = domain.DailyEarning{
			ID: m.id(), UserID: userID, EarningDate: date, TotalEarnedUSD: decimal.Zero, MaxPartitions: maxPartitions,
		}
		m.state.daily[key] = d
	}
	return &d, nil
}

func (m *memStore) GetDaily(_ context.Context, userID int64, date time.Time) (*domain.DailyEarning, error) {
	d, ok := m.state.daily[dailyKey{userID, date}]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memStore) UpdateDaily(_ context.Context, daily *domain.DailyEarning) error {
	for k, d := range m.state.daily {
		if d.ID == daily.ID {
			d.TotalEarnedUSD = daily.TotalEarnedUSD
			d.TotalEarnedTokens = daily.TotalEarnedTokens
			d.PartitionsUsed = daily.PartitionsUsed
			d.DailyLimitReached = daily.DailyLimitReached
			m.state.daily[k] = d
			return nil
		}
	}
	return errors.New("daily earning not found")
}

func (m *memStore) SetLastPartitionReset(_ context.Context, dailyID int64, at time.Time) error {
	for k, d := range m.state.daily {
		if d.ID == dailyID {
			d.LastPartitionReset = &at
			m.state.daily[k] = d
			return nil
		}
	}
	return errors.New("daily earning not found")
}

func (m *memStore) LockOrCreatePartition(
	_ context.Context, daily *domain.DailyEarning, number, maxClicks int, start time.Time,
) (*domain.EarningPartition, bool, error) {
	key := partitionKey{daily.UserID, daily.EarningDate, number}
	p, ok := m.state.partitions[key]
	if !ok {
		p = domain.EarningPartition{
			ID: m.id(), UserID: daily.UserID, DailyEarningID: daily.ID, PartitionNumber: number,
			PartitionDate: daily.EarningDate, EarnedUSD: decimal.Zero, MaxClicks: maxClicks, StartTime: &start,
		}
		m.state.partitions[key] = p
	}
	return &p, !ok, nil
}

func (m *memStore) GetPartition(_ context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error) {
	p, ok := m.state.partitions[partitionKey{userID, date, number}]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memStore) LockPartition(ctx context.Context, userID int64, date time.Time, number int) (*domain.EarningPartition, error) {
	return m.GetPartition(ctx, userID, date, number)
}

func (m *memStore) ListPartitions(_ context.Context, userID int64, date time.Time) ([]domain.EarningPartition, error) {
	var list []domain.EarningPartition
	for k, p := range m.state.partitions {
		if k.userID == userID && k.date.Equal(date) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PartitionNumber < list[j].PartitionNumber })
	return list, nil
}

func (m *memStore) UpdatePartition(_ context.Context, p *domain.EarningPartition) error {
	key := partitionKey{p.UserID, p.PartitionDate, p.PartitionNumber}
	if _, ok := m.state.partitions[key]; !ok {
		return errors.New("partition not found")
	}
	m.state.partitions[key] = *p
	return nil
}

func (m *memStore) InsertHistory(_ context.Context, h *domain.EarningHistory) (*domain.EarningHistory, error) {
	h.ID = m.id()
	h.CreatedAt = h.ClickTimestamp
	m.state.history = append(m.state.history, *h)
	return h, nil
}

func (m *memStore) LastHistory(_ context.Context, dailyID int64) (*domain.EarningHistory, error) {
	for i := len(m.state.history) - 1; i >= 0; i-- {
		if m.state.history[i].DailyEarningID == dailyID {
			h := m.state.history[i]
			return &h, nil
		}
	}
	return nil, nil
}

func (m *memStore) Get(_ context.Context, userID int64) (*domain.User, error) {
	u, ok := m.state.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memStore) IncrementBalance(_ context.Context, userID, tokens int64) (*domain.User, error) {
	u, ok := m.state.users[userID]
	if !ok {
		return nil, nil
	}
	u.Balance += tokens
	m.state.users[userID] = u
	return &u, nil
}
