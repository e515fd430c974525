package syncer

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type item struct {
	ID  string
	Val int
}

func itemKey(i item) string { return i.ID }

func TestResource_RefreshLoadsData(t *testing.T) {
	// Подготовка
	fetch := func(ctx context.Context) ([]item, error) {
		return []item{{ID: "a", Val: 1}}, nil
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())

	// Действие
	err := r.Refresh(context.Background())

	// Проверки
	require.NoError(t, err)
	st := r.State()
	assert.Equal(t, []item{{ID: "a", Val: 1}}, st.Data)
	assert.False(t, st.Loading)
	assert.False(t, st.Refreshing)
	assert.Empty(t, st.Error)
	assert.False(t, st.UpdatedAt.IsZero())
}

func TestResource_FailedRefreshKeepsLastGoodData(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			return []item{{ID: "a"}, {ID: "b"}}, nil
		}
		return nil, errors.New("503 Service Unavailable")
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())
	require.NoError(t, r.Refresh(context.Background()))

	// Действие
	err := r.Refresh(context.Background())

	// Проверки
	require.Error(t, err)
	st := r.State()
	assert.Len(t, st.Data, 2)
	assert.Equal(t, "503 Service Unavailable", st.Error)
}

func TestResource_SuccessClearsError(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("boom")
		}
		return []item{{ID: "a"}}, nil
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())

	require.Error(t, r.Refresh(context.Background()))
	assert.Equal(t, "boom", r.State().Error)
	assert.Empty(t, r.Data())

	require.NoError(t, r.Refresh(context.Background()))
	assert.Empty(t, r.State().Error)
	assert.Len(t, r.Data(), 1)
}

func TestResource_StaleResultIsDiscarded(t *testing.T) {
	// Подготовка: первый запрос висит, второй отвечает сразу
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []item{{ID: "old"}}, nil
		}
		return []item{{ID: "new"}}, nil
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())

	slow := make(chan error, 1)
	go func() { slow <- r.Refresh(context.Background()) }()
	<-started

	// Действие
	require.NoError(t, r.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-slow)

	// Проверки
	assert.Equal(t, []item{{ID: "new"}}, r.Data())
	assert.False(t, r.InFlight())
}

func TestResource_OlderErrorDoesNotOverrideNewerData(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return nil, errors.New("late failure")
		}
		return []item{{ID: "fresh"}}, nil
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())

	slow := make(chan error, 1)
	go func() { slow <- r.Refresh(context.Background()) }()
	<-started
	require.NoError(t, r.Refresh(context.Background()))
	close(release)
	require.Error(t, <-slow)

	st := r.State()
	assert.Empty(t, st.Error)
	assert.Equal(t, []item{{ID: "fresh"}}, st.Data)
}

func TestResource_CancelledRefreshLeavesStateUntouched(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			return []item{{ID: "a"}}, nil
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())
	require.NoError(t, r.Refresh(context.Background()))
	before := r.State()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие
	err := r.Refresh(ctx)

	// Проверки
	assert.ErrorIs(t, err, context.Canceled)
	after := r.State()
	assert.Equal(t, before.Data, after.Data)
	assert.Empty(t, after.Error)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	assert.False(t, after.Refreshing)
}

func TestResource_LocalWriteDiscardsEarlierFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context) ([]item, error) {
		close(started)
		<-release
		return []item{{ID: "a", Val: 1}}, nil
	}
	r := NewResource("items", fetch, itemKey, 0, newTestLogger())

	slow := make(chan error, 1)
	go func() { slow <- r.Refresh(context.Background()) }()
	<-started

	r.Upsert(item{ID: "a", Val: 2})
	close(release)
	require.NoError(t, <-slow)

	assert.Equal(t, []item{{ID: "a", Val: 2}}, r.Data())
}

func TestResource_UpsertRemoveMutate(t *testing.T) {
	r := NewResource[item]("items", func(ctx context.Context) ([]item, error) { return nil, nil }, itemKey, 0, newTestLogger())

	r.Upsert(item{ID: "a", Val: 1})
	r.Upsert(item{ID: "b", Val: 1})
	r.Upsert(item{ID: "a", Val: 5})
	assert.Equal(t, []item{{ID: "a", Val: 5}, {ID: "b", Val: 1}}, r.Data())

	got, ok := r.Mutate("b", func(i *item) { i.Val++ })
	require.True(t, ok)
	assert.Equal(t, 2, got.Val)

	_, ok = r.Mutate("missing", func(i *item) { i.Val++ })
	assert.False(t, ok)

	r.Remove("a")
	assert.Equal(t, []item{{ID: "b", Val: 2}}, r.Data())
}

func TestResource_OnAppliedReceivesSnapshot(t *testing.T) {
	r := NewResource("items", func(ctx context.Context) ([]item, error) {
		return []item{{ID: "a"}}, nil
	}, itemKey, 0, newTestLogger())

	var seen []item
	r.OnApplied(func(data []item) { seen = data })

	require.NoError(t, r.Refresh(context.Background()))
	assert.Equal(t, []item{{ID: "a"}}, seen)
}

func TestResource_StartPollsAndStopHalts(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		calls.Add(1)
		return []item{{ID: "a"}}, nil
	}
	r := NewResource("items", fetch, itemKey, 10*time.Millisecond, newTestLogger())

	// Действие
	r.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	r.Stop()
	stopped := calls.Load()
	time.Sleep(40 * time.Millisecond)

	// Проверки
	assert.Equal(t, stopped, calls.Load())
	assert.Len(t, r.Data(), 1)
}

func TestResource_PollSkipsWhileFetchInFlight(t *testing.T) {
	// Подготовка: ручной refresh висит, опрос не должен порождать новые запросы
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return []item{{ID: "a"}}, nil
	}
	r := NewResource("items", fetch, itemKey, 5*time.Millisecond, newTestLogger())

	manual := make(chan error, 1)
	go func() { manual <- r.Refresh(context.Background()) }()
	<-started

	// Действие
	r.Start(context.Background())
	defer r.Stop()
	time.Sleep(30 * time.Millisecond)

	// Проверки
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, r.State().Loading)

	close(release)
	require.NoError(t, <-manual)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
}
