package notificationtracking

import (
	"context"
	"errors"
	"testing"
	"time"
	
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListStalePendingNotifications(ctx context.Context, arg db.ListStalePendingNotificationsParams) ([]db.Notification, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Notification), args.Error(1)
}

type mockInspector struct {
	mock.Mock
}

func (m *mockInspector) DeleteTask(ctx context.Context, queue, taskID string) error {
	return m.Called(ctx, queue, taskID).Error(0)
}

func (m *mockInspector) GetTaskInfo(ctx context.Context, queue, taskID string) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, queue, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

func (m *mockInspector) Close() error {
	return m.Called().Error(0)
}

type mockQueue struct {
	mock.Mock
}

func (m *mockQueue) EnqueueNotification(ctx context.Context, notificationID uuid.UUID, attempt int32, delay time.Duration) error {
	return m.Called(ctx, notificationID, attempt, delay).Error(0)
}

func newTestTracker(t *testing.T, store *mockStore, queue *mockQueue, inspector *mockInspector, now time.Time) *NotificationTracker {
	t.Helper()
	
	tracker, err := NewNotificationTracker(store, queue, inspector, WithStaleAfter(10*time.Minute), WithBatchSize(50))
	require.NoError(t, err)
	tracker.now = func() time.Time { return now }
	return tracker
}

func stalePending(retryCount int32) db.Notification {
	return db.Notification{
		ID:         uuid.New(),
		Status:     db.NotificationStatusPending,
		RetryCount: retryCount,
		UpdatedAt:  time.Now().Add(-time.Hour),
	}
}

func TestRequeueStalePending(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lost := stalePending(0)
	archived := stalePending(2)
	scheduled := stalePending(1)
	
	store := &mockStore{}
	queue := &mockQueue{}
	inspector := &mockInspector{}
	tracker := newTestTracker(t, store, queue, inspector, now)
	
	store.On("ListStalePendingNotifications", mock.Anything, db.ListStalePendingNotificationsParams{
		UpdatedBefore: now.Add(-10 * time.Minute),
		MaxResults:    50,
	}).Return([]db.Notification{lost, archived, scheduled}, nil).Once()
	
	inspector.On("GetTaskInfo", mock.Anything, worker.QueueCritical, worker.SendNotificationTaskID(lost.ID, 0)).
		Return(nil, asynq.ErrTaskNotFound).Once()
	inspector.On("GetTaskInfo", mock.Anything, worker.QueueDefault, worker.SendNotificationTaskID(archived.ID, 2)).
		Return(&asynq.TaskInfo{State: asynq.TaskStateArchived}, nil).Once()
	inspector.On("DeleteTask", mock.Anything, worker.QueueDefault, worker.SendNotificationTaskID(archived.ID, 2)).
		Return(nil).Once()
	inspector.On("GetTaskInfo", mock.Anything, worker.QueueDefault, worker.SendNotificationTaskID(scheduled.ID, 1)).
		Return(&asynq.TaskInfo{State: asynq.TaskStateScheduled}, nil).Once()
	
	queue.On("EnqueueNotification", mock.Anything, lost.ID, int32(0), time.Duration(0)).Return(nil).Once()
	queue.On("EnqueueNotification", mock.Anything, archived.ID, int32(2), time.Duration(0)).Return(nil).Once()
	
	requeued := tracker.requeueStalePending(context.Background())
	
	assert.Equal(t, 2, requeued)
	store.AssertExpectations(t)
	inspector.AssertExpectations(t)
	queue.AssertExpectations(t)
}

func TestRequeueStalePendingSkipsOnInspectError(t *testing.T) {
	n := stalePending(0)
	store := &mockStore{}
	queue := &mockQueue{}
	inspector := &mockInspector{}
	tracker := newTestTracker(t, store, queue, inspector, time.Now())
	
	store.On("ListStalePendingNotifications", mock.Anything, mock.Anything).Return([]db.Notification{n}, nil).Once()
	inspector.On("GetTaskInfo", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()
	
	assert.Zero(t, tracker.requeueStalePending(context.Background()))
	queue.AssertNotCalled(t, "EnqueueNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequeueStalePendingKeepsArchivedTaskWhenDeleteFails(t *testing.T) {
	n := stalePending(1)
	store := &mockStore{}
	queue := &mockQueue{}
	inspector := &mockInspector{}
	tracker := newTestTracker(t, store, queue, inspector, time.Now())
	
	store.On("ListStalePendingNotifications", mock.Anything, mock.Anything).Return([]db.Notification{n}, nil).Once()
	inspector.On("GetTaskInfo", mock.Anything, mock.Anything, mock.Anything).
		Return(&asynq.TaskInfo{State: asynq.TaskStateArchived}, nil).Once()
	inspector.On("DeleteTask", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	
	assert.Zero(t, tracker.requeueStalePending(context.Background()))
	queue.AssertNotCalled(t, "EnqueueNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequeueStalePendingListError(t *testing.T) {
	store := &mockStore{}
	tracker := newTestTracker(t, store, &mockQueue{}, &mockInspector{}, time.Now())
	
	store.On("ListStalePendingNotifications", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	
	assert.Zero(t, tracker.requeueStalePending(context.Background()))
}

func TestTrackerOptions(t *testing.T) {
	tracker, err := NewNotificationTracker(&mockStore{}, &mockQueue{}, &mockInspector{}, WithInterval(0), WithStaleAfter(-1))
	require.NoError(t, err)
	
	assert.Equal(t, DefaultInterval, tracker.interval)
	assert.Equal(t, DefaultStaleAfter, tracker.staleAfter)
	assert.EqualValues(t, DefaultBatchSize, tracker.batchSize)
}
