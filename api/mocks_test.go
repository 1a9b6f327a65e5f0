package api

import (
	"context"
	"time"
	
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of db.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) CountNotifications(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountUserNotifications(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Notification), args.Error(1)
}

func (m *MockStore) GetNotificationByID(ctx context.Context, id uuid.UUID) (db.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Notification), args.Error(1)
}

func (m *MockStore) GetNotificationTemplateByID(ctx context.Context, id uuid.UUID) (db.NotificationTemplate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.NotificationTemplate), args.Error(1)
}

func (m *MockStore) GetUserNotificationPreferences(ctx context.Context, userID string) (db.UserNotificationPreference, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(db.UserNotificationPreference), args.Error(1)
}

func (m *MockStore) ListActiveNotificationTemplates(ctx context.Context) ([]db.NotificationTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.NotificationTemplate), args.Error(1)
}

func (m *MockStore) ListNotifications(ctx context.Context, arg db.ListNotificationsParams) ([]db.Notification, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Notification), args.Error(1)
}

func (m *MockStore) ListStalePendingNotifications(ctx context.Context, arg db.ListStalePendingNotificationsParams) ([]db.Notification, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Notification), args.Error(1)
}

func (m *MockStore) ListUserNotifications(ctx context.Context, arg db.ListUserNotificationsParams) ([]db.Notification, error) {
	args := m.Called(ctx, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Notification), args.Error(1)
}

func (m *MockStore) MarkNotificationRead(ctx context.Context, id uuid.UUID) (db.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Notification), args.Error(1)
}

func (m *MockStore) MarkNotificationSent(ctx context.Context, arg db.MarkNotificationSentParams) (db.Notification, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Notification), args.Error(1)
}

func (m *MockStore) RecordNotificationFailure(ctx context.Context, arg db.RecordNotificationFailureParams) (db.Notification, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Notification), args.Error(1)
}

func (m *MockStore) UpsertUserNotificationPreferences(ctx context.Context, arg db.UpsertUserNotificationPreferencesParams) (db.UserNotificationPreference, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.UserNotificationPreference), args.Error(1)
}

// MockTaskQueue is a mock implementation of notification.TaskQueue.
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueNotification(ctx context.Context, notificationID uuid.UUID, attempt int32, delay time.Duration) error {
	args := m.Called(ctx, notificationID, attempt, delay)
	return args.Error(0)
}
