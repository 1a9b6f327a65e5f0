package push

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMessageSender struct {
	mock.Mock
}

func (m *mockMessageSender) Send(ctx context.Context, message *messaging.Message) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

type mockInbox struct {
	mock.Mock
}

func (m *mockInbox) Mirror(ctx context.Context, n db.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func newTestNotification(data string) db.Notification {
	subject := "Order shipped"
	return db.Notification{
		ID:        uuid.New(),
		UserID:    "u1",
		Type:      "order",
		Channel:   notification.ChannelPush,
		Subject:   &subject,
		Message:   "Your order is on the way",
		Data:      json.RawMessage(data),
		CreatedAt: time.Now(),
	}
}

func TestBuildMessage(t *testing.T) {
	n := newTestNotification(`{"device_token":"tok"}`)
	
	msg := buildMessage("tok", n)
	
	assert.Equal(t, "tok", msg.Token)
	assert.Equal(t, "Order shipped", msg.Notification.Title)
	assert.Equal(t, "Your order is on the way", msg.Notification.Body)
	assert.Equal(t, map[string]string{"notification_id": n.ID.String(), "type": "order"}, msg.Data)
}

func TestFCMSenderDeliver(t *testing.T) {
	client := &mockMessageSender{}
	inbox := &mockInbox{}
	sender := newFCMSender(client, WithInbox(inbox))
	n := newTestNotification(`{"device_token":"tok"}`)
	
	client.On("Send", mock.Anything, mock.MatchedBy(func(m *messaging.Message) bool {
		return m.Token == "tok"
	})).Return("projects/p/messages/1", nil).Once()
	inbox.On("Mirror", mock.Anything, n).Return(nil).Once()
	
	require.NoError(t, sender.Deliver(context.Background(), n))
	client.AssertExpectations(t)
	inbox.AssertExpectations(t)
}

func TestFCMSenderInboxFailureIsIgnored(t *testing.T) {
	client := &mockMessageSender{}
	inbox := &mockInbox{}
	sender := newFCMSender(client, WithInbox(inbox))
	n := newTestNotification(`{"device_token":"tok"}`)
	
	client.On("Send", mock.Anything, mock.Anything).Return("id", nil).Once()
	inbox.On("Mirror", mock.Anything, n).Return(errors.New("deadline exceeded")).Once()
	
	require.NoError(t, sender.Deliver(context.Background(), n))
}

func TestFCMSenderErrors(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		client := &mockMessageSender{}
		sender := newFCMSender(client)
		
		err := sender.Deliver(context.Background(), newTestNotification(`{}`))
		
		require.ErrorIs(t, err, notification.ErrMissingRecipient)
		client.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
	
	t.Run("Transient", func(t *testing.T) {
		client := &mockMessageSender{}
		inbox := &mockInbox{}
		sender := newFCMSender(client, WithInbox(inbox))
		client.On("Send", mock.Anything, mock.Anything).Return("", errors.New("unavailable")).Once()
		
		err := sender.Deliver(context.Background(), newTestNotification(`{"device_token":"tok"}`))
		
		require.Error(t, err)
		assert.True(t, notification.IsRetryable(err))
		inbox.AssertNotCalled(t, "Mirror", mock.Anything, mock.Anything)
	})
}

func TestInboxDocument(t *testing.T) {
	n := newTestNotification(`{}`)
	
	doc := inboxDocument(n)
	
	assert.Equal(t, "u1", doc["recipientID"])
	assert.Equal(t, "Order shipped", doc["title"])
	assert.Equal(t, false, doc["isRead"])
	assert.Equal(t, n.CreatedAt, doc["createdAt"])
}
