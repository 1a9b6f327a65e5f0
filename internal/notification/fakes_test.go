package notification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
	
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/event"
)

type fakeStore struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]db.Notification
	getErr        error
	updateErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{notifications: make(map[uuid.UUID]db.Notification)}
}

func (s *fakeStore) create(channel string, data string) db.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	now := time.Now()
	n := db.Notification{
		ID:        uuid.New(),
		UserID:    "u1",
		Type:      "welcome",
		Channel:   channel,
		Message:   "hi",
		Data:      json.RawMessage(data),
		Status:    db.NotificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notifications[n.ID] = n
	return n
}

func (s *fakeStore) get(id uuid.UUID) db.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	return s.notifications[id]
}

func (s *fakeStore) GetNotificationByID(ctx context.Context, id uuid.UUID) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if err := ctx.Err(); err != nil {
		return db.Notification{}, err
	}
	if s.getErr != nil {
		return db.Notification{}, s.getErr
	}
	
	n, ok := s.notifications[id]
	if !ok {
		return db.Notification{}, db.ErrRecordNotFound
	}
	return n, nil
}

func (s *fakeStore) MarkNotificationSent(ctx context.Context, arg db.MarkNotificationSentParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if err := ctx.Err(); err != nil {
		return db.Notification{}, err
	}
	if s.updateErr != nil {
		return db.Notification{}, s.updateErr
	}
	
	n, ok := s.notifications[arg.ID]
	if !ok || n.Status != db.NotificationStatusPending || n.RetryCount != arg.ExpectedRetryCount {
		return db.Notification{}, db.ErrRecordNotFound
	}
	
	now := time.Now()
	n.Status = db.NotificationStatusSent
	if n.SentAt == nil {
		n.SentAt = &now
	}
	n.ErrorMessage = nil
	n.UpdatedAt = now
	s.notifications[n.ID] = n
	return n, nil
}

func (s *fakeStore) RecordNotificationFailure(ctx context.Context, arg db.RecordNotificationFailureParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	if err := ctx.Err(); err != nil {
		return db.Notification{}, err
	}
	if s.updateErr != nil {
		return db.Notification{}, s.updateErr
	}
	
	n, ok := s.notifications[arg.ID]
	if !ok || n.Status != db.NotificationStatusPending || n.RetryCount != arg.ExpectedRetryCount {
		return db.Notification{}, db.ErrRecordNotFound
	}
	
	n.Status = arg.Status
	n.ErrorMessage = arg.ErrorMessage
	n.RetryCount += arg.Increment
	n.UpdatedAt = time.Now()
	s.notifications[n.ID] = n
	return n, nil
}

type enqueuedTask struct {
	ID      uuid.UUID
	Attempt int32
	Delay   time.Duration
}

type fakeQueue struct {
	mu    sync.Mutex
	tasks []enqueuedTask
	err   error
}

func (q *fakeQueue) EnqueueNotification(ctx context.Context, id uuid.UUID, attempt int32, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, enqueuedTask{ID: id, Attempt: attempt, Delay: delay})
	return nil
}

func (q *fakeQueue) pop() (enqueuedTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	
	if len(q.tasks) == 0 {
		return enqueuedTask{}, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t, true
}

// countingTransport returns errs in order, then nil forever.
type countingTransport struct {
	mu    sync.Mutex
	calls int
	errs  []error
}

func (t *countingTransport) Deliver(context.Context, db.Notification) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	
	t.calls++
	if len(t.errs) == 0 {
		return nil
	}
	err := t.errs[0]
	t.errs = t.errs[1:]
	return err
}

// blockingTransport waits for the task context to end, like a transport
// stuck on an unresponsive server.
func blockingTransport() Transport {
	return TransportFunc(func(ctx context.Context, _ db.Notification) error {
		<-ctx.Done()
		return ctx.Err()
	})
}

func alwaysFailing(err error) Transport {
	return TransportFunc(func(context.Context, db.Notification) error {
		return err
	})
}

type fakeLease struct {
	held     map[string]bool
	err      error
	released int
}

func (l *fakeLease) Acquire(_ context.Context, key string) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func() {
		delete(l.held, key)
		l.released++
	}, true, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:1025: connect: connection refused")
