package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	notificationRepo "pushhub/database/repository/notification"
	"pushhub/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEngine struct {
	dispatched []string
}

func (e *recordingEngine) Dispatch(ctx context.Context, clientID string, notif models.Notification) {
	e.dispatched = append(e.dispatched, notif.ID)
}

type stubNotificationRepo struct {
	records map[string]*models.Notification
}

func (r *stubNotificationRepo) Create(ctx context.Context, n *models.Notification) (string, error) {
	return n.ID, nil
}

func (r *stubNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	n, ok := r.records[id]
	if !ok {
		return nil, notificationRepo.ErrNotificationNotFound
	}
	return n, nil
}

func (r *stubNotificationRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Notification, error) {
	return nil, nil
}

func (r *stubNotificationRepo) MarkSent(ctx context.Context, id string, recipients, successes, failures int, completedAt time.Time) error {
	return nil
}

func (r *stubNotificationRepo) MarkFailed(ctx context.Context, id string, errMsg string, completedAt time.Time) error {
	return nil
}

func (r *stubNotificationRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubNotificationRepo) StatsByClientID(ctx context.Context, clientID string) (*models.NotificationStats, error) {
	return &models.NotificationStats{}, nil
}

func TestNewDispatchTaskPayload(t *testing.T) {
	task, err := NewDispatchTask("tenant-1", "notif-1")
	require.NoError(t, err)

	assert.Equal(t, TypeNotificationDispatch, task.Type())

	var p DispatchTaskPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "tenant-1", p.ClientID)
	assert.Equal(t, "notif-1", p.NotificationID)
}

func TestHandleDispatchTaskRunsPendingRecord(t *testing.T) {
	engine := &recordingEngine{}
	repo := &stubNotificationRepo{records: map[string]*models.Notification{
		"notif-1": {ID: "notif-1", ClientID: "tenant-1", Status: models.NotificationStatusPending},
	}}

	task, err := NewDispatchTask("tenant-1", "notif-1")
	require.NoError(t, err)

	handler := handleDispatchTask(engine, repo)
	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, []string{"notif-1"}, engine.dispatched)
}

func TestHandleDispatchTaskSkipsFinalizedRecord(t *testing.T) {
	engine := &recordingEngine{}
	repo := &stubNotificationRepo{records: map[string]*models.Notification{
		"notif-1": {ID: "notif-1", ClientID: "tenant-1", Status: models.NotificationStatusSent},
	}}

	task, err := NewDispatchTask("tenant-1", "notif-1")
	require.NoError(t, err)

	handler := handleDispatchTask(engine, repo)
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, engine.dispatched)
}

func TestHandleDispatchTaskSwallowsMissingRecord(t *testing.T) {
	engine := &recordingEngine{}
	repo := &stubNotificationRepo{records: map[string]*models.Notification{}}

	task, err := NewDispatchTask("tenant-1", "gone")
	require.NoError(t, err)

	handler := handleDispatchTask(engine, repo)
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, engine.dispatched)
}

func TestHandleDispatchTaskSwallowsMalformedPayload(t *testing.T) {
	engine := &recordingEngine{}
	repo := &stubNotificationRepo{records: map[string]*models.Notification{}}

	task := asynq.NewTask(TypeNotificationDispatch, []byte("{not json"))

	handler := handleDispatchTask(engine, repo)
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, engine.dispatched)
}
