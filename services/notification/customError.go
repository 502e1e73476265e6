package notification

import (
	"errors"
	"fmt"

	"pushhub/models"
)

var (
	// ErrPushDisabled is returned when send functionality is switched off
	// because VAPID credentials are not configured.
	ErrPushDisabled = errors.New("push sending is disabled: VAPID credentials are not configured")
	// ErrClientInactive is returned when the client account is deactivated.
	ErrClientInactive = errors.New("client account is inactive")
	// ErrNoSubscribers is returned when the client has nobody to send to.
	ErrNoSubscribers = errors.New("client has no subscribers")
	// ErrTitleTooLong is returned when the title exceeds the content limit.
	ErrTitleTooLong = fmt.Errorf("title exceeds %d characters", models.NotificationTitleMaxLen)
	// ErrBodyTooLong is returned when the body exceeds the content limit.
	ErrBodyTooLong = fmt.Errorf("body exceeds %d characters", models.NotificationBodyMaxLen)
	// ErrNotOwned is returned when a record belongs to a different client.
	ErrNotOwned = errors.New("notification does not belong to this client")
)
