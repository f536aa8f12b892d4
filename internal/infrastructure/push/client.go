package push

import (
	"context"
	"fmt"
	"os"

	"bodhira/internal/pkg/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps the Firebase Cloud Messaging client. When credentials
// are missing or invalid the client degrades instead of failing
// startup: every Send returns false and reminder scheduling keeps
// running without deliveries.
type Client struct {
	messaging *messaging.Client
	log       logger.Logger
}

// NewClient creates an FCM client from the FIREBASE_SERVICE_ACCOUNT
// environment variable, which holds the service account JSON.
func NewClient(ctx context.Context, log logger.Logger) *Client {
	serviceAccount := os.Getenv("FIREBASE_SERVICE_ACCOUNT")
	if serviceAccount == "" {
		log.Warn("FIREBASE_SERVICE_ACCOUNT not set - push notifications disabled")
		return &Client{log: log}
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(serviceAccount)))
	if err != nil {
		log.Error("Failed to initialize Firebase app - push notifications disabled", err)
		return &Client{log: log}
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		log.Error("Failed to create Firebase messaging client - push notifications disabled", err)
		return &Client{log: log}
	}

	log.Info("Firebase messaging client initialized.")
	return &Client{messaging: msgClient, log: log}
}

// Enabled reports whether the client holds a working messaging handle.
func (c *Client) Enabled() bool {
	return c.messaging != nil
}

// Send delivers a notification to a single device token. It returns
// true only on confirmed hand-off to FCM; all failure modes (disabled
// client, empty token, unregistered token, transport error) are logged
// and reported as false, never as an error.
func (c *Client) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) bool {
	if c.messaging == nil {
		c.log.Debug("Push client disabled, dropping notification")
		return false
	}
	if deviceToken == "" {
		c.log.Warn("No device token provided for push notification")
		return false
	}

	msg := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: deviceToken,
	}

	response, err := c.messaging.Send(ctx, msg)
	if err != nil {
		if messaging.IsUnregistered(err) {
			c.log.Warn("Device token invalid or unregistered")
		} else {
			c.log.Error("Failed to send push notification", err)
		}
		return false
	}

	c.log.Info(fmt.Sprintf("Push notification sent: %s", response))
	return true
}
