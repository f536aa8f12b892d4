package service

import "context"

// NotifierService delivers a notification to a user through their
// registered device. Deliver returns true only on confirmed hand-off
// to the transport; every failure mode (unknown user, no device,
// notifications disabled, transport rejection) is reported as false
// and never as an error, so a failed delivery cannot disturb the
// trigger that requested it.
type NotifierService interface {
	Deliver(ctx context.Context, userID, title, body string, data map[string]string) bool
}
