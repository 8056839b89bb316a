package email

import (
	"context"
	"fmt"

	"github.com/KamylovMurad/API-hotel/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers a booking notification. The transport is a stand-in: it
// writes to stdout until a real mail gateway is wired in.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify %s: %s for room %q (%s - %s)\n",
		event.Username, event.Type, event.RoomName,
		event.StartDate.Format("2006-01-02"), event.EndDate.Format("2006-01-02"))
	return nil
}
