package notification

import "log"

// Notifier is the {title, content} owner side channel.
type Notifier interface {
	Send(title, content string) error
}

// FanOut delivers to every configured channel. Channel failures are
// logged and swallowed: callers never see a notification error, per the
// lead workflow contract.
type FanOut struct {
	channels []Notifier
}

func NewFanOut(channels ...Notifier) *FanOut {
	var active []Notifier
	for _, ch := range channels {
		if ch != nil {
			active = append(active, ch)
		}
	}
	return &FanOut{channels: active}
}

func (f *FanOut) Send(title, content string) error {
	for _, ch := range f.channels {
		if err := ch.Send(title, content); err != nil {
			log.Printf("[Notify] %T failed: %v", ch, err)
		}
	}
	return nil
}
