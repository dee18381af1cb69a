package domain

import "time"

type HeartbeatUpdate struct {
	Timestamp time.Time `json:"timestamp"`
}

func (message HeartbeatUpdate) Channel() string  { return ChannelHeartbeat }
func (message HeartbeatUpdate) exchangeMessage() {}
func (message HeartbeatUpdate) updateMessage()   {}
