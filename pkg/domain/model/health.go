package model

import "github.com/m-mizutani/rtcfetch/pkg/domain/types"

const healthStatusOK = "healthy"

// Health is the body served by the health endpoint. ConnectionType lets the
// hosting framework confirm it reached an RTC connector.
type Health struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	ConnectionType string `json:"connection_type"`
}

func NewHealth() *Health {
	return &Health{
		Status:         healthStatusOK,
		Service:        types.ServiceName,
		Version:        types.Version,
		ConnectionType: ConnectionType,
	}
}
