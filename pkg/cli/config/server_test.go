package config_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
)

func TestServer_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.Server
		wantErr bool
	}{
		{
			name: "default",
			cfg:  config.Server{Addr: "localhost:8080", ShutdownTimeout: 10 * time.Second},
		},
		{
			name: "all interfaces",
			cfg:  config.Server{Addr: ":8080", ShutdownTimeout: time.Second},
		},
		{
			name:    "missing port",
			cfg:     config.Server{Addr: "localhost", ShutdownTimeout: time.Second},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			cfg:     config.Server{Addr: "localhost:8080"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !tc.wantErr {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err).Is(types.ErrInvalidConfig)
		})
	}
}
