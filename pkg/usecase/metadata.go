package usecase

import (
	"os"

	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
)

// DefaultIcon is returned when no icon file is configured or readable
const DefaultIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><circle cx="12" cy="12" r="10" fill="#16335B"/><text x="12" y="13" font-size="6" fill="#fff" text-anchor="middle">RTC</text></svg>`

type metadataUseCase struct {
	iconPath string
}

// MetadataOption is a functional option for the metadata use case
type MetadataOption func(*metadataUseCase)

// WithIconPath prefers the SVG file at path over DefaultIcon
func WithIconPath(path string) MetadataOption {
	return func(uc *metadataUseCase) {
		uc.iconPath = path
	}
}

// NewMetadata creates a new instance of MetadataUseCase
func NewMetadata(opts ...MetadataOption) interfaces.MetadataUseCase {
	uc := &metadataUseCase{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Icon returns SVG markup for the RTC connector
func (uc *metadataUseCase) Icon() string {
	if uc.iconPath != "" {
		if data, err := os.ReadFile(uc.iconPath); err == nil && len(data) > 0 {
			return string(data)
		}
	}
	return DefaultIcon
}

// ConnectionData returns the connector type and its required fields
func (uc *metadataUseCase) ConnectionData() model.ConnectionData {
	return model.ConnectionData{
		ConnectionType: model.ConnectionType,
		Fields:         model.ConnectionFields(),
	}
}
