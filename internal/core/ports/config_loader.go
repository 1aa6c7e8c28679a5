package ports

import "go.trai.ch/rebind/internal/core/domain"

// SettingsLoader defines the interface for loading workspace settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads and validates the settings file at path.
	Load(path string) (*domain.Settings, error)
}
