//go:build windows

package registry

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows/registry"
)

// SystemStore reads HKEY_LOCAL_MACHINE through the 64-bit registry view.
type SystemStore struct {
	log zerolog.Logger
}

func NewSystemStore(logger zerolog.Logger) *SystemStore {
	return &SystemStore{log: logger.With().Str("component", "registry").Logger()}
}

func (s *SystemStore) ReadString(_ context.Context, keyPath, valueName string) (string, bool, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		if err != registry.ErrNotExist {
			s.log.Error().Err(err).Str("key", keyPath).Msg("could not open Battle.net registry key")
		}
		return "", false, nil
	}
	defer k.Close()

	value, valType, err := k.GetStringValue(valueName)
	if err != nil {
		if err != registry.ErrNotExist {
			s.log.Error().Err(err).Str("key", keyPath).Str("value", valueName).Msg("could not read Battle.net registry value")
		}
		return "", false, nil
	}
	s.log.Debug().Str("value", value).Uint32("type", valType).Msg("registry key raw value")
	return value, true, nil
}
