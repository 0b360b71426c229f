//go:build !windows

package registry

import (
	"context"

	"github.com/rs/zerolog"
)

// SystemStore has no backing store outside Windows; every lookup reports absent.
type SystemStore struct {
	log zerolog.Logger
}

func NewSystemStore(logger zerolog.Logger) *SystemStore {
	return &SystemStore{log: logger.With().Str("component", "registry").Logger()}
}

func (s *SystemStore) ReadString(_ context.Context, keyPath, valueName string) (string, bool, error) {
	s.log.Debug().Str("key", keyPath).Str("value", valueName).Msg("registry not available on this platform")
	return "", false, nil
}
