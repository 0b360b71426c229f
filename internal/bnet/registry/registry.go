package registry

import (
	"context"
	"path/filepath"
	"strings"
)

// Store reads string values from the system configuration store.
type Store interface {
	// ReadString returns ok=false when the key or value does not exist.
	ReadString(ctx context.Context, keyPath, valueName string) (value string, ok bool, err error)
}

// ParseIconPath turns an icon resource reference such as `"C:\a\b.exe",0`
// into the executable path it points at.
func ParseIconPath(value string) string {
	p := strings.SplitN(value, ",", 2)[0]
	if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
		p = p[1 : len(p)-1]
	}
	return filepath.Clean(filepath.FromSlash(p))
}
