package model

import "regexp"

const (
	ArchiveFileName = "Battle.net.mpq"
	BackupSuffix    = ".backup"

	RegistryKeyPath   = `SOFTWARE\WOW6432Node\Blizzard Entertainment\Battle.net\Capabilities`
	RegistryValueName = "ApplicationIcon"

	DefaultFallbackDir = "C:/Program Files (x86)/"
)

const (
	RoleBaseInstall = "base install"
	RoleAppInstall  = "app install"
)

// AppDirPattern matches versioned installs such as Battle.net.8554, with room for a fifth digit.
var AppDirPattern = regexp.MustCompile(`^Battle\.net\.\d{4}(\d)?$`)

var (
	BaseMarkers = []string{"Battle.net.exe", "Battle.net Launcher.exe", "BlizzardError.exe"}
	AppMarkers  = []string{ArchiveFileName, "Battle.net.exe", "Battle.net Helper.exe"}
)
