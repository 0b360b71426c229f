package model

type Process struct {
	PID     int32
	Name    string
	ExePath string
	Status  string
}

// 进程状态
const (
	StatusOffline = "offline"
	StatusOnline  = "online"
)

// PrimaryProcessName is the process that owns the tray icon and gets terminated on request.
const PrimaryProcessName = "Battle.net.exe"

// ProcessNames are the executables that keep Battle.net.mpq open while running.
var ProcessNames = []string{
	"Battle.net.exe",
	"Battle.net Launcher.exe",
	"Battle.net Helper.exe",
}

func IsTargetName(name string) bool {
	for _, n := range ProcessNames {
		if n == name {
			return true
		}
	}
	return false
}
