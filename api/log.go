package gbcore

// LogLevel is the host-side log severity scale.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogCritical
)

// String returns the display name of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "Debug"
	case LogInfo:
		return "Info"
	case LogWarning:
		return "Warning"
	case LogCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}
