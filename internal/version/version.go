package version

// Version is set at build time with
// -ldflags "-X minigrep/internal/version.Version=v1.2.3".
var Version = "dev"

func String() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
