package observability

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// UserAgent is sent on every console request.
func UserAgent() string {
	return "fabconsole/" + Version + " (" + Commit + ")"
}
