package app

// Command is the mode the binary runs in
type Command string

const (
	// CommandServe runs the HTTP server
	CommandServe Command = "serve"
	// CommandHealthcheck probes a running server's health endpoint.
	// Used by container health checks where no shell is available.
	CommandHealthcheck Command = "healthcheck"
)

// ParseCommand returns the subcommand in args, defaulting to CommandServe
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandServe
	}

	switch args[0] {
	case "healthcheck":
		return CommandHealthcheck
	default:
		return CommandServe
	}
}
