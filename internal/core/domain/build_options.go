package domain

// BuildOptions configures a build pass.
type BuildOptions struct {
	// MaxJobs bounds the number of products built and files scanned in parallel.
	MaxJobs int
	// DryRun scans and hashes but never runs product commands.
	DryRun bool
	// Force ignores recorded build information.
	Force bool
}

// RunEnvironment is the process environment a product runs in.
type RunEnvironment struct {
	WorkingDir string
	// Env holds "KEY=VALUE" entries.
	Env []string
}

// Lookup returns the value of key in the environment.
func (e RunEnvironment) Lookup(key string) (string, bool) {
	prefix := key + "="
	for i := len(e.Env) - 1; i >= 0; i-- {
		if len(e.Env[i]) >= len(prefix) && e.Env[i][:len(prefix)] == prefix {
			return e.Env[i][len(prefix):], true
		}
	}
	return "", false
}
