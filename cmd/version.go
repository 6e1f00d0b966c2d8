package cmd

// Set at build time with -ldflags "-X github.com/fugue/runtask/cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
)
