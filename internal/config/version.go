package config

// Version is the wikigraph binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/wikigraph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
