package config

const (
	// MaxIDLength bounds identifiers accepted from requests.
	// Store IDs are UUIDs (36 chars); legacy local IDs are shorter.
	MaxIDLength = 64

	// DefaultMaxBackupBytes is the largest archive the packager will produce
	// before reporting a packaging failure. Profiles are text-only, so hitting
	// this limit means something is wrong with the data.
	DefaultMaxBackupBytes = 512 << 20
)
