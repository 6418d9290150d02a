package gnomen

// Version and Build are injected with ldflags during compilation.
var (
	// Version of the library and CLI.
	Version = "v0.1.0"

	// Build timestamp.
	Build = "n/a"
)
