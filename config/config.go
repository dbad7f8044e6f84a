package config

const (
	Debug        = true
	BuildVersion = "v1.0.0-BUILD_VERSION"

	// DefaultMaxDenominator bounds float approximation when a tool or
	// the RPC caller does not ask for a specific limit.
	DefaultMaxDenominator = 1000000
	// DefaultDecimalPlaces is the display precision of decimal output.
	DefaultDecimalPlaces = 8
	DefaultRPCPort       = 6860
)
