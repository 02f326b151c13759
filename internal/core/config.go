package core

// RuntimeConfig contains configuration passed to the simulation at creation.
// The platform fills it from flags, terminal size and config files.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Idle ticks per second fed to the world
	Seed     uint64 // World seed; 0 means the platform picks one from time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 15,
		Seed:     0,
	}
}
