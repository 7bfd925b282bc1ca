// Package config holds the session-level settings the cmd/gones front end
// assembles from CLI flags and applies before running the emulator.
package config

import (
	"fmt"

	"github.com/yoshiomiyamaegones/pkg/logger"
)

// Config is the parsed, validated set of flags a run was started with.
type Config struct {
	ROMPath string

	LogLevel  string
	LogFile   string
	CPULog    bool
	PPULog    bool
	APULog    bool
	MapperLog bool

	Headless   bool
	TestFrames int
	SampleRate int
}

// Default returns a Config with the values a bare invocation should use.
func Default() Config {
	return Config{
		LogLevel:   "info",
		TestFrames: 600,
		SampleRate: 44100,
	}
}

// Validate rejects flag combinations that can't be applied.
func (c Config) Validate() error {
	if c.ROMPath == "" {
		return fmt.Errorf("no ROM file specified")
	}
	if c.TestFrames <= 0 {
		return fmt.Errorf("test-frames must be positive, got %d", c.TestFrames)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample-rate must be positive, got %d", c.SampleRate)
	}
	return nil
}

// InitLogger wires the parsed log flags into the global logger. Must run
// before any component logs.
func (c Config) InitLogger() error {
	level := logger.GetLogLevelFromString(c.LogLevel)
	if err := logger.Initialize(level, c.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger.SetCPULogging(c.CPULog)
	logger.SetPPULogging(c.PPULog)
	logger.SetAPULogging(c.APULog)
	logger.SetMapperLogging(c.MapperLog)
	return nil
}
