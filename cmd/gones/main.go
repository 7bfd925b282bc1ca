package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/yoshiomiyamaegones/pkg/cartridge"
	"github.com/yoshiomiyamaegones/pkg/config"
	"github.com/yoshiomiyamaegones/pkg/gui"
	"github.com/yoshiomiyamaegones/pkg/logger"
	"github.com/yoshiomiyamaegones/pkg/nes"
)

func main() {
	app := &cli.App{
		Name:      "gones",
		Usage:     "a cycle-scheduled NES emulator",
		ArgsUsage: "<rom_file>",
		Description: "Controls:\n" +
			"  Z - A button\n" +
			"  X - B button\n" +
			"  A - Select\n" +
			"  S - Start\n" +
			"  Arrow keys - D-pad\n" +
			"  ESC - Quit",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "off, error, warn, info, debug, trace"},
			&cli.StringFlag{Name: "log-file", Usage: "log file path (empty for stdout)"},
			&cli.BoolFlag{Name: "cpu-log", Usage: "enable CPU instruction logging"},
			&cli.BoolFlag{Name: "ppu-log", Usage: "enable PPU logging"},
			&cli.BoolFlag{Name: "apu-log", Usage: "enable APU logging"},
			&cli.BoolFlag{Name: "mapper-log", Usage: "enable mapper logging"},
			&cli.BoolFlag{Name: "headless", Usage: "run without a window, for testing"},
			&cli.IntFlag{Name: "test-frames", Value: 600, Usage: "frames to run in headless mode"},
			&cli.IntFlag{Name: "sample-rate", Value: 44100, Usage: "audio sample rate in Hz"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("usage: gones [options] <rom_file>", 1)
	}

	cfg := config.Default()
	cfg.ROMPath = c.Args().Get(0)
	cfg.LogLevel = c.String("log-level")
	cfg.LogFile = c.String("log-file")
	cfg.CPULog = c.Bool("cpu-log")
	cfg.PPULog = c.Bool("ppu-log")
	cfg.APULog = c.Bool("apu-log")
	cfg.MapperLog = c.Bool("mapper-log")
	cfg.Headless = c.Bool("headless")
	cfg.TestFrames = c.Int("test-frames")
	cfg.SampleRate = c.Int("sample-rate")

	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := cfg.InitLogger(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer logger.Close()

	logger.LogInfo("GoNES Emulator starting...")
	logger.LogInfo("Log level: %s", cfg.LogLevel)
	if cfg.LogFile != "" {
		logger.LogInfo("Logging to file: %s", cfg.LogFile)
	}

	if _, err := os.Stat(cfg.ROMPath); os.IsNotExist(err) {
		return cli.Exit(fmt.Sprintf("ROM file not found: %s", cfg.ROMPath), 1)
	}

	file, err := os.Open(cfg.ROMPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open ROM file: %v", err), 1)
	}
	defer file.Close()

	cart, err := cartridge.LoadFromReader(file)
	if err != nil {
		logger.LogError("Failed to load ROM: %v", err)
		return cli.Exit(fmt.Sprintf("failed to load ROM: %v", err), 1)
	}

	mapperNumber := (cart.Header.Flags6 >> 4) | (cart.Header.Flags7 & 0xF0)

	logger.LogInfo("Loaded ROM: %s", filepath.Base(cfg.ROMPath))
	logger.LogInfo("Mapper: %d", mapperNumber)
	logger.LogInfo("PRG ROM: %d KB", len(cart.PRGROM)/1024)
	if len(cart.CHRROM) > 0 {
		logger.LogInfo("CHR ROM: %d KB", len(cart.CHRROM)/1024)
	} else {
		logger.LogInfo("CHR RAM: %d KB", len(cart.CHRRAM)/1024)
	}

	logger.LogInfo("Creating NES system...")
	nesSystem := nes.NewNES()
	nesSystem.LoadCartridge(cart)
	nesSystem.Reset()
	logger.LogInfo("NES system initialized")

	if cfg.Headless {
		runHeadless(nesSystem, cfg.TestFrames)
		return nil
	}

	logger.LogInfo("Creating GUI...")
	nesGUI, err := gui.NewNESGUI(nesSystem)
	if err != nil {
		logger.LogError("Failed to create GUI: %v", err)
		return cli.Exit(fmt.Sprintf("failed to create GUI: %v", err), 1)
	}
	defer nesGUI.Destroy()

	logger.LogInfo("Starting emulator...")
	nesGUI.Run()
	logger.LogInfo("Emulator stopped")

	return nil
}

func runHeadless(nesSystem *nes.NES, maxFrames int) {
	logger.LogInfo("Starting headless mode for %d frames", maxFrames)

	startTime := time.Now()

	for frame := 0; frame < maxFrames; frame++ {
		if err := nesSystem.StepFrame(); err != nil {
			logger.LogError("Emulation halted at frame %d: %v", frame, err)
			break
		}
	}

	elapsed := time.Since(startTime)
	logger.LogInfo("Headless execution completed in %v", elapsed)

	frameBuffer := nesSystem.GetDisplayFramebufferRaw()
	analyzeFrameBuffer(frameBuffer, maxFrames-1)
}

func analyzeFrameBuffer(frameBuffer []uint32, frame int) {
	pixelCounts := make(map[uint32]int)
	totalPixels := len(frameBuffer)

	for _, pixel := range frameBuffer {
		pixelCounts[pixel]++
	}

	logger.LogInfo("Frame %d analysis:", frame)
	logger.LogInfo("  Total pixels: %d", totalPixels)
	logger.LogInfo("  Unique colors: %d", len(pixelCounts))

	for color, count := range pixelCounts {
		percentage := float64(count) / float64(totalPixels) * 100
		if percentage > 1.0 {
			logger.LogInfo("  Color 0x%08X: %d pixels (%.1f%%)", color, count, percentage)
		}
	}

	nonBgCount := 0
	for color, count := range pixelCounts {
		if color != 0xFF050505 {
			nonBgCount += count
		}
	}

	if nonBgCount > 0 {
		logger.LogInfo("  Non-background pixels: %d (%.1f%%)",
			nonBgCount, float64(nonBgCount)/float64(totalPixels)*100)
	} else {
		logger.LogInfo("  All pixels are background color")
	}
}
