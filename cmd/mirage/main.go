package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"syscall"

	"github.com/sigma/mirage/internal/config"
	"github.com/sigma/mirage/internal/gfx"
	"github.com/sigma/mirage/internal/shell"
	"github.com/sigma/mirage/internal/term"
)

const pidFile = "/tmp/mirage.pid"

func ensureSingleInstance() error {
	if data, err := os.ReadFile(pidFile); err == nil {
		if pid, err := strconv.Atoi(string(data)); err == nil {
			process, err := os.FindProcess(pid)
			if err == nil {
				// Check if process is still running
				if err := process.Signal(syscall.Signal(0)); err == nil {
					process.Kill()
					process.Wait()
				}
			}
		}
	}
	currentPid := os.Getpid()
	return os.WriteFile(pidFile, []byte(strconv.Itoa(currentPid)), 0644)
}

func cleanup() {
	os.Remove(pidFile)
}

func main() {
	configPath := flag.String("config", "~/.config/mirage/config.toml", "config file path")
	headless := flag.Bool("headless", false, "render PNG frames instead of a terminal session")
	frames := flag.Uint("frames", 720, "number of frames to render in headless mode")
	outDir := flag.String("out", "frames", "output directory for headless frames")
	every := flag.Uint("every", 60, "save every Nth frame in headless mode")
	flag.Parse()

	// Set up logging to file
	logFile, err := os.OpenFile("mirage.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	// Ensure single instance
	if err := ensureSingleInstance(); err != nil {
		log.Fatalf("Failed to ensure single instance: %v", err)
	}
	defer cleanup()

	// Load configuration
	cfg, err := config.LoadAndValidateConfig(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		defaults := config.DefaultConfig
		cfg = &defaults
	}

	sh, err := shell.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create shell: %v", err)
	}
	sh.Init()

	surface, err := gfx.NewSurface(cfg.Screen.Width, cfg.Screen.Height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	if *headless {
		if err := runHeadless(sh, surface, *outDir, uint32(*frames), uint32(*every)); err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		return
	}

	ipc := shell.NewIPCServer(sh.Control(), cfg.SocketPath)
	if err := ipc.Start(); err != nil {
		log.Printf("Failed to start IPC server: %v", err)
	} else {
		defer ipc.Stop()
	}

	driver, err := term.NewDriver(sh)
	if err != nil {
		log.Fatalf("Failed to create terminal driver: %v", err)
	}
	if err := driver.Run(surface, cfg.Screen.TickMillis); err != nil {
		log.Fatalf("Driver error: %v", err)
	}
}

// runHeadless advances the shell for the requested number of frames, saving
// every Nth one as a PNG.
func runHeadless(sh *shell.Shell, surface *gfx.Surface, outDir string, frames, every uint32) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if every == 0 {
		every = 1
	}

	for i := uint32(0); i < frames; i++ {
		sh.Update()
		sh.Draw(surface)
		if sh.Tick()%every == 0 {
			if err := surface.SaveFrame(outDir, sh.Tick()); err != nil {
				return fmt.Errorf("failed to save frame %d: %w", sh.Tick(), err)
			}
		}
	}

	log.Printf("Rendered %d frames to %s", frames, outDir)
	return nil
}
