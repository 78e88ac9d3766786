package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andareed/sfdeck/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configFlag := flag.String("config", "", "YAML file overriding deck timing and theme")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("sfdeck: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sfdeck [--debug debug.log] [--config timing.yaml] <deck.yaml>")
		os.Exit(1)
	}

	d, err := LoadDeck(args[0])
	if err != nil {
		log.Fatalf("failed to load %q: %v", args[0], err)
	}
	if *configFlag != "" {
		if err := d.ApplyConfigFile(*configFlag); err != nil {
			log.Fatalf("failed to apply config: %v", err)
		}
	}
	logging.Infof("deck %q: %d panels, snap=%s debounce=%s settle=%s",
		d.Title, len(d.Panels), d.Config.Scroll.SnapDuration, d.Config.Scroll.ResizeQuiet, d.Config.Scroll.SettleDelay)

	_, err = tea.NewProgram(newModel(d), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		logging.Errorf("tea program: %v", err)
		fmt.Println("Error:", err)
	}
}
