package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/sfdeck/logging"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var errOSC52Unsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errOSC52Unsupported
	}
	if err := writeOSC52(os.Stdout, text, os.Getenv); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// writeOSC52 wraps the sequence for tmux or screen when running inside them.
func writeOSC52(w io.Writer, text string, getenv func(string) string) error {
	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case getenv("STY") != "":
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
