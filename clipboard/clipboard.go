package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"github.com/andareed/sfdeck/logging"
)

// Copy puts text on the system clipboard. When no native clipboard is
// reachable (headless, SSH) it falls back to an OSC52 escape sequence.
func Copy(text string) error {
	if !atotto.Unsupported {
		err := atotto.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}
