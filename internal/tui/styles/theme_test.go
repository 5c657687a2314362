package styles

import (
	"testing"

	"github.com/allbin/ttlpulse/internal/tui/colors"
)

func TestFlagStyleIsDeemphasized(t *testing.T) {
	if !FlagStyle.GetFaint() {
		t.Error("FlagStyle should be faint")
	}
	if FlagStyle.GetForeground() != colors.Overlay0 {
		t.Errorf("FlagStyle foreground = %v, expected %v", FlagStyle.GetForeground(), colors.Overlay0)
	}
}

func TestDeviceStyleIsHighlighted(t *testing.T) {
	if DeviceStyle.GetForeground() != colors.Yellow {
		t.Errorf("DeviceStyle foreground = %v, expected %v", DeviceStyle.GetForeground(), colors.Yellow)
	}
}
