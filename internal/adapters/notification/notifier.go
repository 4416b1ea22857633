// Package notification provides desktop and console notification
// adapters for the notification port.
package notification

import (
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomokids/internal/config"
	"github.com/xvierd/pomokids/internal/ports"
)

// Desktop delivers notifications through the platform facilities.
type Desktop struct {
	cfg *config.NotificationConfig
}

// NewDesktop creates a desktop notifier with the given configuration.
func NewDesktop(cfg *config.NotificationConfig) *Desktop {
	return &Desktop{cfg: cfg}
}

// Popup displays a desktop notification if enabled.
func (d *Desktop) Popup(title, message string) error {
	if d.cfg == nil || !d.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// PlaySound plays a short alert beep if enabled.
func (d *Desktop) PlaySound() error {
	if d.cfg == nil || !d.cfg.Enabled || !d.cfg.Sound {
		return nil
	}
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// Console writes notifications as plain lines, for environments without
// a desktop session.
type Console struct {
	out io.Writer
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Popup prints the notification.
func (c *Console) Popup(title, message string) error {
	_, err := fmt.Fprintf(c.out, "[POPUP] %s: %s\n", title, message)
	return err
}

// PlaySound prints a beep marker.
func (c *Console) PlaySound() error {
	_, err := fmt.Fprintln(c.out, "[SOUND] beep")
	return err
}

// Ensure both adapters implement the port.
var (
	_ ports.NotificationPort = (*Desktop)(nil)
	_ ports.NotificationPort = (*Console)(nil)
)
