// Package ports defines the interfaces (driven and driving ports)
// for the Pomodoro Kids application following hexagonal architecture
// principles. These interfaces define the contracts between the domain
// layer and external infrastructure.
package ports

// NotificationPort dispatches alerts to the child. Implementations may
// no-op, log, or use platform facilities; the core treats delivery as
// fire-and-forget and never inspects failures.
// This is a driven port (implemented by adapters).
type NotificationPort interface {
	// Popup shows a pop-up message.
	Popup(title, message string) error

	// PlaySound plays a short alert sound.
	PlaySound() error
}
