// Package notify defines the side channel the store uses to surface
// user-facing messages. The UI layer owns the implementation; the store only
// emits.
package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=notifymock github.com/osrstools/dps-store/notify Notifier

// Notice identifies a toast so the consumer can collapse duplicates.
type Notice string

// Notices
const (
	// NoticeStyleReset is emitted when an equipment change forces the
	// loadout's combat style back to the new weapon's default.
	NoticeStyleReset Notice = "style-reset"
)

// Notifier delivers user-facing messages.
type Notifier interface {
	// Toast shows a transient, collapsible message. Repeated toasts with
	// the same notice ID are suppressed by the consumer.
	Toast(id Notice, message string)

	// Alert shows a blocking message for failures the user must see, such
	// as a preferences save that did not persist.
	Alert(message string)
}

// Nop is a Notifier that drops every message.
type Nop struct{}

// Toast implements Notifier
func (Nop) Toast(Notice, string) {}

// Alert implements Notifier
func (Nop) Alert(string) {}
