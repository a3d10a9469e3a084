package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NoticeSeverity keys the visual treatment of a transient notice.
type NoticeSeverity string

const (
	NoticeInfo    NoticeSeverity = "info"
	NoticeSuccess NoticeSeverity = "success"
	NoticeWarning NoticeSeverity = "warning"
	NoticeError   NoticeSeverity = "error"
)

// DefaultNoticeTTL is how long a notice stays visible before it dismisses
// itself.
const DefaultNoticeTTL = 3 * time.Second

// Notice is a transient page-level message. At most one is visible at a time.
type Notice struct {
	ID       string         `json:"id"`
	Severity NoticeSeverity `json:"severity"`
	Message  string         `json:"message"`
	IssuedAt time.Time      `json:"issued_at"`
}

// Notifier holds the single visible notice. A new notice evicts the current
// one immediately and stops its dismiss timer; a timer that still fires for a
// replaced notice is an ID-guarded no-op.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	timer   *time.Timer
}

// NewNotifier creates a notifier; non-positive TTLs fall back to the default.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notifier{ttl: ttl}
}

// Notify replaces any visible notice with a new one and arms its dismiss
// timer.
func (n *Notifier) Notify(severity NoticeSeverity, message string) Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	notice := Notice{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  message,
		IssuedAt: time.Now(),
	}
	n.current = &notice
	id := notice.ID
	n.timer = time.AfterFunc(n.ttl, func() { n.dismiss(id) })
	return notice
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

func (n *Notifier) dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// Only the notice that armed this timer may clear the slot.
	if n.current != nil && n.current.ID == id {
		n.current = nil
		n.timer = nil
	}
}
