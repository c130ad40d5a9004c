package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"

	DefaultTTL = 5 * time.Second
)

// AutoDismiss reports whether banners of this severity remove themselves.
func (s Severity) AutoDismiss() bool {
	return s == SeveritySuccess || s == SeverityInfo
}

type Notification struct {
	Id          string
	Message     string
	Severity    Severity
	CreatedTime time.Time
}

// Surface is what controllers use to report the outcome of an action.
type Surface interface {
	Show(message string, severity Severity)
}

// Sink is told about banners appearing and disappearing, e.g. to print them.
type Sink interface {
	Shown(n Notification)
	Dismissed(n Notification)
}

type Mode int

const (
	// ModeReplace clears existing banners before showing a new one (credential pages).
	ModeReplace Mode = iota
	// ModeAppend keeps existing banners (dashboard).
	ModeAppend
)

type Board struct {
	mode  Mode
	ttl   time.Duration
	sinks []Sink

	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
}

var _ Surface = &Board{}

func NewBoard(mode Mode, ttl time.Duration, sinks ...Sink) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{
		mode:   mode,
		ttl:    ttl,
		sinks:  sinks,
		timers: make(map[string]*time.Timer),
	}
}

func (b *Board) Show(message string, severity Severity) {
	n := Notification{
		Id:          uuid.NewString(),
		Message:     message,
		Severity:    severity,
		CreatedTime: time.Now(),
	}

	b.mu.Lock()
	var replaced []Notification
	if b.mode == ModeReplace {
		replaced = b.active
		for _, r := range replaced {
			b.stopTimer(r.Id)
		}
		b.active = nil
	}
	b.active = append(b.active, n)
	if severity.AutoDismiss() {
		id := n.Id
		b.timers[id] = time.AfterFunc(b.ttl, func() { b.Dismiss(id) })
	}
	b.mu.Unlock()

	for _, r := range replaced {
		b.notifyDismissed(r)
	}
	for _, s := range b.sinks {
		s.Shown(n)
	}
}

// Dismiss removes a banner. It reports false if the banner is already gone.
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	index := -1
	for i, n := range b.active {
		if n.Id == id {
			index = i
			break
		}
	}
	if index < 0 {
		b.mu.Unlock()
		return false
	}
	n := b.active[index]
	b.active = append(b.active[:index:index], b.active[index+1:]...)
	b.stopTimer(id)
	b.mu.Unlock()

	b.notifyDismissed(n)
	return true
}

// Active returns the banners currently displayed, oldest first.
func (b *Board) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]Notification, len(b.active))
	copy(result, b.active)
	return result
}

// Close stops pending dismissal timers without dismissing anything.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id := range b.timers {
		b.stopTimer(id)
	}
}

func (b *Board) stopTimer(id string) {
	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}
}

func (b *Board) notifyDismissed(n Notification) {
	for _, s := range b.sinks {
		s.Dismissed(n)
	}
}
