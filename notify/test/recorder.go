package test

import (
	"sync"

	"github.com/hospital-mgmt/frontdesk/notify"
)

type Shown struct {
	Message  string
	Severity notify.Severity
}

// Recorder is a notify.Surface that remembers what it was asked to show.
type Recorder struct {
	mu    sync.Mutex
	shown []Shown
}

var _ notify.Surface = &Recorder{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Show(message string, severity notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, Shown{Message: message, Severity: severity})
}

func (r *Recorder) Shown() []Shown {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]Shown, len(r.shown))
	copy(result, r.shown)
	return result
}

// Last returns the most recent notification, or the zero value.
func (r *Recorder) Last() Shown {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return Shown{}
	}
	return r.shown[len(r.shown)-1]
}
