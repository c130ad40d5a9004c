package test

import (
	"sync"

	"github.com/hospital-mgmt/frontdesk/guard"
)

type Navigator struct {
	mu    sync.Mutex
	paths []string
}

var _ guard.Navigator = &Navigator{}

func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *Navigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	result := make([]string, len(n.paths))
	copy(result, n.paths)
	return result
}

type Authenticator bool

func (a Authenticator) Authenticated() bool {
	return bool(a)
}
