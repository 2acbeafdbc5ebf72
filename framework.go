package csscomplete

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Framework identifies a utility-class naming system
type Framework string

// Supported frameworks
const (
	Tailwind  Framework = "tailwind"
	Bootstrap Framework = "bootstrap"
)

// Frameworks lists every supported framework in selection order
var Frameworks = []Framework{Tailwind, Bootstrap}

// ParseFramework validates a framework identifier (case-insensitive)
func ParseFramework(s string) (Framework, error) {
	switch Framework(strings.ToLower(strings.TrimSpace(s))) {
	case Tailwind:
		return Tailwind, nil
	case Bootstrap:
		return Bootstrap, nil
	}
	return "", fmt.Errorf("unknown CSS framework %q (want tailwind or bootstrap)", s)
}

// Title returns the identifier with its first letter upper-cased: "Tailwind"
func (f Framework) Title() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (f Framework) String() string {
	return string(f)
}

// Prompter presents a list of choices to the user.
// ok is false when the user dismissed the prompt without picking anything.
type Prompter interface {
	Pick(ctx context.Context, placeholder string, choices []string) (choice string, ok bool, err error)
}

// Selector holds the active framework for the running process.
// Nothing is persisted; a new Selector starts from its construction default.
type Selector struct {
	mu       sync.RWMutex
	active   Framework
	watchers []func(Framework)
}

// NewSelector creates a selector with the given initial framework.
// An empty or unknown initial value falls back to Tailwind.
func NewSelector(initial Framework) *Selector {
	if _, err := ParseFramework(string(initial)); err != nil {
		initial = Tailwind
	}
	return &Selector{active: initial}
}

// Active returns the current framework
func (s *Selector) Active() Framework {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// OnChange registers a callback invoked after every switch
func (s *Selector) OnChange(fn func(Framework)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Set overwrites the active framework and notifies watchers
func (s *Selector) Set(fw Framework) {
	s.mu.Lock()
	s.active = fw
	watchers := append([]func(Framework){}, s.watchers...)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(fw)
	}
}

// Choose asks the user to pick a framework.
// A dismissed prompt leaves the active framework unchanged and returns ok=false.
func (s *Selector) Choose(ctx context.Context, p Prompter) (Framework, bool, error) {
	choices := make([]string, len(Frameworks))
	for i, fw := range Frameworks {
		choices[i] = string(fw)
	}

	picked, ok, err := p.Pick(ctx, "Select CSS framework", choices)
	if err != nil {
		return s.Active(), false, fmt.Errorf("framework prompt: %w", err)
	}
	if !ok || picked == "" {
		return s.Active(), false, nil
	}

	fw, err := ParseFramework(picked)
	if err != nil {
		return s.Active(), false, err
	}

	s.Set(fw)
	return fw, true, nil
}

// StatusText is the status indicator label for a framework
func StatusText(fw Framework) string {
	return "CSS Framework: " + string(fw)
}
