package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Enrollment error classes. Callers discriminate with errors.Is; the HTTP
// layer maps ErrActivityNotFound to 404 and the other two to 400.
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already registered")
	ErrNotRegistered     = errors.New("student is not registered")
)

// Activity is a single extracurricular offering. Participants is kept in
// signup order; MaxParticipants is informational and never enforced.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Registry holds the activity catalog, keyed by activity name. Names and
// emails are matched by literal string equality — no trimming, no case
// folding. The catalog is fixed after construction; only participant lists
// mutate, and only through SignUp/Unregister.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewRegistry builds a registry from a seed catalog. Seed participant slices
// are copied so the caller's map cannot alias live state.
func NewRegistry(seed map[string]Activity) *Registry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		a := act
		a.Participants = append([]string(nil), act.Participants...)
		activities[name] = &a
	}
	return &Registry{activities: activities}
}

// List returns a deep copy of the full catalog. Mutating the result has no
// effect on the registry.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		a := *act
		a.Participants = append([]string(nil), act.Participants...)
		out[name] = a
	}
	return out
}

// Names returns all activity names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.activities))
	for name := range r.activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SignUp appends email to the named activity's participant list. Returns
// ErrActivityNotFound for an unknown activity and ErrAlreadyRegistered if the
// email is already on the list. No capacity check against MaxParticipants —
// signups past capacity are allowed.
func (r *Registry) SignUp(activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activity]
	if !ok {
		return fmt.Errorf("%q: %w", activity, ErrActivityNotFound)
	}
	for _, p := range act.Participants {
		if p == email {
			return fmt.Errorf("%q in %q: %w", email, activity, ErrAlreadyRegistered)
		}
	}
	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister removes email from the named activity's participant list,
// preserving the order of the remaining entries. Returns ErrActivityNotFound
// for an unknown activity and ErrNotRegistered if the email is not on the
// list.
func (r *Registry) Unregister(activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activity]
	if !ok {
		return fmt.Errorf("%q: %w", activity, ErrActivityNotFound)
	}
	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q in %q: %w", email, activity, ErrNotRegistered)
}
