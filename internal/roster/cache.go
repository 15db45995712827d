// Package roster mirrors the registrations of fetched events so the
// attendance toggle can be applied optimistically before the backend
// confirms it.
package roster

import (
	"sort"
	"strings"
	"sync"

	"eventConsole/internal/models"
)

// Cache holds one roster per event. Last write wins; the backend remains
// the source of truth and every fetch replaces the mirror wholesale.
type Cache struct {
	mu      sync.RWMutex
	rosters map[int64][]models.Registration
}

func NewCache() *Cache {
	return &Cache{rosters: make(map[int64][]models.Registration)}
}

// Replace installs a freshly fetched roster for the event.
func (c *Cache) Replace(eventID int64, regs []models.Registration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mirror := make([]models.Registration, len(regs))
	copy(mirror, regs)
	c.rosters[eventID] = mirror
}

// Roster returns a copy of the mirrored roster, if the event was fetched.
func (c *Cache) Roster(eventID int64) ([]models.Registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	regs, ok := c.rosters[eventID]
	if !ok {
		return nil, false
	}

	out := make([]models.Registration, len(regs))
	copy(out, regs)

	return out, true
}

// Attended reads the mirrored attendance flag for a registration.
func (c *Cache) Attended(registrationID int64) (attended, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, regs := range c.rosters {
		for _, reg := range regs {
			if reg.RegistrationID == registrationID {
				return reg.Attended, true
			}
		}
	}

	return false, false
}

// SetAttended writes the mirrored attendance flag. It reports whether the
// registration is mirrored at all.
func (c *Cache) SetAttended(registrationID int64, attended bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for eventID, regs := range c.rosters {
		for i, reg := range regs {
			if reg.RegistrationID == registrationID {
				c.rosters[eventID][i].Attended = attended
				return true
			}
		}
	}

	return false
}

// Departments returns the distinct departments present in the event's
// roster, sorted. The filter options are derived from the data, never
// server-provided.
func Departments(regs []models.Registration) []string {
	seen := make(map[string]struct{})
	for _, reg := range regs {
		if reg.Student.Department != "" {
			seen[reg.Student.Department] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for dept := range seen {
		out = append(out, dept)
	}
	sort.Strings(out)

	return out
}

// Filter refines a roster by exact department match and a case-insensitive
// substring search across name, student id, email and department. Both
// predicates compose with AND. The input slice is never mutated.
func Filter(regs []models.Registration, search, department string) []models.Registration {
	search = strings.ToLower(search)

	out := make([]models.Registration, 0, len(regs))
	for _, reg := range regs {
		if department != "" && reg.Student.Department != department {
			continue
		}
		if search != "" && !matchesSearch(reg.Student, search) {
			continue
		}
		out = append(out, reg)
	}

	return out
}

func matchesSearch(s models.Student, search string) bool {
	return strings.Contains(strings.ToLower(s.Name), search) ||
		strings.Contains(strings.ToLower(s.StudentID), search) ||
		strings.Contains(strings.ToLower(s.Email), search) ||
		strings.Contains(strings.ToLower(s.Department), search)
}
