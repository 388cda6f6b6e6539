package template

import (
	"errors"
	"slices"
	"strings"
)

// Set is the ordered, append-only collection of templates produced by one run.
type Set struct {
	templates []Template
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(t Template) {
	s.templates = append(s.templates, t)
}

func (s *Set) Len() int {
	return len(s.templates)
}

// Templates returns the templates in insertion order.
func (s *Set) Templates() []Template {
	return slices.Clone(s.templates)
}

// Contains reports whether any template of the given kind was added.
func (s *Set) Contains(kind Kind) bool {
	return slices.ContainsFunc(s.templates, func(t Template) bool { return IsKind(t, kind) })
}

// Find returns the first template of the given kind.
func (s *Set) Find(kind Kind) (Template, bool) {
	for _, t := range s.templates {
		if IsKind(t, kind) {
			return t, true
		}
	}
	return nil, false
}

// ForService returns the overlay templates of service in insertion order.
// The root level Flux template belongs to no overlay and is never returned.
func (s *Set) ForService(service string) []Template {
	var result []Template
	for _, t := range s.templates {
		if t.Service() == service && len(t.Directory()) > 0 {
			result = append(result, t)
		}
	}
	return result
}

// Directories returns the distinct output directories in insertion order.
func (s *Set) Directories() [][]string {
	var result [][]string
	seen := make(map[string]bool)
	for _, t := range s.templates {
		key := strings.Join(t.Directory(), "/")
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, t.Directory())
	}
	return result
}

// Validate checks the generated JSON patches and that at most one namespace
// is created.
func (s *Set) Validate() error {
	var errs []error
	namespaces := 0
	for _, t := range s.templates {
		switch v := t.(type) {
		case *Namespace:
			namespaces++
		case *IngressPatch:
			if err := v.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if namespaces > 1 {
		errs = append(errs, errors.New("more than one namespace template generated"))
	}
	return errors.Join(errs...)
}
