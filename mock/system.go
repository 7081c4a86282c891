// Package mock provides test doubles for anvil interfaces.
package mock

import "github.com/fwojciec/anvil"

// Interface compliance check.
var _ anvil.System = (*System)(nil)

// System is a test double for anvil.System backed by plain fields.
// Zero values behave like an empty environment rooted at "/".
type System struct {
	Env  map[string]string
	Wd   string
	Home string

	WdErr   error
	HomeErr error
}

// LookupEnv reads from the Env map.
func (s *System) LookupEnv(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}

// Getwd returns Wd (default "/") or WdErr.
func (s *System) Getwd() (string, error) {
	if s.WdErr != nil {
		return "", s.WdErr
	}
	if s.Wd == "" {
		return "/", nil
	}
	return s.Wd, nil
}

// UserHomeDir returns Home (default "/") or HomeErr.
func (s *System) UserHomeDir() (string, error) {
	if s.HomeErr != nil {
		return "", s.HomeErr
	}
	if s.Home == "" {
		return "/", nil
	}
	return s.Home, nil
}
