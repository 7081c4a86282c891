package anvil

import "os"

// System abstracts the process environment consulted during path
// canonicalization and shell selection, so validation and execution
// resolve paths identically and tests can substitute a fake.
type System interface {
	LookupEnv(key string) (string, bool)
	Getwd() (string, error)
	UserHomeDir() (string, error)
}

// OSSystem is the process-backed System.
type OSSystem struct{}

func (OSSystem) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSSystem) Getwd() (string, error)              { return os.Getwd() }
func (OSSystem) UserHomeDir() (string, error)        { return os.UserHomeDir() }

// Interface compliance check.
var _ System = OSSystem{}
