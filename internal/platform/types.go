package platform

import "fmt"

type App struct {
	Name     string `yaml:"name"`
	PID      int    `yaml:"pid"`
	BundleID string `yaml:"bundle_id,omitempty"`
}

func (a App) String() string {
	return fmt.Sprintf("%s (pid %d)", a.Name, a.PID)
}

type Window struct {
	Title  string  `yaml:"title"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Element struct {
	Role  string `yaml:"role"`
	Title string `yaml:"title,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// AXError is a non-success accessibility API result code.
type AXError struct {
	Op   string
	Code int
}

func (e *AXError) Error() string {
	return fmt.Sprintf("%s failed: %s (%d)", e.Op, axErrorName(e.Code), e.Code)
}

func axErrorName(code int) string {
	switch code {
	case -25200:
		return "failure"
	case -25201:
		return "illegal argument"
	case -25202:
		return "invalid element"
	case -25204:
		return "cannot complete"
	case -25205:
		return "attribute unsupported"
	case -25211:
		return "api disabled"
	case -25212:
		return "no value"
	default:
		return "error"
	}
}
