package gate

import "fmt"

// ExitError carries a specific process exit code out of a check. Commands
// return it from RunE so main can exit with the check's code instead of a
// generic 1.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// Exit returns the ExitError wrapping code, or nil if the code is 0.
func Exit(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// CodeFrom extracts the process exit code for err: 0 for nil, the carried
// code for an ExitError, and 1 for anything else (structural errors).
func CodeFrom(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*ExitError); ok {
		return ProcessCode(ee.Code)
	}
	return 1
}

// ProcessCode maps a check's code into the 8-bit range the OS reports to
// callers. Negative license codes keep their distinct identities the way the
// shell would see them: -1 → 255, -2 → 254, -3 → 253.
func ProcessCode(code int) int {
	if code >= 0 && code <= 255 {
		return code
	}
	return code & 0xff
}
