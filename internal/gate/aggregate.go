package gate

// FirstNonOK folds an ordered sequence of per-file codes into the first
// non-zero code, or 0 if all are zero. The license check uses this policy:
// when several files fail, the run's exit code identifies the first failure
// in scan order.
func FirstNonOK(codes []int) int {
	for _, c := range codes {
		if c != 0 {
			return c
		}
	}
	return 0
}

// LastNonOK folds an ordered sequence of per-file codes into the last
// non-zero code, or 0 if all are zero. The format gate uses this policy:
// its exit code is the most recent formatter failure. The asymmetry with
// FirstNonOK is observable at the process boundary and is kept deliberately.
func LastNonOK(codes []int) int {
	code := 0
	for _, c := range codes {
		if c != 0 {
			code = c
		}
	}
	return code
}
