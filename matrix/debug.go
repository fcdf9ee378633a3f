package matrix

import "os"

// debugChecks enables the expensive invariant verifications (the cokernel
// splitting check). Cheap preconditions always panic.
var debugChecks = os.Getenv("COHOM_DEBUG") == "1"
