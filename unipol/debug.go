package unipol

import (
	"fmt"
	"io"
	"os"
)

// debugChecks gates the expensive pipeline invariants: g∘f ≡ 0 on entry,
// g(K) ≡ 0 mod the codomain torsion on exit. Cheap structural checks are
// always on.
var debugChecks = os.Getenv("COHOM_DEBUG") == "1"

func dbg(w io.Writer, f string, a ...any) {
	if debugChecks {
		fmt.Fprintf(w, f, a...)
	}
}
