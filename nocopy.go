package uniqueres

// noCopy flags struct copies under `go vet -copylocks`. Handles are
// move-only; copying one would alias the armed flag and break the
// single-owner invariant.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
