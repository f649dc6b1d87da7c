package imagine

// Outcome is the result of a single generation call. Exactly one branch is
// populated: a success carries the artifact path (and the bytes that were
// written there), a failure carries a non-empty reason.
type Outcome struct {
	// Path is the absolute location of the written artifact. Set on success.
	Path string

	// Data holds the artifact bytes as returned by the provider. Set on
	// success alongside Path.
	Data []byte

	// Reason describes the failure. Empty on success.
	Reason string
}

// Success returns a successful Outcome for an artifact written to path.
func Success(path string, data []byte) Outcome {
	return Outcome{Path: path, Data: data}
}

// Failure returns a failed Outcome with the given reason.
func Failure(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Failed reports whether the outcome is the failure branch.
func (o Outcome) Failed() bool {
	return o.Reason != ""
}

// Valid reports whether a non-failed outcome actually references an
// artifact. A success with neither path nor bytes is malformed and callers
// must treat it as a failure.
func (o Outcome) Valid() bool {
	return !o.Failed() && (o.Path != "" || len(o.Data) > 0)
}
