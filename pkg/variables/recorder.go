package variables

import "sync"

// Recorded is one distinct reference seen by a Recorder.
type Recorded struct {
	Name      string
	Format    string
	HasFormat bool
	// Line is the 0-based line of the first occurrence
	Line int
}

// Recorder is a Map that accepts every reference, resolving it to the
// variable's name, and remembers what it was asked for. Resolving to the
// name keeps dependency paths made only of variables non-empty.
type Recorder struct {
	mu   sync.Mutex
	seen []Recorded
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Resolve implements Map.
func (r *Recorder) Resolve(ref Ref) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.seen {
		if s.Name == ref.Name && s.Format == ref.Format && s.HasFormat == ref.HasFormat {
			return ref.Name, nil
		}
	}
	r.seen = append(r.seen, Recorded{
		Name:      ref.Name,
		Format:    ref.Format,
		HasFormat: ref.HasFormat,
		Line:      ref.Line,
	})
	return ref.Name, nil
}

// Variables returns the distinct references in first-seen order.
func (r *Recorder) Variables() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Recorded, len(r.seen))
	copy(out, r.seen)
	return out
}

// Builtin reports whether the recorded reference names a built-in variable.
func (v Recorded) Builtin() bool {
	_, err := builtins.Get(v.Name)
	return err == nil
}
