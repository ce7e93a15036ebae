package service

import (
	"context"
	"sync"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRepo[E domain.Entity[E]] struct {
	mu        sync.Mutex
	records   map[string]E
	creates   int
	updates   int
	getErr    error // if set, GetByID returns this error
	createErr error // if set, Create returns this error
	updateErr error // if set, Update returns this error
}

func newStubRepo[E domain.Entity[E]](seed ...E) *stubRepo[E] {
	r := &stubRepo[E]{records: make(map[string]E)}
	for _, e := range seed {
		r.records[e.EntityID()] = e.Clone()
	}
	return r
}

func (r *stubRepo[E]) GetByID(_ context.Context, id string) (E, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero E
	if r.getErr != nil {
		return zero, false, r.getErr
	}
	e, ok := r.records[id]
	if !ok {
		return zero, false, nil
	}
	return e.Clone(), true, nil
}

func (r *stubRepo[E]) Create(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	r.records[e.EntityID()] = e.Clone()
	return nil
}

func (r *stubRepo[E]) Update(_ context.Context, e E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.records[e.EntityID()] = e.Clone()
	return nil
}

func (r *stubRepo[E]) stored(id string) (E, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.records[id]
	return e, ok
}

// List lets the stub double as a MembershipCatalog.
func (r *stubRepo[E]) List(context.Context) ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]E, 0, len(r.records))
	for _, e := range r.records {
		out = append(out, e.Clone())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Other stubs
// ---------------------------------------------------------------------------

type stubDrafts struct {
	drafts []ports.MembershipDraft
	err    error
}

func (d *stubDrafts) Add(_ context.Context, in ports.MembershipInput) (ports.MembershipDraft, error) {
	if d.err != nil {
		return ports.MembershipDraft{}, d.err
	}
	draft := ports.MembershipDraft{MembershipInput: in, ID: "local_1"}
	d.drafts = append(d.drafts, draft)
	return draft, nil
}

func (d *stubDrafts) List(context.Context) ([]ports.MembershipDraft, error) {
	return d.drafts, d.err
}

type stubFinder struct {
	stations []domain.Station
	calls    int
	err      error
}

func (f *stubFinder) FindWithin(_ context.Context, center domain.Coordinates, radius float64) ([]domain.Station, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Station
	for _, s := range f.stations {
		if center.DistanceTo(s.Location) <= radius {
			out = append(out, s)
		}
	}
	return out, nil
}
