package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/infrastructure/cache"
	"github.com/voltride/rental-core/internal/infrastructure/queue"
)

// ---------------------------------------------------------------------------
// Counting fakes
// ---------------------------------------------------------------------------

type countingRemote struct {
	mu       sync.Mutex
	records  map[string]domain.Renter
	gets     int
	writes   int
	writeErr error
	jitter   time.Duration
}

func newCountingRemote(seed ...domain.Renter) *countingRemote {
	r := &countingRemote{records: make(map[string]domain.Renter)}
	for _, e := range seed {
		r.records[e.ID] = e.Clone()
	}
	return r
}

func (r *countingRemote) GetByID(_ context.Context, id string) (domain.Renter, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	e, ok := r.records[id]
	return e.Clone(), ok, nil
}

func (r *countingRemote) Create(ctx context.Context, e domain.Renter) error { return r.put(ctx, e) }
func (r *countingRemote) Update(ctx context.Context, e domain.Renter) error { return r.put(ctx, e) }

func (r *countingRemote) put(_ context.Context, e domain.Renter) error {
	if r.jitter > 0 {
		time.Sleep(rand.N(r.jitter))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.writeErr != nil {
		return r.writeErr
	}
	r.records[e.ID] = e.Clone()
	return nil
}

func (r *countingRemote) calls() (gets, writes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gets, r.writes
}

// faultyLocal fails every operation with a cache fault.
type faultyLocal struct {
	clears int
}

func (f *faultyLocal) Cache(_ context.Context, e domain.Renter) error {
	return &domain.CacheError{Op: "set", Key: e.ID, Err: errors.New("connection refused")}
}

func (f *faultyLocal) GetCached(_ context.Context, id string) (domain.Renter, bool, error) {
	return domain.Renter{}, false, &domain.CacheError{Op: "get", Key: id, Err: errors.New("connection refused")}
}

func (f *faultyLocal) Clear(_ context.Context, id string) error {
	f.clears++
	return &domain.CacheError{Op: "del", Key: id, Err: errors.New("connection refused")}
}

func renter(id, email string) domain.Renter {
	return domain.Renter{
		ID:          id,
		Email:       email,
		Phone:       "+84 90 000 0000",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newRepo(local *cache.Memory[domain.Renter], remote *countingRemote, opts ...Option) *Repository[domain.Renter] {
	return New[domain.Renter]("renter", local, remote, zerolog.Nop(), opts...)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestGetByID_ColdThenWarm(t *testing.T) {
	remote := newCountingRemote(renter("r1", "a@b.vn"))
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote)
	ctx := context.Background()

	got, found, err := repo.GetByID(ctx, "r1")
	if err != nil || !found || got.Email != "a@b.vn" {
		t.Fatalf("cold read: got %+v found=%v err=%v", got, found, err)
	}
	if _, hit, _ := local.GetCached(ctx, "r1"); !hit {
		t.Fatal("cold read should populate the cache")
	}

	if _, found, _ := repo.GetByID(ctx, "r1"); !found {
		t.Fatal("warm read: expected found")
	}
	if gets, _ := remote.calls(); gets != 1 {
		t.Fatalf("expected 1 remote read, got %d", gets)
	}
}

func TestGetByID_NotFoundIsNotCached(t *testing.T) {
	remote := newCountingRemote()
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote)
	ctx := context.Background()

	for range 2 {
		_, found, err := repo.GetByID(ctx, "ghost")
		if err != nil || found {
			t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
		}
	}
	if gets, _ := remote.calls(); gets != 2 {
		t.Fatalf("a miss must not be cached: expected 2 remote reads, got %d", gets)
	}
	if local.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", local.Len())
	}
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	avatar := "https://cdn.example/a.png"
	e := renter("r1", "a@b.vn")
	e.AvatarURL = &avatar
	remote := newCountingRemote(e)
	repo := newRepo(cache.NewMemory[domain.Renter](), remote)
	ctx := context.Background()

	first, _, _ := repo.GetByID(ctx, "r1")
	*first.AvatarURL = "mutated"

	second, _, _ := repo.GetByID(ctx, "r1")
	if *second.AvatarURL != avatar {
		t.Fatalf("cached value was mutated through a returned copy: %q", *second.AvatarURL)
	}
}

func TestGetByID_CacheFaultFallsBackToRemote(t *testing.T) {
	remote := newCountingRemote(renter("r1", "a@b.vn"))
	local := &faultyLocal{}
	repo := New[domain.Renter]("renter", local, remote, zerolog.Nop())

	got, found, err := repo.GetByID(context.Background(), "r1")
	if err != nil || !found || got.ID != "r1" {
		t.Fatalf("expected remote result despite cache fault, got %+v found=%v err=%v", got, found, err)
	}
	if local.clears != 1 {
		t.Errorf("a failed cache write should be followed by a clear, got %d clears", local.clears)
	}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

func TestCreate_ThenGetWithoutRemoteRead(t *testing.T) {
	remote := newCountingRemote()
	repo := newRepo(cache.NewMemory[domain.Renter](), remote)
	ctx := context.Background()

	e := renter("r1", "a@b.vn")
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, found, err := repo.GetByID(ctx, "r1")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.ID != e.ID || got.Email != e.Email || got.Phone != e.Phone || !got.DateOfBirth.Equal(e.DateOfBirth) {
		t.Fatalf("expected %+v, got %+v", e, got)
	}
	if gets, writes := remote.calls(); gets != 0 || writes != 1 {
		t.Fatalf("expected 0 reads and 1 write, got %d reads and %d writes", gets, writes)
	}
}

func TestWrite_RemoteFailureLeavesCacheUntouched(t *testing.T) {
	boom := errors.New("remote unavailable")
	remote := newCountingRemote()
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote)
	ctx := context.Background()

	if err := repo.Create(ctx, renter("r1", "old@b.vn")); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	remote.writeErr = boom
	err := repo.Update(ctx, renter("r1", "new@b.vn"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected the remote error unchanged, got %v", err)
	}

	cached, hit, _ := local.GetCached(ctx, "r1")
	if !hit || cached.Email != "old@b.vn" {
		t.Fatalf("cache should still hold the old value, got %+v hit=%v", cached, hit)
	}

	if err := repo.Create(ctx, renter("r2", "x@b.vn")); !errors.Is(err, boom) {
		t.Fatalf("expected create to fail, got %v", err)
	}
	if _, hit, _ := local.GetCached(ctx, "r2"); hit {
		t.Fatal("a failed create must not be cached")
	}
}

func TestWrite_CacheFaultStillSucceeds(t *testing.T) {
	remote := newCountingRemote()
	repo := New[domain.Renter]("renter", &faultyLocal{}, remote, zerolog.Nop())

	if err := repo.Create(context.Background(), renter("r1", "a@b.vn")); err != nil {
		t.Fatalf("a cache fault after a remote write must not fail the call: %v", err)
	}
	if _, writes := remote.calls(); writes != 1 {
		t.Fatalf("expected 1 remote write, got %d", writes)
	}
}

func TestWrite_MissingID(t *testing.T) {
	remote := newCountingRemote()
	repo := newRepo(cache.NewMemory[domain.Renter](), remote)

	for _, op := range []func(context.Context, domain.Renter) error{repo.Create, repo.Update} {
		if err := op(context.Background(), renter("", "a@b.vn")); !errors.Is(err, domain.ErrMissingID) {
			t.Fatalf("expected ErrMissingID, got %v", err)
		}
	}
	if _, writes := remote.calls(); writes != 0 {
		t.Fatalf("expected no remote writes, got %d", writes)
	}
}

func TestWrite_StoresCopy(t *testing.T) {
	avatar := "https://cdn.example/a.png"
	e := renter("r1", "a@b.vn")
	e.AvatarURL = &avatar
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, newCountingRemote())

	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("create: %v", err)
	}
	avatar = "mutated"

	cached, _, _ := local.GetCached(context.Background(), "r1")
	if *cached.AvatarURL != "https://cdn.example/a.png" {
		t.Fatalf("cache shares memory with the caller: %q", *cached.AvatarURL)
	}
}

// ---------------------------------------------------------------------------
// Refresh
// ---------------------------------------------------------------------------

func TestRefresh_ReloadsStaleCopy(t *testing.T) {
	remote := newCountingRemote(renter("r1", "old@b.vn"))
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote)
	ctx := context.Background()

	if _, _, err := repo.GetByID(ctx, "r1"); err != nil {
		t.Fatalf("get: %v", err)
	}

	// Changed behind the repository's back.
	remote.records["r1"] = renter("r1", "new@b.vn")

	if got, _, _ := repo.GetByID(ctx, "r1"); got.Email != "old@b.vn" {
		t.Fatalf("GetByID should serve the cached copy, got %q", got.Email)
	}

	got, found, err := repo.Refresh(ctx, "r1")
	if err != nil || !found || got.Email != "new@b.vn" {
		t.Fatalf("refresh: got %+v found=%v err=%v", got, found, err)
	}
	if got, _, _ := repo.GetByID(ctx, "r1"); got.Email != "new@b.vn" {
		t.Fatalf("cache not updated by refresh, got %q", got.Email)
	}
}

func TestRefresh_DropsRemovedRecord(t *testing.T) {
	remote := newCountingRemote(renter("r1", "a@b.vn"))
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote)
	ctx := context.Background()

	_, _, _ = repo.GetByID(ctx, "r1")
	delete(remote.records, "r1")

	if _, found, err := repo.Refresh(ctx, "r1"); err != nil || found {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}
	if _, hit, _ := local.GetCached(ctx, "r1"); hit {
		t.Fatal("refresh should drop a record the remote no longer has")
	}
}

// ---------------------------------------------------------------------------
// Sequencing
// ---------------------------------------------------------------------------

func TestUpdate_SequencedWritesConverge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seq := queue.NewSequencer(4, zerolog.Nop())
	seq.Start(ctx)

	remote := newCountingRemote()
	remote.jitter = 2 * time.Millisecond
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote, WithSequencer(seq))

	const writers = 40
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Update(ctx, renter("r1", fmt.Sprintf("v%d@b.vn", i))); err != nil {
				t.Errorf("update %d: %v", i, err)
			}
		}()
	}
	wg.Wait()

	cached, hit, _ := local.GetCached(ctx, "r1")
	remote.mu.Lock()
	stored := remote.records["r1"]
	remote.mu.Unlock()

	if !hit || cached.Email != stored.Email {
		t.Fatalf("cache %q diverged from remote %q", cached.Email, stored.Email)
	}
	if _, writes := remote.calls(); writes != writers {
		t.Fatalf("expected %d remote writes, got %d", writers, writes)
	}
}

// gatedRemote holds its first GetByID after the record was read, until
// release is closed.
type gatedRemote struct {
	*countingRemote
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (g *gatedRemote) GetByID(ctx context.Context, id string) (domain.Renter, bool, error) {
	e, ok, err := g.countingRemote.GetByID(ctx, id)
	g.once.Do(func() {
		close(g.read)
		<-g.release
	})
	return e, ok, err
}

func TestGetByID_MissFillDoesNotOverwriteSequencedUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seq := queue.NewSequencer(4, zerolog.Nop())
	seq.Start(ctx)

	remote := &gatedRemote{
		countingRemote: newCountingRemote(renter("r1", "old@x")),
		read:           make(chan struct{}),
		release:        make(chan struct{}),
	}
	local := cache.NewMemory[domain.Renter]()
	repo := New[domain.Renter]("renter", local, remote, zerolog.Nop(), WithSequencer(seq))

	readErr := make(chan error, 1)
	go func() {
		_, _, err := repo.GetByID(ctx, "r1")
		readErr <- err
	}()
	<-remote.read

	writeErr := make(chan error, 1)
	go func() {
		writeErr <- repo.Update(ctx, renter("r1", "new@x"))
	}()

	time.Sleep(20 * time.Millisecond)
	close(remote.release)

	if err := <-readErr; err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := <-writeErr; err != nil {
		t.Fatalf("update: %v", err)
	}

	cached, hit, _ := local.GetCached(ctx, "r1")
	remote.mu.Lock()
	stored := remote.records["r1"]
	remote.mu.Unlock()

	if stored.Email != "new@x" {
		t.Fatalf("remote = %q, want new@x", stored.Email)
	}
	if !hit || cached.Email != stored.Email {
		t.Fatalf("cache %q diverged from remote %q", cached.Email, stored.Email)
	}
}

func TestRefresh_RunsInWriteLane(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seq := queue.NewSequencer(2, zerolog.Nop())
	seq.Start(ctx)

	remote := newCountingRemote(renter("r1", "a@b.vn"))
	local := cache.NewMemory[domain.Renter]()
	repo := newRepo(local, remote, WithSequencer(seq))

	got, found, err := repo.Refresh(ctx, "r1")
	if err != nil || !found || got.Email != "a@b.vn" {
		t.Fatalf("refresh = %+v, %v, %v", got, found, err)
	}
	if cached, hit, _ := local.GetCached(ctx, "r1"); !hit || cached.Email != "a@b.vn" {
		t.Fatalf("expected refreshed copy in cache, got %+v hit=%v", cached, hit)
	}
}
