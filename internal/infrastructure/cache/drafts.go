package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

// DefaultDraftsKey is the storage key holding locally created memberships.
const DefaultDraftsKey = "memberships:local"

// MembershipDrafts keeps locally created memberships as a single JSON array
// under one key. Each element is the original request plus an id of the form
// local_<epoch-millis>.
type MembershipDrafts struct {
	kv  KV
	key string
	now func() time.Time

	mu sync.Mutex
}

func NewMembershipDrafts(kv KV, key string) *MembershipDrafts {
	if key == "" {
		key = DefaultDraftsKey
	}
	return &MembershipDrafts{kv: kv, key: key, now: time.Now}
}

// Add appends a draft and returns it with its generated id. Two drafts made
// in the same millisecond get consecutive ids.
func (d *MembershipDrafts) Add(ctx context.Context, in ports.MembershipInput) (ports.MembershipDraft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	drafts, err := d.load(ctx)
	if err != nil {
		return ports.MembershipDraft{}, err
	}

	millis := d.now().UnixMilli()
	id := draftID(millis)
	for slices.ContainsFunc(drafts, func(x ports.MembershipDraft) bool { return x.ID == id }) {
		millis++
		id = draftID(millis)
	}

	draft := ports.MembershipDraft{MembershipInput: in, ID: id}
	drafts = append(drafts, draft)

	raw, err := json.Marshal(drafts)
	if err != nil {
		return ports.MembershipDraft{}, &domain.CacheError{Op: "encode", Key: d.key, Err: err}
	}
	if err := d.kv.Set(ctx, d.key, string(raw)); err != nil {
		return ports.MembershipDraft{}, err
	}
	return draft, nil
}

func (d *MembershipDrafts) List(ctx context.Context) ([]ports.MembershipDraft, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

func (d *MembershipDrafts) load(ctx context.Context) ([]ports.MembershipDraft, error) {
	raw, ok, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []ports.MembershipDraft{}, nil
	}
	var drafts []ports.MembershipDraft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		return nil, &domain.CacheError{Op: "decode", Key: d.key, Err: err}
	}
	return drafts, nil
}

func draftID(millis int64) string {
	return fmt.Sprintf("local_%d", millis)
}
