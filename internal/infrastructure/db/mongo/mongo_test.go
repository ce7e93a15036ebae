package mongo

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/wire"
)

func TestAccountDocument_UsesIDKey(t *testing.T) {
	created := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	doc := wire.FromAccount(domain.Account{ID: "acc_1", Username: "linh", Role: domain.RoleStaff, CreatedAt: created})

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["_id"] != "acc_1" || m["role"] != "staff" {
		t.Fatalf("unexpected document: %v", m)
	}
	if v, ok := m["last_login"]; !ok || v != nil {
		t.Fatalf("expected last_login to be null, got %v", v)
	}

	var back wire.AccountModel
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := wire.ToAccount(back, time.Now())
	if got.Entity.ID != "acc_1" || !got.Entity.CreatedAt.Equal(created) || got.Entity.LastLogin != nil {
		t.Fatalf("unexpected account: %+v", got.Entity)
	}
}

func TestMembershipDocument_PartialDecodesWithDefaults(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": "gold", "tier_name": "Gold"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc wire.MembershipModel
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := wire.ToMembership(doc, time.Now())
	if got.Entity.ID != "gold" || got.Entity.DiscountPercentage != 0 || got.Entity.IsDeleted {
		t.Fatalf("unexpected membership: %+v", got.Entity)
	}
	if got.Clean() {
		t.Fatal("expected defaulted fields to be reported")
	}
}

func TestStationDoc(t *testing.T) {
	st := domain.Station{ID: "st_1", Name: "Hoan Kiem", Location: domain.Coordinates{Lat: 21.0285, Lng: 105.8542}, AvailableBikes: 3}

	doc := toStationDoc(st)
	if doc.Location.Type != "Point" || doc.Location.Coordinates[0] != 105.8542 || doc.Location.Coordinates[1] != 21.0285 {
		t.Fatalf("GeoJSON point must be [lng, lat], got %+v", doc.Location)
	}
	if back := doc.station(); back != st {
		t.Fatalf("expected %+v, got %+v", st, back)
	}

	if got := (stationDoc{ID: "broken"}).station(); got.Location != (domain.Coordinates{}) {
		t.Fatalf("missing coordinates should decode to zero, got %+v", got.Location)
	}
}

func TestCenterSphere_RadiusInRadians(t *testing.T) {
	f := centerSphere(domain.Coordinates{Lat: 10, Lng: 20}, 6371)

	args := f["location"].(bson.M)["$geoWithin"].(bson.M)["$centerSphere"].(bson.A)
	if center := args[0].(bson.A); center[0] != 20.0 || center[1] != 10.0 {
		t.Fatalf("center must be [lng, lat], got %v", center)
	}
	if r := args[1].(float64); math.Abs(r-0.001) > 1e-12 {
		t.Fatalf("expected 0.001 radians, got %v", r)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	_, _, err := Connect(context.Background(), Config{
		URI:      "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
		Database: "rental_core_test",
		Timeout:  time.Second,
	})
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Fatalf("expected a connection error, got %v", err)
	}
}
