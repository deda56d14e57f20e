package serviceImp_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lawncare/database"
	"lawncare/pkg/store/service"
	"lawncare/pkg/store/serviceImp"
)

type fakeClock struct{ t time.Time }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func ptr[T any](v T) *T { return &v }

func baseSeed(withFertilizer bool) *database.Seed {
	s := &database.Seed{
		Profile: database.SeedProfile{Area: 50, GrassType: "Bermuda", TargetHeight: 25, MowerType: "Rotary", IrrigationRate: 15},
		Wages:   database.SeedWages{Father: 1500, Mother: 1200, Child: 500},
	}
	if withFertilizer {
		s.Fertilizer = &database.SeedFertilizer{ID: "fert1", Name: "Lawn Food", NitrogenPercentage: 10}
	}
	return s
}

// newStore opens a private in-memory database seeded with seed.
func newStore(t *testing.T, seed *database.Seed) (service.Store, *fakeClock) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	clock := newClock()
	ids := seqIDs("id")
	require.NoError(t, database.ApplySeed(db, seed, clock.Now(), ids))
	return serviceImp.New(db, serviceImp.WithClock(clock.Now), serviceImp.WithIDGenerator(ids)), clock
}
