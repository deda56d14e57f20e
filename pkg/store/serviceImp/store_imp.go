package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawncare/entities"
	"lawncare/pkg/care"
	expenseRepo "lawncare/pkg/expense/repository"
	expenseRepoImp "lawncare/pkg/expense/repositoryImp"
	inventoryRepo "lawncare/pkg/inventory/repository"
	inventoryRepoImp "lawncare/pkg/inventory/repositoryImp"
	mediaRepo "lawncare/pkg/media/repository"
	mediaRepoImp "lawncare/pkg/media/repositoryImp"
	profileRepo "lawncare/pkg/profile/repository"
	profileRepoImp "lawncare/pkg/profile/repositoryImp"
	schedRepo "lawncare/pkg/schedule/repository"
	schedRepoImp "lawncare/pkg/schedule/repositoryImp"
	"lawncare/pkg/store/service"
)

type Option func(*store)

// WithClock replaces time.Now as the source of creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator; ids must be unique for the
// lifetime of the store.
func WithIDGenerator(newID func() string) Option {
	return func(s *store) { s.newID = newID }
}

type store struct {
	db    *gorm.DB
	now   func() time.Time
	newID func() string
}

// New returns the domain store over db. Every command runs in one
// transaction, so readers never observe a half-applied change.
func New(db *gorm.DB, opts ...Option) service.Store {
	s := &store{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// repos bundles the repositories bound to one handle (the db or a tx).
type repos struct {
	profile   profileRepo.ProfileRepository
	schedule  schedRepo.ScheduleRepository
	inventory inventoryRepo.InventoryRepository
	expense   expenseRepo.ExpenseRepository
	media     mediaRepo.MediaRepository
}

func bind(db *gorm.DB) repos {
	return repos{
		profile:   profileRepoImp.New(db),
		schedule:  schedRepoImp.New(db),
		inventory: inventoryRepoImp.New(db),
		expense:   expenseRepoImp.New(db),
		media:     mediaRepoImp.New(db),
	}
}

func (s *store) read() repos { return bind(s.db) }

func (s *store) tx(fn func(r repos) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error { return fn(bind(tx)) })
}

func (s *store) clock() time.Time { return s.now().UTC() }

func (s *store) Profile() (entities.LawnProfile, error) {
	p, err := s.read().profile.GetProfile()
	if err != nil {
		return entities.LawnProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return entities.LawnProfile{ID: entities.ProfileID}, nil
	}
	return *p, nil
}

func (s *store) UpdateProfile(patch service.ProfilePatch) (entities.LawnProfile, error) {
	var out entities.LawnProfile
	err := s.tx(func(r repos) error {
		cur, err := r.profile.GetProfile()
		if err != nil {
			return err
		}
		if cur == nil {
			cur = &entities.LawnProfile{}
		}
		patch.Apply(cur)
		if err := r.profile.SaveProfile(cur); err != nil {
			return err
		}
		out = *cur
		return nil
	})
	if err != nil {
		return entities.LawnProfile{}, fmt.Errorf("update profile: %w", err)
	}
	return out, nil
}

func (s *store) ApplyProfile(patch service.ProfilePatch) (entities.LawnProfile, []entities.Task, error) {
	var (
		out   entities.LawnProfile
		batch []entities.Task
	)
	err := s.tx(func(r repos) error {
		cur, err := r.profile.GetProfile()
		if err != nil {
			return err
		}
		if cur == nil {
			cur = &entities.LawnProfile{}
		}
		patch.Apply(cur)
		if err := r.profile.SaveProfile(cur); err != nil {
			return err
		}
		batch = care.DeriveTasks(*cur, s.clock(), s.newID)
		if err := r.schedule.DeleteAll(); err != nil {
			return err
		}
		if err := r.schedule.BulkInsert(batch); err != nil {
			return err
		}
		out = *cur
		return nil
	})
	if err != nil {
		return entities.LawnProfile{}, nil, fmt.Errorf("apply profile: %w", err)
	}
	return out, batch, nil
}

func (s *store) Fertilizers() ([]entities.Fertilizer, error) {
	out, err := s.read().profile.ListFertilizers()
	if err != nil {
		return nil, fmt.Errorf("list fertilizers: %w", err)
	}
	return out, nil
}

func (s *store) ActiveFertilizer() (*entities.Fertilizer, error) {
	f, err := s.read().profile.ActiveFertilizer()
	if err != nil {
		return nil, fmt.Errorf("active fertilizer: %w", err)
	}
	return f, nil
}

// UpdateFertilizer replaces name and nitrogen content. Which fertilizer is
// active is not part of the payload and is kept as stored.
func (s *store) UpdateFertilizer(f entities.Fertilizer) error {
	err := s.tx(func(r repos) error {
		cur, err := r.profile.FindFertilizer(f.ID)
		if err != nil || cur == nil {
			return err
		}
		f.Active = cur.Active
		return r.profile.SaveFertilizer(&f)
	})
	if err != nil {
		return fmt.Errorf("update fertilizer %s: %w", f.ID, err)
	}
	return nil
}

func (s *store) Wages() (entities.Wages, error) {
	w, err := s.read().profile.GetWages()
	if err != nil {
		return entities.Wages{}, fmt.Errorf("get wages: %w", err)
	}
	if w == nil {
		return entities.Wages{ID: entities.WagesID}, nil
	}
	return *w, nil
}

func (s *store) UpdateWages(w entities.Wages) error {
	if err := s.read().profile.SaveWages(&w); err != nil {
		return fmt.Errorf("update wages: %w", err)
	}
	return nil
}
