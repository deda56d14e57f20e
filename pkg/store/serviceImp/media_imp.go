package serviceImp

import (
	"fmt"

	"lawncare/entities"
	"lawncare/pkg/care"
	"lawncare/pkg/store/service"
)

func (s *store) MediaLogs() ([]entities.MediaLog, error) {
	out, err := s.read().media.List()
	if err != nil {
		return nil, fmt.Errorf("list media logs: %w", err)
	}
	return out, nil
}

func (s *store) MediaLogsByTag(tag string) ([]entities.MediaLog, error) {
	all, err := s.MediaLogs()
	if err != nil {
		return nil, err
	}
	out := make([]entities.MediaLog, 0, len(all))
	for _, m := range all {
		if m.HasTag(tag) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *store) AddMediaLog(in service.NewMediaLog) (string, error) {
	m := entities.MediaLog{
		ID:        s.newID(),
		Date:      s.clock(),
		MediaURL:  in.MediaURL,
		MediaType: in.MediaType,
		Note:      in.Note,
		Tags:      care.NormalizeTags(in.Tags),
	}
	if err := s.read().media.Create(&m); err != nil {
		return "", fmt.Errorf("add media log: %w", err)
	}
	return m.ID, nil
}

// UpdateMediaLog replaces the log; a zero Date keeps the stored one. Liked
// only changes through ToggleMediaLogLike.
func (s *store) UpdateMediaLog(l entities.MediaLog) error {
	err := s.tx(func(r repos) error {
		cur, err := r.media.FindByID(l.ID)
		if err != nil || cur == nil {
			return err
		}
		if l.Date.IsZero() {
			l.Date = cur.Date
		}
		l.Date = l.Date.UTC()
		l.Liked = cur.Liked
		l.Tags = care.NormalizeTags(l.Tags)
		return r.media.Save(&l)
	})
	if err != nil {
		return fmt.Errorf("update media log %s: %w", l.ID, err)
	}
	return nil
}

func (s *store) DeleteMediaLog(id string) error {
	if err := s.read().media.Delete(id); err != nil {
		return fmt.Errorf("delete media log %s: %w", id, err)
	}
	return nil
}

func (s *store) ToggleMediaLogLike(id string) error {
	err := s.tx(func(r repos) error {
		cur, err := r.media.FindByID(id)
		if err != nil || cur == nil {
			return err
		}
		cur.Liked = !cur.Liked
		return r.media.Save(cur)
	})
	if err != nil {
		return fmt.Errorf("toggle like %s: %w", id, err)
	}
	return nil
}
