package records

import "github.com/kupikrutcher/relationship-app/internal/model"

// WishFilter selects wishes by fulfilment state.
type WishFilter int

const (
	AllWishes WishFilter = iota
	OpenWishes
	FulfilledWishes
)

// AddWish appends a wish with a fresh id.
func (s *Store) AddWish(in model.WishInput) model.Wish {
	s.mu.Lock()
	w := model.Wish{
		ID:            s.newID(),
		Title:         in.Title,
		Description:   clonePtr(in.Description),
		Category:      clonePtr(in.Category),
		Fulfilled:     in.Fulfilled,
		FulfilledDate: clonePtr(in.FulfilledDate),
	}
	s.wishes = append(s.wishes, w)
	s.mu.Unlock()

	s.scheduleSave()
	return cloneWish(w)
}

// UpdateWish merges p into the wish. It reports false for an unknown id.
func (s *Store) UpdateWish(id string, p model.WishPatch) bool {
	s.mu.Lock()
	i := s.wishIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	p.Apply(&s.wishes[i])
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// FulfillWish marks a wish fulfilled as of now.
func (s *Store) FulfillWish(id string) bool {
	now := s.now()
	done := true
	return s.UpdateWish(id, model.WishPatch{Fulfilled: &done, FulfilledDate: &now})
}

// DeleteWish removes the wish; unknown ids are ignored.
func (s *Store) DeleteWish(id string) {
	s.mu.Lock()
	i := s.wishIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.wishes = append(s.wishes[:i], s.wishes[i+1:]...)
	s.mu.Unlock()

	s.scheduleSave()
}

// Wish returns the wish with the given id.
func (s *Store) Wish(id string) (model.Wish, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.wishIndex(id)
	if i < 0 {
		return model.Wish{}, false
	}
	return cloneWish(s.wishes[i]), true
}

// Wishes returns wishes matching f in insertion order.
func (s *Store) Wishes(f WishFilter) []model.Wish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Wish{}
	for _, w := range s.wishes {
		switch {
		case f == OpenWishes && w.Fulfilled:
			continue
		case f == FulfilledWishes && !w.Fulfilled:
			continue
		}
		out = append(out, cloneWish(w))
	}
	return out
}

func (s *Store) wishIndex(id string) int {
	for i := range s.wishes {
		if s.wishes[i].ID == id {
			return i
		}
	}
	return -1
}
