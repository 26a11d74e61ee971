package stocks

import "sync"

// Store caches the aggregation of one scored CSV so the API does not re-read
// the file on every request. Refresh re-runs the aggregation.
type Store struct {
	path string

	mu     sync.Mutex
	cached []Stock
	loaded bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Stocks() ([]Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		stocks, err := Aggregate(s.path)
		if err != nil {
			return nil, err
		}
		s.cached = stocks
		s.loaded = true
	}
	return s.cached, nil
}

func (s *Store) Refresh() error {
	stocks, err := Aggregate(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = stocks
	s.loaded = true
	s.mu.Unlock()
	return nil
}
