package cmd

import (
	"fmt"

	"github.com/bgraf/routetracker/config"
	"github.com/bgraf/routetracker/geotrack"
	"github.com/bgraf/routetracker/store"
)

// loadCollection opens the configured store and reads the current routes.
func loadCollection() (store.Store, geotrack.Collection, error) {
	s, err := store.Open(config.StoreDriver(), config.StorePath())
	if err != nil {
		return nil, nil, err
	}

	coll, err := s.Load()
	if err != nil {
		closeStore(s)
		return nil, nil, fmt.Errorf("could not load routes: %w", err)
	}

	return s, coll, nil
}

func closeStore(s store.Store) {
	_ = store.Close(s)
}
