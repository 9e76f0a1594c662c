package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/config"
	"github.com/Veraticus/the-budget-must-balance/internal/storage"
	"github.com/Veraticus/the-budget-must-balance/internal/tracker"
	"github.com/spf13/viper"
)

// timeNow is swappable in tests.
var timeNow = time.Now

// openTracker opens the slice store, runs migrations, and boots the tracker.
// The returned cleanup closes both.
func openTracker(ctx context.Context) (*tracker.Tracker, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSliceStore(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("Failed to open database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, common.NewUserError("Failed to migrate database", err)
	}

	trk := tracker.New(store)
	if err := trk.Boot(ctx); err != nil {
		_ = store.Close()
		return nil, nil, common.NewUserError("Failed to load state", err)
	}

	cleanup := func() {
		trk.Close()
		_ = store.Close()
	}
	return trk, cleanup, nil
}
