package controllers

import (
	"context"
	"time"

	"github.com/vendascope/backend/internal/sales"
	pkgerrors "github.com/vendascope/backend/pkg/errors"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// SnapshotProvider hands out the active sales snapshot. Satisfied by
// sales.Store.
type SnapshotProvider interface {
	Snapshot() *sales.Repository
	Ready() bool
}

// Refresher triggers an immediate snapshot refresh. Satisfied by
// sales.Store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

func activeSnapshot(provider SnapshotProvider) (*sales.Repository, error) {
	repo := provider.Snapshot()
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "sales snapshot not loaded yet")
	}
	return repo, nil
}
