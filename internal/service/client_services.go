package service

import (
	"context"

	"github.com/soilstack/fieldsync/internal/adapter"
	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/models"
)

// ClientServices groups all client-side services of the sync engine.
type ClientServices struct {
	AuthService    ClientAuthService
	SyncService    ClientSyncService
	PullRequester  PullRequester
	PullDispatcher PullDispatcher
	PushDispatcher PushDispatcher
}

// NewClientServices wires the full client-side engine over the storages, the
// server adapter, and the application-state hub.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, state *appstate.Monitor, cfg config.ClientSync, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, serverAdapter, log)
	requester := NewPullRequester(log)
	// App start is itself a pull trigger; the dispatcher holds the request
	// until the eligibility gate opens.
	requester.Request()
	pushDispatcher := NewPushDispatcher(syncSvc, requester, NewRetryScheduler(), state, cfg.DebounceWindow, cfg.PushRetryInterval, log)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, state, requester, log),
		SyncService:    &notifyingSyncService{ClientSyncService: syncSvc, notify: pushDispatcher.NotifyChange},
		PullRequester:  requester,
		PullDispatcher: NewPullDispatcher(requester, syncSvc, state, cfg.DebounceWindow, log),
		PushDispatcher: pushDispatcher,
	}
}

// notifyingSyncService pokes the push dispatcher after every accepted local
// edit, so edits flow into debounced push attempts without callers having to
// remember a second call.
type notifyingSyncService struct {
	ClientSyncService
	notify func()
}

func (n *notifyingSyncService) RecordSoilDataChange(ctx context.Context, siteID string, data models.SoilData) error {
	if err := n.ClientSyncService.RecordSoilDataChange(ctx, siteID, data); err != nil {
		return err
	}
	n.notify()
	return nil
}

func (n *notifyingSyncService) RecordSoilMetadataChange(ctx context.Context, siteID string, metadata models.SoilMetadata) error {
	if err := n.ClientSyncService.RecordSoilMetadataChange(ctx, siteID, metadata); err != nil {
		return err
	}
	n.notify()
	return nil
}
