package service

import (
	"context"
	"time"

	"github.com/soilstack/fieldsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account creation and
// authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account on the server and, on success, stores
	// the bearer token in the server adapter and records the login in the
	// application-state hub.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user against the server with the same
	// side effects as Register.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Logout clears the adapter token and the application-state login.
	Logout()
}

// ClientSyncService is the synchronization engine's entry point: it accepts
// local edits, pushes dirty entities to the server, and pulls the
// authoritative snapshot.
type ClientSyncService interface {
	// RecordSoilDataChange persists an accepted local edit of one site's
	// soil data: the content is written dirty, the site's sync record is
	// upserted, and its revision advances.
	RecordSoilDataChange(ctx context.Context, siteID string, data models.SoilData) error

	// RecordSoilMetadataChange persists an accepted local edit of one
	// site's soil metadata, with the same bookkeeping as
	// RecordSoilDataChange.
	RecordSoilMetadataChange(ctx context.Context, siteID string, metadata models.SoilMetadata) error

	// PushSoilData performs one push attempt for the dirty soil-data sites
	// intersected with siteIDs (nil means all dirty sites). A returned
	// error is a transport-level failure with no local mutation; per-site
	// rejections come back inside the results and leave those sites dirty.
	// Only one push attempt per collection runs at a time; a concurrent
	// call fails with ErrPushInFlight.
	PushSoilData(ctx context.Context, siteIDs []string) (models.SyncResults[models.SoilData, models.SyncFailureReason], error)

	// PushSoilMetadata is PushSoilData for the metadata collection.
	PushSoilMetadata(ctx context.Context, siteIDs []string) (models.SyncResults[models.SoilMetadata, models.SyncFailureReason], error)

	// Pull fetches the full authoritative snapshot and replaces the local
	// caches of projects, sites, soil data, and soil metadata. Callers must
	// ensure no unsynced local edits exist before pulling; the dispatcher's
	// eligibility gate enforces this.
	Pull(ctx context.Context) error

	// UnsyncedSiteIDs returns the union of dirty site ids across both
	// synchronizable collections, sorted and deduplicated.
	UnsyncedSiteIDs(ctx context.Context) ([]string, error)
}

// PullRequester accumulates pull triggers into a single "pull requested"
// flag. Requesting is cheap and unconditional; the dispatcher decides when a
// pull may actually run.
type PullRequester interface {
	// Request raises the flag and pokes the notification channel.
	Request()

	// Requested reports the flag without clearing it.
	Requested() bool

	// Clear lowers the flag. Called by the dispatcher immediately before it
	// issues a pull.
	Clear()

	// Notify returns the channel poked on every Request. Notifications are
	// coalesced.
	Notify() <-chan struct{}

	// StartInterval begins raising the flag on a fixed wall-clock interval,
	// regardless of connectivity or foreground state.
	StartInterval(interval time.Duration)

	// Stop halts the interval trigger.
	Stop()
}

// PullDispatcher observes the pull-requested flag and the application state,
// and issues a pull only when the eligibility gate allows it.
type PullDispatcher interface {
	// Start launches the dispatcher goroutine. Any previously running
	// dispatcher is stopped first.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// PushDispatcher watches for dirty local state and drives push attempts:
// debounced pushes on local edits, a retry cycle on transport failure, and a
// pull request when a push response carries per-entity errors.
type PushDispatcher interface {
	// Start launches the dispatcher goroutine. Any previously running
	// dispatcher is stopped first.
	Start(ctx context.Context)

	// NotifyChange signals that local state changed and a push may be
	// needed. Coalesced; safe to call from any goroutine.
	NotifyChange()

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// RetryScheduler runs one repeating action on a fixed interval. Beginning a
// new retry loop cancels the previous one, so at most one loop runs per
// scheduler.
type RetryScheduler interface {
	// BeginRetry stops any running loop and starts a new one invoking
	// action every interval until EndRetry is called or ctx is cancelled.
	BeginRetry(ctx context.Context, interval time.Duration, action func(context.Context))

	// EndRetry cancels the running loop and blocks until it has exited.
	// No-op when idle.
	EndRetry()
}
