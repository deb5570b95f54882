package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/models"
)

// siteRepository is the PostgreSQL-backed implementation of [SiteRepository].
// It serves project and site lookups for pull snapshots and ownership checks
// for push authorization.
type siteRepository struct {
	*DB
	logger *logger.Logger
}

// NewSiteRepository constructs a [SiteRepository] backed by the provided
// database connection and logger.
func NewSiteRepository(db *DB, logger *logger.Logger) SiteRepository {
	logger.Debug().Msg("creating site repository")
	return &siteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *siteRepository) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "siteRepository.ListProjects").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "siteRepository.ListProjects").
			Int64("user_id", userID).
			Msg("failed to execute query for listing projects")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 10)
	for rows.Next() {
		var project models.Project
		if scanErr := rows.Scan(&project.ID, &project.Name); scanErr != nil {
			log.Err(scanErr).
				Str("func", "siteRepository.ListProjects").
				Int64("user_id", userID).
				Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "siteRepository.ListProjects").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

func (r *siteRepository) ListSites(ctx context.Context, userID int64) ([]models.Site, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSitesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "siteRepository.ListSites").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "siteRepository.ListSites").
			Int64("user_id", userID).
			Msg("failed to execute query for listing sites")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	sites := make([]models.Site, 0, 25)
	for rows.Next() {
		var site models.Site
		var projectID sql.NullString

		if scanErr := rows.Scan(&site.ID, &projectID, &site.Name, &site.Latitude, &site.Longitude); scanErr != nil {
			log.Err(scanErr).
				Str("func", "siteRepository.ListSites").
				Int64("user_id", userID).
				Msg("failed to scan site row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		site.ProjectID = projectID.String

		sites = append(sites, site)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "siteRepository.ListSites").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sites, nil
}

// SiteOwner resolves the owning user of a site.
//
// Returns [ErrSiteNotFound] when no site with the given id exists.
func (r *siteRepository) SiteOwner(ctx context.Context, siteID string) (int64, error) {
	log := logger.FromContext(ctx)

	var ownerID int64
	row := r.DB.QueryRowContext(ctx, findSiteOwner, siteID)
	if err := row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSiteNotFound
		}
		log.Err(err).
			Str("func", "siteRepository.SiteOwner").
			Str("site_id", siteID).
			Msg("failed to resolve site owner")
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}

	return ownerID, nil
}

func (r *siteRepository) CreateSite(ctx context.Context, userID int64, site models.Site) (models.Site, error) {
	log := logger.FromContext(ctx)

	var projectID sql.NullString
	if site.ProjectID != "" {
		projectID = sql.NullString{String: site.ProjectID, Valid: true}
	}

	var created models.Site
	var createdProjectID sql.NullString
	row := r.DB.QueryRowContext(ctx, createSite, site.ID, projectID, userID, site.Name, site.Latitude, site.Longitude)
	if err := row.Scan(&created.ID, &createdProjectID, &created.Name, &created.Latitude, &created.Longitude); err != nil {
		log.Err(err).
			Str("func", "siteRepository.CreateSite").
			Str("site_id", site.ID).
			Int64("user_id", userID).
			Msg("failed to create site")
		return models.Site{}, r.wrapDBError(ErrExecutingStatement, err)
	}
	created.ProjectID = createdProjectID.String

	return created, nil
}
