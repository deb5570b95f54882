// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findSiteOwner = `SELECT user_id
    FROM sites
    WHERE site_id = $1;`

	createSite = `INSERT INTO sites (site_id, project_id, user_id, name, latitude, longitude)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING site_id, project_id, name, latitude, longitude;`

	upsertSoilDoc = `INSERT INTO %s (site_id, doc, updated_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (site_id) DO UPDATE SET
        doc        = excluded.doc,
        updated_at = NOW();`

	getSoilDoc = `SELECT doc
    FROM %s
    WHERE site_id = $1;`
)

// psql is the statement builder used for all dynamically assembled server
// queries. PostgreSQL uses $N placeholders rather than the default '?'.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListProjectsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("project_id", "name").
		From("projects").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("project_id").
		ToSql()
}

func buildListSitesQuery(userID int64) (string, []any, error) {
	return psql.
		Select("site_id", "project_id", "name", "latitude", "longitude").
		From("sites").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("site_id").
		ToSql()
}

// buildListSoilDocsQuery selects all soil documents owned by one user from
// either the soil_data or soil_metadata table, joined through sites.
func buildListSoilDocsQuery(table string, userID int64) (string, []any, error) {
	return psql.
		Select("d.site_id", "d.doc").
		From(table + " d").
		Join("sites s ON s.site_id = d.site_id").
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("d.site_id").
		ToSql()
}
