// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, name, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`
)

const (
	complianceTable = "compliance_items"
	complianceCols  = "id, user_id, title, description, status, priority, risk_level, due_date, created_at, updated_at"
)

const (
	createDocument = `INSERT INTO documents (id, user_id, title, file_path, file_size, mime_type, ai_analysis)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, title, file_path, file_size, mime_type, ai_analysis, created_at, updated_at;`

	listDocuments = `SELECT id, user_id, title, file_path, file_size, mime_type, ai_analysis, created_at, updated_at
    FROM documents
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	getDocument = `SELECT id, user_id, title, file_path, file_size, mime_type, ai_analysis, created_at, updated_at
    FROM documents
    WHERE id = $1 AND user_id = $2;`

	deleteDocument = `DELETE FROM documents WHERE id = $1 AND user_id = $2;`
)

const (
	addActivity = `INSERT INTO activity (id, user_id, type, title, description, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	listRecentActivity = `SELECT id, user_id, type, title, description, created_at
    FROM activity
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2;`
)

const dashboardStats = `SELECT
    (SELECT count(*) FROM compliance_items WHERE user_id = $1),
    (SELECT count(*) FROM documents WHERE user_id = $1),
    (SELECT count(*) FROM compliance_items WHERE user_id = $1 AND status = 'pending'),
    (SELECT count(*) FROM compliance_items
        WHERE user_id = $1 AND status <> 'completed' AND (priority = 'high' OR risk_level = 'high'));`

const (
	saveSession = `INSERT INTO session (id, token, user_json, expires_at, updated_at)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        token = excluded.token,
        user_json = excluded.user_json,
        expires_at = excluded.expires_at,
        updated_at = excluded.updated_at;`

	loadSession = `SELECT token, user_json, expires_at, updated_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
