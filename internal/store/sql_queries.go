package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, telegram_chat_id, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, telegram_chat_id, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, telegram_chat_id, created_at
    FROM users
    WHERE id = $1;`

	setUserChatLink = `UPDATE users
    SET telegram_chat_id = $1
    WHERE id = $2;`

	// seedUser inserts the demo account only into an empty table.
	seedUser = `INSERT INTO users (username, password_hash)
    SELECT $1, $2
    WHERE NOT EXISTS (SELECT 1 FROM users);`

	// updateTaskStatus locks the owned row, updates it and returns the new
	// state together with the status it had before.
	updateTaskStatus = `WITH previous AS (
        SELECT id, status FROM tasks
        WHERE id = $1 AND user_id = $2
        FOR UPDATE
    )
    UPDATE tasks t
    SET status = $3
    FROM previous
    WHERE t.id = previous.id
    RETURNING t.id, t.title, t.description, t.status, t.due_date, t.user_id, t.external_ticket_id, t.created_at, previous.status;`
)

const tasksTable = "tasks"

// taskColumns is the column order every task scan expects.
var taskColumns = []string{
	"id",
	"title",
	"description",
	"status",
	"due_date",
	"user_id",
	"external_ticket_id",
	"created_at",
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
