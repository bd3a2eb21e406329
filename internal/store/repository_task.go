package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	sq "github.com/Masterminds/squirrel"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Every statement carries a user_id predicate, so rows of other owners are
// neither returned nor modified.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, extra ...any) (models.Task, error) {
	var task models.Task
	dest := []any{
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.DueDate,
		&task.UserID,
		&task.ExternalTicketID,
		&task.CreatedAt,
	}

	err := row.Scan(append(dest, extra...)...)
	return task, err
}

// CreateTask inserts task and returns the stored row.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(tasksTable).
		Columns("title", "description", "status", "due_date", "user_id").
		Values(task.Title, task.Description, task.Status, task.DueDate, task.UserID).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTask(t.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListTasks returns the owner's tasks matching filter, ordered by id.
func (t *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("id ASC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Query != "" {
		builder = builder.Where(`title ILIKE ? ESCAPE '\'`, "%"+escapeLike(filter.Query)+"%")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.ListTasks").
				Int64("user_id", filter.UserID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTaskStatus sets the status of an owned task in one statement and
// returns the updated task with its previous status.
func (t *taskRepository) UpdateTaskStatus(ctx context.Context, userID, taskID int64, status models.TaskStatus) (models.StatusChange, error) {
	log := logger.FromContext(ctx)

	var change models.StatusChange
	task, err := scanTask(t.QueryRowContext(ctx, updateTaskStatus, taskID, userID, status), &change.PreviousStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StatusChange{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.UpdateTaskStatus").
			Int64("user_id", userID).
			Int64("task_id", taskID).
			Msg("failed to update task status")
		return models.StatusChange{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	change.Task = task
	return change, nil
}

// SetExternalTicket records the mirrored ticket number on an owned task.
func (t *taskRepository) SetExternalTicket(ctx context.Context, userID, taskID, ticketID int64) error {
	query, args, err := psql.Update(tasksTable).
		Set("external_ticket_id", ticketID).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.execOwned(ctx, "*taskRepository.SetExternalTicket", query, args...)
}

// DeleteTask removes an owned task.
func (t *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	query, args, err := psql.Delete(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.execOwned(ctx, "*taskRepository.DeleteTask", query, args...)
}

// execOwned runs a single-row statement and maps zero affected rows to
// ErrTaskNotFound.
func (t *taskRepository) execOwned(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
