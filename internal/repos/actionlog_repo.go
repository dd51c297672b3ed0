package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"techstore/internal/domain"
)

type ActionLogRepo struct{ db *sqlx.DB }

func NewActionLogRepo(db *sqlx.DB) *ActionLogRepo { return &ActionLogRepo{db: db} }

func (r *ActionLogRepo) Insert(actorEmail, action, entityName, entityID, details string) error {
	_, err := r.db.Exec(`
	  INSERT INTO action_logs(id, actor_email, action, entity_name, entity_id, details, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, uuid.NewString(), actorEmail, action, entityName, entityID, details)
	return err
}

// ListLatest returns the newest entries first.
func (r *ActionLogRepo) ListLatest(limit int) ([]domain.ActionLog, error) {
	if limit <= 0 {
		limit = 100
	}
	logs := []domain.ActionLog{}
	err := r.db.Select(&logs, `
	  SELECT id, actor_email, action, entity_name, entity_id, COALESCE(details,'') AS details, created_at
	  FROM action_logs
	  ORDER BY datetime(created_at) DESC, id DESC
	  LIMIT ?
	`, limit)
	return logs, err
}
