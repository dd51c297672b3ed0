package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
	IsActive    bool            `db:"is_active" json:"is_active"`
	IsDeleted   bool            `db:"is_deleted" json:"is_deleted"`
	ImageURL    string          `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   string          `db:"created_at" json:"created_at"`
	UpdatedAt   string          `db:"updated_at" json:"-"`
}

// ActionLog is one entry of the admin audit trail.
type ActionLog struct {
	ID         string `db:"id" json:"id"`
	ActorEmail string `db:"actor_email" json:"actor_email"`
	Action     string `db:"action" json:"action"`
	EntityName string `db:"entity_name" json:"entity_name"`
	EntityID   string `db:"entity_id" json:"entity_id"`
	Details    string `db:"details" json:"details"`
	CreatedAt  string `db:"created_at" json:"created_at"`
}
