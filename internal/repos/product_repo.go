package repos

import (
	"github.com/jmoiron/sqlx"

	"techstore/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, COALESCE(description,'') AS description, price, stock,
  is_active, is_deleted, COALESCE(image_url,'') AS image_url,
  created_at, COALESCE(updated_at,'') AS updated_at`

// ListVisible returns purchasable products only (active, not soft-deleted).
func (r *ProductRepo) ListVisible(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_deleted = 0 AND is_active = 1
	  ORDER BY created_at DESC, id
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

// Get returns the row regardless of flags; callers decide visibility.
// Returns sql.ErrNoRows if the id does not exist.
func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// GetTx is Get inside a caller-owned transaction; the order engine reads
// price, flags and stock through this so every line sees in-transaction state.
func (r *ProductRepo) GetTx(tx *sqlx.Tx, id string) (domain.Product, error) {
	var p domain.Product
	err := tx.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, description, price, stock, is_active, is_deleted, image_url, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, 0, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Description, p.Price, p.Stock, p.IsActive, p.ImageURL)
	return err
}

// Update overwrites the mutable fields. Returns false if no such row.
func (r *ProductRepo) Update(p domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, description = ?, price = ?, stock = ?,
	      is_active = ?, is_deleted = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, p.Name, p.Description, p.Price, p.Stock, p.IsActive, p.IsDeleted, p.ImageURL, p.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SoftDelete marks the product deleted; the row stays for order history.
func (r *ProductRepo) SoftDelete(id string) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products SET is_deleted = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DecrementStockTx subtracts qty inside the caller's transaction, guarded so
// stock can never go below zero even under concurrent writers. A later read
// in the same transaction sees the reduced stock. Returns false when the
// guard rejects the update (not enough stock).
func (r *ProductRepo) DecrementStockTx(tx *sqlx.Tx, id string, qty int) (bool, error) {
	res, err := tx.Exec(`
	  UPDATE products
	  SET stock = stock - ?
	  WHERE id = ? AND stock >= ?
	`, qty, id, qty)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Stock reads the current stock count (test and admin convenience).
func (r *ProductRepo) Stock(id string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT stock FROM products WHERE id = ?`, id)
	return n, err
}
