package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"techstore/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID        string             `db:"id" json:"id"`
	UserID    string             `db:"user_id" json:"user_id"`
	Total     decimal.Decimal    `db:"total" json:"total_amount"`
	Status    domain.OrderStatus `db:"status" json:"status"`
	CreatedAt string             `db:"created_at" json:"created_at"`
}

// OrderItemRow carries the frozen unit price plus a display name resolved at
// read time through the weak product reference. The product may have been
// soft-deleted since; the LEFT JOIN fallback keeps old orders renderable.
type OrderItemRow struct {
	LineNo      int             `db:"line_no" json:"-"`
	ProductID   string          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Qty         int             `db:"qty" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type OrderDetail struct {
	OrderRow
	Items []OrderItemRow `json:"items"`
}

// ---------- Writes (transaction-scoped; the engine owns the tx) ----------

func (r *OrderRepo) InsertTx(tx *sqlx.Tx, id, userID string, total decimal.Decimal, status domain.OrderStatus) error {
	_, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, total, status, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, userID, total, string(status))
	return err
}

func (r *OrderRepo) InsertItemTx(tx *sqlx.Tx, orderID string, lineNo int, productID string, qty int, unitPrice decimal.Decimal) error {
	_, err := tx.Exec(`
	  INSERT INTO order_items(order_id, line_no, product_id, qty, unit_price)
	  VALUES(?, ?, ?, ?, ?)
	`, orderID, lineNo, productID, qty, unitPrice)
	return err
}

// StatusTx reads the current status inside the caller's transaction.
func (r *OrderRepo) StatusTx(tx *sqlx.Tx, id string) (domain.OrderStatus, error) {
	var s string
	if err := tx.Get(&s, `SELECT status FROM orders WHERE id = ?`, id); err != nil {
		return "", err
	}
	return domain.OrderStatus(s), nil
}

func (r *OrderRepo) UpdateStatusTx(tx *sqlx.Tx, id string, status domain.OrderStatus) error {
	_, err := tx.Exec(`UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// ---------- Reads ----------

func (r *OrderRepo) Get(id string) (OrderDetail, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
	  SELECT id, user_id, total, status, created_at FROM orders WHERE id = ?
	`, id); err != nil {
		return OrderDetail{}, err
	}
	items, err := r.items(id)
	if err != nil {
		return OrderDetail{}, err
	}
	return OrderDetail{OrderRow: o, Items: items}, nil
}

func (r *OrderRepo) items(orderID string) ([]OrderItemRow, error) {
	items := []OrderItemRow{}
	err := r.db.Select(&items, `
	  SELECT oi.line_no, oi.product_id, COALESCE(p.name, 'Unknown') AS product_name,
	         oi.qty, oi.unit_price
	  FROM order_items oi
	  LEFT JOIN products p ON p.id = oi.product_id
	  WHERE oi.order_id = ?
	  ORDER BY oi.line_no
	`, orderID)
	return items, err
}

// ListByUser returns a user's orders, newest first, items included.
func (r *OrderRepo) ListByUser(userID string) ([]OrderDetail, error) {
	var rows []OrderRow
	if err := r.db.Select(&rows, `
	  SELECT id, user_id, total, status, created_at
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(created_at) DESC, id DESC
	`, userID); err != nil {
		return nil, err
	}
	return r.withItems(rows)
}

// ListAll returns every order, newest first (admin view).
func (r *OrderRepo) ListAll() ([]OrderDetail, error) {
	var rows []OrderRow
	if err := r.db.Select(&rows, `
	  SELECT id, user_id, total, status, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC, id DESC
	`); err != nil {
		return nil, err
	}
	return r.withItems(rows)
}

func (r *OrderRepo) withItems(rows []OrderRow) ([]OrderDetail, error) {
	out := make([]OrderDetail, 0, len(rows))
	for _, o := range rows {
		items, err := r.items(o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, OrderDetail{OrderRow: o, Items: items})
	}
	return out, nil
}
