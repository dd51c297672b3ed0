package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"techstore/internal/domain"
	"techstore/internal/repos"
)

// MaxLineQty caps a single order line. Upstream validation enforces the same
// bound, but the engine re-checks inside the transaction.
const MaxLineQty = 100

// OrderLine is one requested (product, quantity) pair.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderService struct {
	DB       *sqlx.DB
	Products *repos.ProductRepo
	Orders   *repos.OrderRepo
}

func NewOrderService(db *sqlx.DB, products *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{DB: db, Products: products, Orders: orders}
}

// Create places an order for userID. Lines are processed in request order
// inside a single transaction: each line is validated against the product
// row as it stands after the previous lines' decrements, its unit price is
// frozen, and stock is decremented immediately. Any failure rolls the whole
// call back; no stock changes and no order row survive a rejected cart.
func (s *OrderService) Create(userID string, lines []OrderLine) (repos.OrderDetail, error) {
	if len(lines) == 0 {
		return repos.OrderDetail{}, domain.ErrEmptyCart
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return repos.OrderDetail{}, err
	}
	defer func() { _ = tx.Rollback() }()

	type frozenLine struct {
		productID string
		qty       int
		unitPrice decimal.Decimal
	}

	total := decimal.Zero
	frozen := make([]frozenLine, 0, len(lines))

	for _, ln := range lines {
		p, err := s.Products.GetTx(tx, ln.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return repos.OrderDetail{}, fmt.Errorf("product %s: %w", ln.ProductID, domain.ErrProductNotFound)
		}
		if err != nil {
			return repos.OrderDetail{}, err
		}
		if p.IsDeleted || !p.IsActive {
			return repos.OrderDetail{}, fmt.Errorf("product %s: %w", p.Name, domain.ErrProductUnavailable)
		}
		if ln.Quantity > p.Stock {
			return repos.OrderDetail{}, fmt.Errorf("product %s (need %d, have %d): %w",
				p.Name, ln.Quantity, p.Stock, domain.ErrInsufficientStock)
		}
		if ln.Quantity <= 0 || ln.Quantity > MaxLineQty {
			return repos.OrderDetail{}, fmt.Errorf("quantity %d: %w", ln.Quantity, domain.ErrInvalidQuantity)
		}

		// Guarded decrement; a concurrent writer racing past the read above
		// still cannot push stock below zero.
		ok, err := s.Products.DecrementStockTx(tx, p.ID, ln.Quantity)
		if err != nil {
			return repos.OrderDetail{}, err
		}
		if !ok {
			return repos.OrderDetail{}, fmt.Errorf("product %s: %w", p.Name, domain.ErrInsufficientStock)
		}

		// Price freeze: later catalog changes never touch this order.
		frozen = append(frozen, frozenLine{productID: p.ID, qty: ln.Quantity, unitPrice: p.Price})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}

	orderID := uuid.NewString()
	if err := s.Orders.InsertTx(tx, orderID, userID, total, domain.StatusCreated); err != nil {
		return repos.OrderDetail{}, err
	}
	for i, fl := range frozen {
		if err := s.Orders.InsertItemTx(tx, orderID, i+1, fl.productID, fl.qty, fl.unitPrice); err != nil {
			return repos.OrderDetail{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return repos.OrderDetail{}, err
	}

	return s.Orders.Get(orderID)
}

// UpdateStatus moves an order to the named status. Terminal orders
// (Delivered, Cancelled) reject every change, including re-setting the same
// status; that check runs before the name is even parsed, so a bad status
// string on a closed order still reports the terminal conflict. Non-terminal
// orders accept any recognized status; transitions are deliberately not
// restricted to a forward path.
func (s *OrderService) UpdateStatus(orderID, statusName string) (domain.OrderStatus, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	cur, err := s.Orders.StatusTx(tx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return "", err
	}
	if cur.Terminal() {
		return "", fmt.Errorf("order %s is %s: %w", orderID, cur, domain.ErrTerminalState)
	}

	next, ok := domain.ParseStatus(statusName)
	if !ok {
		return "", fmt.Errorf("%q: %w", statusName, domain.ErrUnknownStatus)
	}

	if err := s.Orders.UpdateStatusTx(tx, orderID, next); err != nil {
		return "", err
	}
	return next, tx.Commit()
}

// ListByUser returns the caller's orders, newest first.
func (s *OrderService) ListByUser(userID string) ([]repos.OrderDetail, error) {
	return s.Orders.ListByUser(userID)
}

// ListAll returns every order, newest first (admin only, enforced upstream).
func (s *OrderService) ListAll() ([]repos.OrderDetail, error) {
	return s.Orders.ListAll()
}

// Get returns one order with items.
func (s *OrderService) Get(orderID string) (repos.OrderDetail, error) {
	o, err := s.Orders.Get(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return repos.OrderDetail{}, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	return o, err
}
