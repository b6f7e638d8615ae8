package repository

import (
	"time"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

// StockCheck is one order line against current inventory.
type StockCheck struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
	Sufficient  bool   `json:"sufficient"`
}

// SalesRow is one order line of the detailed sales export.
type SalesRow struct {
	OrderID           uint      `json:"order_id"`
	TransactionNumber string    `json:"transaction_number"`
	OrderDate         time.Time `json:"order_date"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	PaymentMethod     string    `json:"payment_method"`
	ProductName       string    `json:"product_name"`
	Category          string    `json:"category"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unit_price"`
	TotalPrice        float64   `json:"total_price"`
	DeliveryFee       float64   `json:"delivery_fee"`
	TotalWithDelivery float64   `json:"total_with_delivery"`
}

// TransactionFilter narrows the cashier transactions listing. Search matches
// the customer name or an exact order id; Date pins one order date.
type TransactionFilter struct {
	Search string
	Date   string
}

type OrderRepository interface {
	CountByStatusAndMethod(status, method string, date string) (int64, error)
	CompletedTransactions(f TransactionFilter, limit, offset int) ([]model.Order, error)
	CountCompleted(f TransactionFilter) (int64, error)
	Items(orderID uint) ([]model.OrderItem, error)
	StockAvailability(orderID uint) ([]StockCheck, error)
	Cancel(orderID uint, reason string) error
	SalesRows(from, to time.Time) ([]SalesRow, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db}
}

func (r *orderRepository) CountByStatusAndMethod(status, method string, date string) (int64, error) {
	var count int64
	q := r.db.Model(&model.Order{}).
		Where("order_status = ? AND payment_method = ?", status, method)
	if date != "" {
		q = q.Where("DATE(order_date) = ?", date)
	}
	err := q.Count(&count).Error
	return count, err
}

// completedQuery applies the shared listing filters: customer-name or
// order-id search and an order-date pin.
func (r *orderRepository) completedQuery(f TransactionFilter) *gorm.DB {
	q := r.db.Model(&model.Order{}).
		Joins("LEFT JOIN users u ON u.id = orders.user_id").
		Where("orders.order_status = ?", "Completed")
	if f.Search != "" {
		q = q.Where("CONCAT(u.first_name, ' ', u.last_name) LIKE ? OR orders.id = ?",
			"%"+f.Search+"%", f.Search)
	}
	if f.Date != "" {
		q = q.Where("DATE(orders.order_date) = ?", f.Date)
	}
	return q
}

func (r *orderRepository) CompletedTransactions(f TransactionFilter, limit, offset int) ([]model.Order, error) {
	var orders []model.Order
	err := r.completedQuery(f).
		Preload("User").Preload("Items.Product").
		Order("orders.order_date DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) CountCompleted(f TransactionFilter) (int64, error) {
	var count int64
	err := r.completedQuery(f).Count(&count).Error
	return count, err
}

func (r *orderRepository) Items(orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.Preload("Product").Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderRepository) StockAvailability(orderID uint) ([]StockCheck, error) {
	var checks []StockCheck
	err := r.db.Raw(`
		SELECT oi.product_id, p.product_name, oi.quantity AS requested,
		       p.stock AS available, (p.stock >= oi.quantity) AS sufficient
		  FROM order_items oi
		  JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = ?`, orderID).Scan(&checks).Error
	return checks, err
}

func (r *orderRepository) Cancel(orderID uint, reason string) error {
	return r.db.Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"order_status": "Cancelled", "reason": reason}).Error
}

// SalesRows flattens completed/paid orders in range into one row per order
// item, joined with customer and transaction details, for the XLSX export.
// The range filters on the transaction completion date to stay consistent
// with the sales report page.
func (r *orderRepository) SalesRows(from, to time.Time) ([]SalesRow, error) {
	var rows []SalesRow
	err := r.db.Raw(`
		SELECT o.id AS order_id,
		       COALESCE(t.transaction_number, '') AS transaction_number,
		       o.order_date,
		       COALESCE(u.first_name, '') AS first_name,
		       COALESCE(u.last_name, '') AS last_name,
		       o.payment_method,
		       COALESCE(p.product_name, 'No Items') AS product_name,
		       COALESCE(p.category, 'No Category') AS category,
		       COALESCE(oi.quantity, 0) AS quantity,
		       COALESCE(oi.price, 0) AS unit_price,
		       o.total_price,
		       COALESCE(o.delivery_fee, 0) AS delivery_fee,
		       COALESCE(NULLIF(o.total_amount_with_delivery, 0), o.total_price) AS total_with_delivery
		  FROM orders o
		  LEFT JOIN users u ON u.id = o.user_id
		  LEFT JOIN transactions t ON t.order_id = o.id
		  LEFT JOIN order_items oi ON oi.order_id = o.id
		  LEFT JOIN products p ON p.id = oi.product_id
		 WHERE DATE(t.completed_date_transaction) BETWEEN ? AND ?
		   AND LOWER(o.order_status) IN ('completed', 'paid')
		 ORDER BY t.completed_date_transaction DESC, o.id ASC, oi.id ASC`,
		from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&rows).Error
	return rows, err
}
