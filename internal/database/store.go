// Package database implements the persistent store over a single-file
// SQLite database. Every operation is one atomic read or write; the only
// multi-statement sequence, checkout, runs inside a transaction.
package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"premium-store-bot/models"
)

var (
	// ErrProductNotFound is returned when a product is absent or inactive.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartEmpty is returned by Checkout when the user has no cart lines.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidStatus is returned for a payment status outside the
	// pending/completed/cancelled set.
	ErrInvalidStatus = errors.New("invalid payment status")
)

// Store owns all entity state. It holds no caches; every call goes to the
// database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database file and applies the schema
// idempotently. Pass ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.CartItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

// UpsertUser inserts the user or replaces all fields of an existing row
// with the same platform id.
func (s *Store) UpsertUser(u *models.User) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(u).Error; err != nil {
		return fmt.Errorf("upsert user %d: %w", u.ID, err)
	}
	return nil
}

// ActiveProducts lists active products, optionally filtered by category.
// The full catalog is ordered by category then name; a filtered view by
// name only.
func (s *Store) ActiveProducts(category string) ([]models.Product, error) {
	var products []models.Product
	q := s.db.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category).Order("name")
	} else {
		q = q.Order("category, name")
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// AllProducts lists every product, active or not, for admin views.
func (s *Store) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("category, name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	return products, nil
}

// ProductByID fetches one active product. Inactive and absent products both
// come back as ErrProductNotFound.
func (s *Store) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return &product, nil
}

// Categories lists the distinct categories among active products,
// alphabetically.
func (s *Store) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).
		Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// AddProduct inserts a new catalog entry.
func (s *Store) AddProduct(p *models.Product) error {
	if p.Price < 0 {
		return fmt.Errorf("add product %q: price must not be negative", p.Name)
	}
	p.IsActive = true
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("add product %q: %w", p.Name, err)
	}
	return nil
}

// SetProductActive toggles the soft-delete flag. There is no hard delete.
func (s *Store) SetProductActive(id uint, active bool) error {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("update product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AddToCart merges the requested quantity into the user's existing line for
// the product, or inserts a new line.
func (s *Store) AddToCart(userID int64, productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
		switch {
		case err == nil:
			return tx.Model(&item).Update("quantity", item.Quantity+quantity).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return fmt.Errorf("add to cart (user %d, product %d): %w", userID, productID, err)
	}
	return nil
}

func cartLines(tx *gorm.DB, userID int64) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := tx.Table("cart").
		Select("cart.id AS cart_id, cart.product_id, products.name, products.price, cart.quantity").
		Joins("JOIN products ON products.id = cart.product_id").
		Where("cart.user_id = ?", userID).
		Order("cart.id").
		Scan(&lines).Error
	return lines, err
}

// Cart returns the user's cart lines joined with current product name and
// price.
func (s *Store) Cart(userID int64) ([]models.CartLine, error) {
	lines, err := cartLines(s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart for user %d: %w", userID, err)
	}
	return lines, nil
}

// ClearCart deletes all of the user's cart lines.
func (s *Store) ClearCart(userID int64) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart for user %d: %w", userID, err)
	}
	return nil
}

// CreateOrder inserts one order row with the given explicit fields.
func (s *Store) CreateOrder(userID int64, productID uint, quantity int, totalPrice int64, method string) (uint, error) {
	order := models.Order{
		UserID:        userID,
		ProductID:     productID,
		Quantity:      quantity,
		TotalPrice:    totalPrice,
		PaymentMethod: method,
		PaymentStatus: models.StatusPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return 0, fmt.Errorf("create order (user %d, product %d): %w", userID, productID, err)
	}
	return order.ID, nil
}

// Checkout converts every cart line of the user into one pending order,
// copying the current product price into the order total, then clears the
// cart. The whole conversion is a single transaction: either all orders
// exist and the cart is empty, or nothing changed.
func (s *Store) Checkout(userID int64, method string) (orderIDs []uint, total int64, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		lines, err := cartLines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		for _, line := range lines {
			order := models.Order{
				UserID:        userID,
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				TotalPrice:    line.Subtotal(),
				PaymentMethod: method,
				PaymentStatus: models.StatusPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orderIDs = append(orderIDs, order.ID)
			total += order.TotalPrice
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrCartEmpty) {
			return nil, 0, ErrCartEmpty
		}
		return nil, 0, fmt.Errorf("checkout for user %d: %w", userID, err)
	}
	return orderIDs, total, nil
}

// OrdersByUser lists a user's orders, newest first, joined with the product
// name.
func (s *Store) OrdersByUser(userID int64) ([]models.OrderHistory, error) {
	var orders []models.OrderHistory
	err := s.db.Table("orders").
		Select("orders.id AS order_id, products.name AS product_name, orders.quantity, orders.total_price, orders.payment_method, orders.payment_status, orders.order_date").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// AllOrders lists every order, newest first, joined with user and product.
// An empty status means no filter.
func (s *Store) AllOrders(status string) ([]models.OrderReport, error) {
	var orders []models.OrderReport
	q := s.db.Table("orders").
		Select("orders.id AS order_id, orders.user_id, users.first_name, users.last_name, products.name AS product_name, orders.quantity, orders.total_price, orders.payment_method, orders.payment_status, orders.order_date").
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Order("orders.order_date DESC")
	if status != "" {
		q = q.Where("orders.payment_status = ?", status)
	}
	if err := q.Scan(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListUsers lists every user with order count and total spent, newest first.
func (s *Store) ListUsers() ([]models.UserReport, error) {
	var users []models.UserReport
	err := s.db.Table("users").
		Select("users.id AS user_id, users.username, users.first_name, users.last_name, users.join_date, COUNT(orders.id) AS total_orders, COALESCE(SUM(orders.total_price), 0) AS total_spent").
		Joins("LEFT JOIN orders ON orders.user_id = users.id").
		Group("users.id").
		Order("users.join_date DESC").
		Scan(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdatePaymentStatus sets an order's payment status. A status outside the
// allowed set is rejected before the row is touched; an unknown order id
// silently affects zero rows.
func (s *Store) UpdatePaymentStatus(orderID uint, status string) error {
	switch status {
	case models.StatusPending, models.StatusCompleted, models.StatusCancelled:
	default:
		return ErrInvalidStatus
	}
	err := s.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status).Error
	if err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}
	return nil
}

// Stats computes the aggregate counters for the admin statistics view.
// "Today" is the calendar day in the process's local time zone.
func (s *Store) Stats() (models.Stats, error) {
	var stats models.Stats

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, fmt.Errorf("count users: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		return stats, fmt.Errorf("count products: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return stats, fmt.Errorf("count orders: %w", err)
	}
	err := s.db.Model(&models.Order{}).
		Where("payment_status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return stats, fmt.Errorf("sum revenue: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Where("payment_status = ?", models.StatusPending).Count(&stats.PendingOrders).Error; err != nil {
		return stats, fmt.Errorf("count pending orders: %w", err)
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err = s.db.Model(&models.Order{}).
		Where("order_date >= ? AND order_date < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&stats.TodayOrders).Error
	if err != nil {
		return stats, fmt.Errorf("count today's orders: %w", err)
	}

	return stats, nil
}
