package models

import "time"

// User is a Telegram user known to the store. The primary key is the
// platform-assigned id, so it is never autoincremented. Users are upserted
// on every inbound interaction and never deleted.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false"`
	Username  string    `gorm:"size:100"`
	FirstName string    `gorm:"size:100"`
	LastName  string    `gorm:"size:100"`
	JoinDate  time.Time `gorm:"autoCreateTime"`
	IsAdmin   bool      `gorm:"default:false"`
}

func (User) TableName() string { return "users" }

// Product is a catalog entry. Price is an integer in the smallest currency
// unit. Products are never hard-deleted; IsActive=false removes them from
// the catalog and from single-item lookup while keeping order history valid.
type Product struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;size:200"`
	Description  string `gorm:"type:text"`
	Price        int64  `gorm:"not null;check:price >= 0"`
	Category     string `gorm:"size:100;index"`
	ImageURL     string
	DownloadLink string
	IsActive     bool      `gorm:"default:true"`
	CreatedDate  time.Time `gorm:"autoCreateTime"`
}

func (Product) TableName() string { return "products" }

// CartItem is one pending (user, product) selection. The composite unique
// index backs the invariant that repeat adds merge into one line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;default:1"`
	AddedDate time.Time `gorm:"autoCreateTime"`
}

func (CartItem) TableName() string { return "cart" }

// Order is a converted cart line. TotalPrice is quantity times the product
// price at checkout time; the price is copied, not re-joined, so later
// catalog edits leave history untouched.
type Order struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        int64     `gorm:"not null;index"`
	ProductID     uint      `gorm:"not null"`
	Quantity      int       `gorm:"not null;default:1"`
	TotalPrice    int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"size:20"`
	PaymentStatus string    `gorm:"size:20;not null;default:pending"`
	OrderDate     time.Time `gorm:"autoCreateTime;index"`
}

func (Order) TableName() string { return "orders" }

// Payment status values an order can hold.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// CartLine is a cart row joined with the current product name and price.
type CartLine struct {
	CartID    uint
	ProductID uint
	Name      string
	Price     int64
	Quantity  int
}

// Subtotal is the line's quantity times the current product price.
func (l CartLine) Subtotal() int64 { return l.Price * int64(l.Quantity) }

// OrderHistory is an order joined with its product name, for the user-facing
// purchase history.
type OrderHistory struct {
	OrderID       uint
	ProductName   string
	Quantity      int
	TotalPrice    int64
	PaymentMethod string
	PaymentStatus string
	OrderDate     time.Time
}

// OrderReport is an order joined with user and product, for admin reports.
type OrderReport struct {
	OrderID       uint
	UserID        int64
	FirstName     string
	LastName      string
	ProductName   string
	Quantity      int
	TotalPrice    int64
	PaymentMethod string
	PaymentStatus string
	OrderDate     time.Time
}

// UserReport is a user joined with order aggregates, for admin reports.
type UserReport struct {
	UserID      int64
	Username    string
	FirstName   string
	LastName    string
	JoinDate    time.Time
	TotalOrders int64
	TotalSpent  int64
}

// Stats are the aggregate counters shown in the admin statistics view.
type Stats struct {
	TotalUsers     int64
	ActiveProducts int64
	TotalOrders    int64
	TotalRevenue   int64
	PendingOrders  int64
	TodayOrders    int64
}
