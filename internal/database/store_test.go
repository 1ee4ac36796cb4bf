package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-store-bot/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	return s
}

func addProduct(t *testing.T, s *Store, name, category string, price int64) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Description: name + " description", Price: price, Category: category}
	require.NoError(t, s.AddProduct(p))
	return p
}

func addUser(t *testing.T, s *Store, id int64, username string) {
	t.Helper()
	require.NoError(t, s.UpsertUser(&models.User{ID: id, Username: username, FirstName: "First", LastName: "Last"}))
}

func TestSeedIsGuardedByRowCount(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Seed())
	require.NoError(t, s.Seed())

	products, err := s.ActiveProducts("")
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestUpsertUserReplacesExistingRow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertUser(&models.User{ID: 42, Username: "old", FirstName: "Budi"}))
	require.NoError(t, s.UpsertUser(&models.User{ID: 42, Username: "new", FirstName: "Budi", LastName: "Santoso"}))

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(42), users[0].UserID)
	assert.Equal(t, "new", users[0].Username)
	assert.Equal(t, "Santoso", users[0].LastName)
}

func TestActiveProductsOrderingAndFilter(t *testing.T) {
	s := newTestStore(t)
	addProduct(t, s, "Zeta", "Music", 1000)
	addProduct(t, s, "Alpha", "Music", 2000)
	addProduct(t, s, "Beta", "Design", 3000)

	all, err := s.ActiveProducts("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// category then name
	assert.Equal(t, "Beta", all[0].Name)
	assert.Equal(t, "Alpha", all[1].Name)
	assert.Equal(t, "Zeta", all[2].Name)

	music, err := s.ActiveProducts("Music")
	require.NoError(t, err)
	require.Len(t, music, 2)
	assert.Equal(t, "Alpha", music[0].Name)
	assert.Equal(t, "Zeta", music[1].Name)
}

func TestAddedProductAppearsExactlyOnce(t *testing.T) {
	s := newTestStore(t)
	p := addProduct(t, s, "Spotify Premium", "Music", 25000)

	all, err := s.ActiveProducts("")
	require.NoError(t, err)
	var seen int
	for _, got := range all {
		if got.ID == p.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestAddProductRejectsNegativePrice(t *testing.T) {
	s := newTestStore(t)
	err := s.AddProduct(&models.Product{Name: "Broken", Price: -1})
	assert.Error(t, err)

	all, err := s.ActiveProducts("")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductByID(t *testing.T) {
	s := newTestStore(t)
	p := addProduct(t, s, "Netflix", "Entertainment", 65000)

	got, err := s.ProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", got.Name)

	_, err = s.ProductByID(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, s.SetProductActive(p.ID, false))
	_, err = s.ProductByID(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDisabledProductKeepsOrderHistory(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 7, "buyer")
	p := addProduct(t, s, "Canva Pro", "Design", 45000)

	_, err := s.CreateOrder(7, p.ID, 1, 45000, "dana")
	require.NoError(t, err)

	require.NoError(t, s.SetProductActive(p.ID, false))

	all, err := s.ActiveProducts("")
	require.NoError(t, err)
	assert.Empty(t, all)

	orders, err := s.OrdersByUser(7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Canva Pro", orders[0].ProductName)
	assert.Equal(t, int64(45000), orders[0].TotalPrice)
}

func TestSetProductActiveUnknownID(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.SetProductActive(1234, false), ErrProductNotFound)
}

func TestCategoriesDistinctAndSorted(t *testing.T) {
	s := newTestStore(t)
	addProduct(t, s, "A", "Music", 1)
	addProduct(t, s, "B", "Design", 1)
	addProduct(t, s, "C", "Music", 1)
	hidden := addProduct(t, s, "D", "Gaming", 1)
	require.NoError(t, s.SetProductActive(hidden.ID, false))

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Music"}, categories)
}

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "u")
	p := addProduct(t, s, "Spotify", "Music", 25000)

	require.NoError(t, s.AddToCart(1, p.ID, 2))
	require.NoError(t, s.AddToCart(1, p.ID, 3))

	lines, err := s.Cart(1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "Spotify", lines[0].Name)
	assert.Equal(t, int64(25000), lines[0].Price)
	assert.Equal(t, int64(125000), lines[0].Subtotal())
}

func TestCartsAreIndependentPerUser(t *testing.T) {
	s := newTestStore(t)
	p := addProduct(t, s, "Spotify", "Music", 25000)

	require.NoError(t, s.AddToCart(1, p.ID, 1))
	require.NoError(t, s.AddToCart(2, p.ID, 4))

	lines1, err := s.Cart(1)
	require.NoError(t, err)
	require.Len(t, lines1, 1)
	assert.Equal(t, 1, lines1[0].Quantity)

	require.NoError(t, s.ClearCart(1))

	lines1, err = s.Cart(1)
	require.NoError(t, err)
	assert.Empty(t, lines1)

	lines2, err := s.Cart(2)
	require.NoError(t, err)
	require.Len(t, lines2, 1)
	assert.Equal(t, 4, lines2[0].Quantity)
}

func TestCheckoutConvertsEveryLineAndClearsCart(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 9, "buyer")
	p1 := addProduct(t, s, "Spotify", "Music", 25000)
	p2 := addProduct(t, s, "Netflix", "Entertainment", 65000)

	require.NoError(t, s.AddToCart(9, p1.ID, 2))
	require.NoError(t, s.AddToCart(9, p2.ID, 1))

	orderIDs, total, err := s.Checkout(9, "dana")
	require.NoError(t, err)
	assert.Len(t, orderIDs, 2)
	assert.Equal(t, int64(115000), total)

	lines, err := s.Cart(9)
	require.NoError(t, err)
	assert.Empty(t, lines)

	orders, err := s.OrdersByUser(9)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	totals := map[string]int64{}
	for _, o := range orders {
		totals[o.ProductName] = o.TotalPrice
		assert.Equal(t, models.StatusPending, o.PaymentStatus)
		assert.Equal(t, "dana", o.PaymentMethod)
	}
	assert.Equal(t, int64(50000), totals["Spotify"])
	assert.Equal(t, int64(65000), totals["Netflix"])
}

func TestCheckoutCopiesPriceAtPurchaseTime(t *testing.T) {
	s := newTestStore(t)
	p := addProduct(t, s, "Spotify", "Music", 25000)
	require.NoError(t, s.AddToCart(3, p.ID, 1))

	_, _, err := s.Checkout(3, "ovo")
	require.NoError(t, err)

	// later price change must not rewrite history
	require.NoError(t, s.db.Model(&models.Product{}).Where("id = ?", p.ID).Update("price", 99000).Error)

	orders, err := s.OrdersByUser(3)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(25000), orders[0].TotalPrice)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := newTestStore(t)

	orderIDs, total, err := s.Checkout(5, "dana")
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Empty(t, orderIDs)
	assert.Zero(t, total)

	orders, err := s.OrdersByUser(5)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdatePaymentStatus(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "u")
	p := addProduct(t, s, "Spotify", "Music", 25000)
	orderID, err := s.CreateOrder(1, p.ID, 1, 25000, "bank")
	require.NoError(t, err)

	require.NoError(t, s.UpdatePaymentStatus(orderID, models.StatusCompleted))

	orders, err := s.OrdersByUser(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, orders[0].PaymentStatus)

	// out-of-set value is rejected without touching the row
	err = s.UpdatePaymentStatus(orderID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	orders, err = s.OrdersByUser(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, orders[0].PaymentStatus)

	// unknown id silently affects zero rows
	assert.NoError(t, s.UpdatePaymentStatus(99999, models.StatusCancelled))
}

func TestOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "u")
	p := addProduct(t, s, "Spotify", "Music", 25000)

	first, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	second, err := s.CreateOrder(1, p.ID, 2, 50000, "dana")
	require.NoError(t, err)

	// force distinct timestamps
	base := time.Now().Add(-time.Hour)
	require.NoError(t, s.db.Model(&models.Order{}).Where("id = ?", first).Update("order_date", base).Error)
	require.NoError(t, s.db.Model(&models.Order{}).Where("id = ?", second).Update("order_date", base.Add(time.Minute)).Error)

	orders, err := s.OrdersByUser(1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].OrderID)
	assert.Equal(t, first, orders[1].OrderID)
}

func TestAllOrdersStatusFilter(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "u")
	p := addProduct(t, s, "Spotify", "Music", 25000)

	pendingID, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	doneID, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	require.NoError(t, s.UpdatePaymentStatus(doneID, models.StatusCompleted))

	pending, err := s.AllOrders(models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingID, pending[0].OrderID)
	assert.Equal(t, "First", pending[0].FirstName)

	all, err := s.AllOrders("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "a")
	addUser(t, s, 2, "b")
	p := addProduct(t, s, "Spotify", "Music", 25000)
	inactive := addProduct(t, s, "Old", "Music", 1000)
	require.NoError(t, s.SetProductActive(inactive.ID, false))

	completed1, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	completed2, err := s.CreateOrder(2, p.ID, 2, 50000, "ovo")
	require.NoError(t, err)
	_, err = s.CreateOrder(1, p.ID, 1, 25000, "bank") // stays pending
	require.NoError(t, err)
	cancelled, err := s.CreateOrder(2, p.ID, 1, 25000, "dana")
	require.NoError(t, err)

	require.NoError(t, s.UpdatePaymentStatus(completed1, models.StatusCompleted))
	require.NoError(t, s.UpdatePaymentStatus(completed2, models.StatusCompleted))
	require.NoError(t, s.UpdatePaymentStatus(cancelled, models.StatusCancelled))

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveProducts)
	assert.Equal(t, int64(4), stats.TotalOrders)
	// revenue counts completed orders only
	assert.Equal(t, int64(75000), stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(4), stats.TodayOrders)
}

func TestStatsTodayExcludesOlderOrders(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "a")
	p := addProduct(t, s, "Spotify", "Music", 25000)

	old, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	_, err = s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)

	require.NoError(t, s.db.Model(&models.Order{}).
		Where("id = ?", old).
		Update("order_date", time.Now().AddDate(0, 0, -2)).Error)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TodayOrders)
}

func TestListUsersAggregates(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, 1, "buyer")
	addUser(t, s, 2, "browser")
	p := addProduct(t, s, "Spotify", "Music", 25000)

	_, err := s.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	_, err = s.CreateOrder(1, p.ID, 2, 50000, "dana")
	require.NoError(t, err)

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	byID := map[int64]models.UserReport{}
	for _, u := range users {
		byID[u.UserID] = u
	}
	assert.Equal(t, int64(2), byID[1].TotalOrders)
	assert.Equal(t, int64(75000), byID[1].TotalSpent)
	assert.Equal(t, int64(0), byID[2].TotalOrders)
	assert.Equal(t, int64(0), byID[2].TotalSpent)
}
