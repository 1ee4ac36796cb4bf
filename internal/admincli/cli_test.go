package admincli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-store-bot/internal/database"
	"premium-store-bot/models"
)

func newTestCLI(t *testing.T, script string) (*CLI, *database.Store, *bytes.Buffer) {
	t.Helper()
	store, err := database.Open(":memory:")
	require.NoError(t, err)

	var out bytes.Buffer
	return New(store, strings.NewReader(script), &out), store, &out
}

func TestExitChoice(t *testing.T) {
	cli, _, out := newTestCLI(t, "0\n")
	cli.Run()
	assert.Contains(t, out.String(), "Terima kasih")
}

func TestRunStopsOnEndOfInput(t *testing.T) {
	cli, _, out := newTestCLI(t, "")
	cli.Run()
	assert.Contains(t, out.String(), "Terima kasih")
}

func TestInvalidChoiceKeepsLooping(t *testing.T) {
	cli, _, out := newTestCLI(t, "9\n0\n")
	cli.Run()
	assert.Contains(t, out.String(), "❌ Pilihan tidak valid!")
	assert.Contains(t, out.String(), "Terima kasih")
}

func TestAddProduct(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"Spotify Premium",
		"Akun premium 1 bulan",
		"25000",
		"Music",
		"",
		"",
		"0",
	}, "\n") + "\n"

	cli, store, out := newTestCLI(t, script)
	cli.Run()

	assert.Contains(t, out.String(), "✅ Produk berhasil ditambahkan dengan ID:")

	products, err := store.AllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Spotify Premium", products[0].Name)
	assert.Equal(t, int64(25000), products[0].Price)
	assert.True(t, products[0].IsActive)
}

func TestAddProductRepromptsOnBadPrice(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"Spotify",
		"desc",
		"dua puluh ribu", // rejected, re-prompted
		"25000",
		"Music",
		"",
		"",
		"0",
	}, "\n") + "\n"

	cli, store, out := newTestCLI(t, script)
	cli.Run()

	assert.Contains(t, out.String(), "❌ Harus berupa angka!")

	products, err := store.AllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(25000), products[0].Price)
}

func TestListProducts(t *testing.T) {
	cli, store, out := newTestCLI(t, "2\n0\n")
	require.NoError(t, store.AddProduct(&models.Product{Name: "Canva Pro", Price: 45000, Category: "Design"}))
	p := &models.Product{Name: "Lama", Price: 1000, Category: "Design"}
	require.NoError(t, store.AddProduct(p))
	require.NoError(t, store.SetProductActive(p.ID, false))

	cli.Run()

	text := out.String()
	assert.Contains(t, text, "Canva Pro")
	assert.Contains(t, text, "Rp 45,000")
	assert.Contains(t, text, "Nonaktif")
	assert.Contains(t, text, "Total: 2 produk")
}

func TestListPendingOrdersHeading(t *testing.T) {
	cli, store, out := newTestCLI(t, "5\n0\n")
	require.NoError(t, store.UpsertUser(&models.User{ID: 1, FirstName: "Budi"}))
	p := &models.Product{Name: "Spotify", Price: 25000, Category: "Music"}
	require.NoError(t, store.AddProduct(p))
	pendingID, err := store.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	doneID, err := store.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	require.NoError(t, store.UpdatePaymentStatus(doneID, models.StatusCompleted))

	cli.Run()

	text := out.String()
	assert.Contains(t, text, "Status: PENDING")
	assert.Contains(t, text, "Total: 1 pesanan")
	assert.Contains(t, text, "#"+itoa(pendingID))
	assert.NotContains(t, text, "#"+itoa(doneID))
}

func TestUpdateOrderStatus(t *testing.T) {
	store, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.UpsertUser(&models.User{ID: 1, FirstName: "Budi"}))
	p := &models.Product{Name: "Spotify", Price: 25000, Category: "Music"}
	require.NoError(t, store.AddProduct(p))
	orderID, err := store.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)

	script := "6\n" + itoa(orderID) + "\ncompleted\n0\n"
	var out bytes.Buffer
	New(store, strings.NewReader(script), &out).Run()

	assert.Contains(t, out.String(), "berhasil diubah menjadi completed")

	orders, err := store.AllOrders("")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusCompleted, orders[0].PaymentStatus)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	store, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.UpsertUser(&models.User{ID: 1, FirstName: "Budi"}))
	p := &models.Product{Name: "Spotify", Price: 25000, Category: "Music"}
	require.NoError(t, store.AddProduct(p))
	orderID, err := store.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)

	script := "6\n" + itoa(orderID) + "\nshipped\n0\n"
	var out bytes.Buffer
	New(store, strings.NewReader(script), &out).Run()

	assert.Contains(t, out.String(), "❌ Status tidak valid!")
	// the loop survives the bad value
	assert.Contains(t, out.String(), "Terima kasih")

	orders, err := store.AllOrders("")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, orders[0].PaymentStatus)
}

func TestStatistics(t *testing.T) {
	cli, store, out := newTestCLI(t, "7\n0\n")
	require.NoError(t, store.UpsertUser(&models.User{ID: 1, FirstName: "Budi"}))
	p := &models.Product{Name: "Spotify", Price: 25000, Category: "Music"}
	require.NoError(t, store.AddProduct(p))
	orderID, err := store.CreateOrder(1, p.ID, 1, 25000, "dana")
	require.NoError(t, err)
	require.NoError(t, store.UpdatePaymentStatus(orderID, models.StatusCompleted))

	cli.Run()

	text := out.String()
	assert.Contains(t, text, "📊 STATISTIK BOT")
	assert.Contains(t, text, "Total Pengguna      : 1")
	assert.Contains(t, text, "Total Pendapatan    : Rp 25,000")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
