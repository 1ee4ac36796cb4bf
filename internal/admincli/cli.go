// Package admincli is the interactive terminal menu for store
// administration. Each menu choice maps 1:1 to a store operation rendered
// as a fixed-width table or a labeled summary.
package admincli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"premium-store-bot/internal/database"
	"premium-store-bot/internal/messages"
	"premium-store-bot/models"
)

// CLI is the menu loop. Reader and writer are injected so the loop is
// testable with scripted input.
type CLI struct {
	store *database.Store
	in    *bufio.Reader
	out   io.Writer
}

// New creates the CLI.
func New(store *database.Store, in io.Reader, out io.Writer) *CLI {
	return &CLI{store: store, in: bufio.NewReader(in), out: out}
}

// Run displays the menu until the operator picks exit or input ends. Action
// errors are printed and the loop continues.
func (c *CLI) Run() {
	for {
		c.printMenu()
		choice, ok := c.readLine("Pilih menu (0-7): ")
		if !ok {
			fmt.Fprintln(c.out, "\n👋 Terima kasih!")
			return
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = c.addProduct()
		case "2":
			err = c.listProducts()
		case "3":
			err = c.listUsers()
		case "4":
			err = c.listOrders("")
		case "5":
			err = c.listOrders(models.StatusPending)
		case "6":
			err = c.updateOrderStatus()
		case "7":
			err = c.showStatistics()
		case "0":
			fmt.Fprintln(c.out, "👋 Terima kasih!")
			return
		default:
			fmt.Fprintln(c.out, "❌ Pilihan tidak valid!")
		}
		if err != nil {
			fmt.Fprintf(c.out, "❌ Error: %v\n", err)
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "🔧 ADMIN TOOLS - BOT TELEGRAM PREMIUM APPS")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "1. Tambah Produk")
	fmt.Fprintln(c.out, "2. Lihat Daftar Produk")
	fmt.Fprintln(c.out, "3. Lihat Daftar Pengguna")
	fmt.Fprintln(c.out, "4. Lihat Semua Pesanan")
	fmt.Fprintln(c.out, "5. Lihat Pesanan Pending")
	fmt.Fprintln(c.out, "6. Update Status Pembayaran")
	fmt.Fprintln(c.out, "7. Statistik Bot")
	fmt.Fprintln(c.out, "0. Keluar")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
}

// readLine prompts and reads one line. ok is false on end of input.
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readInt prompts until it gets a number, re-prompting once per bad line.
func (c *CLI) readInt(prompt string) (int64, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "❌ Harus berupa angka!")
			continue
		}
		return n, true
	}
}

func (c *CLI) addProduct() error {
	fmt.Fprintln(c.out, "📦 TAMBAH PRODUK BARU")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))

	name, ok := c.readLine("Nama Produk: ")
	if !ok {
		return nil
	}
	description, ok := c.readLine("Deskripsi: ")
	if !ok {
		return nil
	}
	price, ok := c.readInt("Harga (Rp): ")
	if !ok {
		return nil
	}
	category, ok := c.readLine("Kategori: ")
	if !ok {
		return nil
	}
	imageURL, ok := c.readLine("URL Gambar (opsional): ")
	if !ok {
		return nil
	}
	downloadLink, ok := c.readLine("Link Download (opsional): ")
	if !ok {
		return nil
	}

	product := &models.Product{
		Name:         name,
		Description:  description,
		Price:        price,
		Category:     category,
		ImageURL:     imageURL,
		DownloadLink: downloadLink,
	}
	if err := c.store.AddProduct(product); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✅ Produk berhasil ditambahkan dengan ID: %d\n", product.ID)
	return nil
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func (c *CLI) listProducts() error {
	products, err := c.store.AllProducts()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "📱 DAFTAR PRODUK")
	fmt.Fprintln(c.out, strings.Repeat("=", 80))
	fmt.Fprintf(c.out, "%-5s %-25s %-15s %-15s %-10s\n", "ID", "Nama", "Harga", "Kategori", "Status")
	fmt.Fprintln(c.out, strings.Repeat("-", 80))
	for _, p := range products {
		status := "Aktif"
		if !p.IsActive {
			status = "Nonaktif"
		}
		fmt.Fprintf(c.out, "%-5d %-25s %-15s %-15s %-10s\n",
			p.ID, clip(p.Name, 25), messages.FormatRupiah(p.Price), clip(p.Category, 15), status)
	}
	fmt.Fprintf(c.out, "\nTotal: %d produk\n", len(products))
	return nil
}

func (c *CLI) listUsers() error {
	users, err := c.store.ListUsers()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "👥 DAFTAR PENGGUNA")
	fmt.Fprintln(c.out, strings.Repeat("=", 100))
	fmt.Fprintf(c.out, "%-12s %-20s %-25s %-12s %-15s\n", "User ID", "Username", "Nama", "Total Order", "Total Belanja")
	fmt.Fprintln(c.out, strings.Repeat("-", 100))
	for _, u := range users {
		username := "N/A"
		if u.Username != "" {
			username = "@" + u.Username
		}
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		fmt.Fprintf(c.out, "%-12d %-20s %-25s %-12d %-15s\n",
			u.UserID, clip(username, 20), clip(name, 25), u.TotalOrders, messages.FormatRupiah(u.TotalSpent))
	}
	fmt.Fprintf(c.out, "\nTotal: %d pengguna\n", len(users))
	return nil
}

func (c *CLI) listOrders(status string) error {
	orders, err := c.store.AllOrders(status)
	if err != nil {
		return err
	}

	heading := "💰 DAFTAR PESANAN"
	if status != "" {
		heading += " - Status: " + strings.ToUpper(status)
	}
	fmt.Fprintln(c.out, heading)
	fmt.Fprintln(c.out, strings.Repeat("=", 120))
	fmt.Fprintf(c.out, "%-10s %-12s %-20s %-25s %-5s %-15s %-10s\n",
		"Order ID", "User ID", "Nama User", "Produk", "Qty", "Total", "Status")
	fmt.Fprintln(c.out, strings.Repeat("-", 120))
	for _, o := range orders {
		name := strings.TrimSpace(o.FirstName + " " + o.LastName)
		fmt.Fprintf(c.out, "#%-9d %-12d %-20s %-25s %-5d %-15s %-10s\n",
			o.OrderID, o.UserID, clip(name, 20), clip(o.ProductName, 25), o.Quantity,
			messages.FormatRupiah(o.TotalPrice), o.PaymentStatus)
	}
	fmt.Fprintf(c.out, "\nTotal: %d pesanan\n", len(orders))
	return nil
}

func (c *CLI) updateOrderStatus() error {
	fmt.Fprintln(c.out, "💳 UPDATE STATUS PEMBAYARAN")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))

	if err := c.listOrders(models.StatusPending); err != nil {
		return err
	}
	fmt.Fprintln(c.out)

	orderID, ok := c.readInt("Masukkan Order ID: ")
	if !ok {
		return nil
	}
	fmt.Fprintln(c.out, "Status yang tersedia: pending, completed, cancelled")
	status, ok := c.readLine("Status baru: ")
	if !ok {
		return nil
	}
	status = strings.ToLower(status)

	err := c.store.UpdatePaymentStatus(uint(orderID), status)
	if errors.Is(err, database.ErrInvalidStatus) {
		fmt.Fprintln(c.out, "❌ Status tidak valid!")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "✅ Status order #%d berhasil diubah menjadi %s\n", orderID, status)
	return nil
}

func (c *CLI) showStatistics() error {
	stats, err := c.store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "📊 STATISTIK BOT")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintf(c.out, "👥 Total Pengguna      : %d\n", stats.TotalUsers)
	fmt.Fprintf(c.out, "📱 Total Produk Aktif  : %d\n", stats.ActiveProducts)
	fmt.Fprintf(c.out, "📦 Total Pesanan       : %d\n", stats.TotalOrders)
	fmt.Fprintf(c.out, "💰 Total Pendapatan    : %s\n", messages.FormatRupiah(stats.TotalRevenue))
	fmt.Fprintf(c.out, "⏳ Pesanan Pending     : %d\n", stats.PendingOrders)
	fmt.Fprintf(c.out, "📅 Pesanan Hari Ini    : %d\n", stats.TodayOrders)
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	return nil
}
