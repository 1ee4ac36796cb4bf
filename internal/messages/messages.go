// Package messages renders every user-facing text of the bot and the admin
// CLI reports. All storefront copy is Indonesian, matching the audience.
package messages

import (
	"fmt"
	"strings"

	"premium-store-bot/internal/payment"
	"premium-store-bot/models"
)

const Welcome = `🎉 Selamat datang di Bot Penjualan Aplikasi Premium! 🎉

Kami menyediakan berbagai aplikasi premium berkualitas tinggi dengan harga terjangkau.

📱 Fitur Bot:
• Katalog aplikasi premium lengkap
• Sistem pembayaran mudah
• Support 24/7
• Garansi aplikasi

Ketik /help untuk melihat semua perintah yang tersedia.`

const Help = `📋 DAFTAR PERINTAH:

🏠 /start - Mulai menggunakan bot
📱 /catalog - Lihat katalog aplikasi
🛒 /cart - Lihat keranjang belanja
💰 /history - Riwayat pembelian
📞 /contact - Hubungi admin
ℹ️ /help - Bantuan

👨‍💼 ADMIN ONLY:
/admin - Panel admin
/addproduct - Tambah produk baru
/removeproduct - Hapus produk
/users - Lihat daftar pengguna`

const Contact = `📞 HUBUNGI KAMI:

👨‍💼 Admin: @admin_username
📧 Email: admin@premiumapps.com
⏰ Jam Operasional: 08:00 - 22:00 WIB

Untuk pertanyaan lebih lanjut, silakan hubungi admin di atas.`

const (
	UseMenu          = "ℹ️ Gunakan menu atau ketik /help untuk melihat perintah yang tersedia."
	NoAdminAccess    = "❌ Anda tidak memiliki akses admin!"
	CartEmptyNotice  = "❌ Keranjang kosong!"
	ProductNotFound  = "❌ Produk tidak ditemukan!"
	AddedToCart      = "✅ Produk ditambahkan ke keranjang!"
	CartCleared      = "🗑️ Keranjang dikosongkan!"
	UnknownAction    = "❌ Aksi tidak dikenal."
	GenericError     = "❌ Terjadi kesalahan. Silakan coba lagi."
	CatalogEmpty     = "🚫 Tidak ada produk yang tersedia saat ini."
	AddProductUsage  = "📝 **TAMBAH PRODUK BARU**\n\n" +
		"Format: /addproduct <nama> | <deskripsi> | <harga> | <kategori>\n\n" +
		"Contoh:\n" +
		"/addproduct Discord Nitro | Premium Discord features | 50000 | Gaming"
	RemoveProductUsage = "📝 Format: /removeproduct <id produk>"
)

// FormatRupiah renders an amount in the smallest currency unit with comma
// thousand separators, e.g. 25000 -> "Rp 25,000".
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

// StatusGlyph maps a payment status to its display glyph.
func StatusGlyph(status string) string {
	switch status {
	case models.StatusCompleted:
		return "✅"
	case models.StatusPending:
		return "⏳"
	default:
		return "❌"
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Catalog renders the product list, with an optional category heading.
func Catalog(products []models.Product, category string) string {
	var b strings.Builder
	b.WriteString("📱 **KATALOG APLIKASI PREMIUM**\n")
	if category != "" {
		fmt.Fprintf(&b, "Kategori: %s\n", category)
	} else {
		b.WriteString("\n🏷️ **Filter berdasarkan kategori:**\n")
	}
	b.WriteString("\n")
	for _, p := range products {
		fmt.Fprintf(&b, "🔸 **%s**\n", p.Name)
		fmt.Fprintf(&b, "💰 %s\n", FormatRupiah(p.Price))
		fmt.Fprintf(&b, "📝 %s\n\n", truncate(p.Description, 50))
	}
	return b.String()
}

// ProductDetail renders the full product view.
func ProductDetail(p *models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📱 **%s**\n\n", p.Name)
	fmt.Fprintf(&b, "📝 **Deskripsi:**\n%s\n\n", p.Description)
	fmt.Fprintf(&b, "💰 **Harga:** %s\n", FormatRupiah(p.Price))
	fmt.Fprintf(&b, "🏷️ **Kategori:** %s\n\n", p.Category)
	b.WriteString("✅ **Status:** Tersedia\n")
	return b.String()
}

// CartTotal sums the line subtotals.
func CartTotal(lines []models.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// Cart renders the cart view: itemized lines with subtotals and the grand
// total, or the empty-cart state.
func Cart(lines []models.CartLine) string {
	var b strings.Builder
	b.WriteString("🛒 **KERANJANG BELANJA**\n\n")
	if len(lines) == 0 {
		b.WriteString("Keranjang Anda kosong.\n")
		b.WriteString("Silakan pilih produk dari katalog terlebih dahulu.")
		return b.String()
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "🔸 **%s**\n", l.Name)
		fmt.Fprintf(&b, "   Jumlah: %d x %s = %s\n\n", l.Quantity, FormatRupiah(l.Price), FormatRupiah(l.Subtotal()))
	}
	fmt.Fprintf(&b, "💰 **Total: %s**\n", FormatRupiah(CartTotal(lines)))
	return b.String()
}

// History renders the purchase history, or its empty state.
func History(orders []models.OrderHistory) string {
	var b strings.Builder
	b.WriteString("📋 **RIWAYAT PEMBELIAN**\n\n")
	if len(orders) == 0 {
		b.WriteString("Anda belum memiliki riwayat pembelian.")
		return b.String()
	}
	for _, o := range orders {
		fmt.Fprintf(&b, "🔸 **%s**\n", o.ProductName)
		fmt.Fprintf(&b, "   Order ID: #%d\n", o.OrderID)
		fmt.Fprintf(&b, "   Jumlah: %d\n", o.Quantity)
		fmt.Fprintf(&b, "   Total: %s\n", FormatRupiah(o.TotalPrice))
		fmt.Fprintf(&b, "   Pembayaran: %s\n", o.PaymentMethod)
		fmt.Fprintf(&b, "   Status: %s %s\n", StatusGlyph(o.PaymentStatus), title(o.PaymentStatus))
		fmt.Fprintf(&b, "   Tanggal: %s\n\n", o.OrderDate.Format("02/01/2006 15:04"))
	}
	return b.String()
}

// CheckoutSummary renders the payment-method chooser heading.
func CheckoutSummary(total int64) string {
	var b strings.Builder
	b.WriteString("💳 **CHECKOUT**\n\n")
	fmt.Fprintf(&b, "💰 Total Pembayaran: **%s**\n\n", FormatRupiah(total))
	b.WriteString("Pilih metode pembayaran:\n")
	return b.String()
}

// PaymentInstructions renders the manual-transfer instructions after the
// cart has been converted into orders.
func PaymentInstructions(method payment.Method, total int64, orderIDs []uint) string {
	var b strings.Builder
	b.WriteString("💳 **PEMBAYARAN**\n\n")
	fmt.Fprintf(&b, "💰 Total: **%s**\n", FormatRupiah(total))
	fmt.Fprintf(&b, "🏦 Metode: %s\n\n", method.Display)
	b.WriteString("📋 **Instruksi Pembayaran:**\n")
	fmt.Fprintf(&b, "1. Transfer ke: %s\n", method.Display)
	fmt.Fprintf(&b, "2. Nominal: %s\n", FormatRupiah(total))
	b.WriteString("3. Kirim bukti transfer ke admin\n")
	b.WriteString("4. Tunggu konfirmasi dari admin\n\n")
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = fmt.Sprintf("#%d", id)
	}
	fmt.Fprintf(&b, "🆔 Order ID: %s\n\n", strings.Join(ids, ", "))
	b.WriteString("⚠️ **Penting:** Simpan Order ID untuk referensi Anda!")
	return b.String()
}

// AdminPanel renders the /admin menu heading.
const AdminPanel = "👨‍💼 **PANEL ADMIN**\n\nPilih menu admin:"

// AdminStats renders the aggregate statistics for the admin panel.
func AdminStats(stats models.Stats) string {
	var b strings.Builder
	b.WriteString("📊 **STATISTIK BOT**\n\n")
	fmt.Fprintf(&b, "👥 Total Pengguna: %d\n", stats.TotalUsers)
	fmt.Fprintf(&b, "📱 Total Produk Aktif: %d\n", stats.ActiveProducts)
	fmt.Fprintf(&b, "📦 Total Pesanan: %d\n", stats.TotalOrders)
	fmt.Fprintf(&b, "💰 Total Pendapatan: %s\n", FormatRupiah(stats.TotalRevenue))
	fmt.Fprintf(&b, "⏳ Pesanan Pending: %d\n", stats.PendingOrders)
	fmt.Fprintf(&b, "📅 Pesanan Hari Ini: %d\n", stats.TodayOrders)
	return b.String()
}

// AdminUsers renders the user list for the admin panel and /users.
func AdminUsers(users []models.UserReport) string {
	var b strings.Builder
	b.WriteString("👥 **DAFTAR PENGGUNA**\n\n")
	if len(users) == 0 {
		b.WriteString("Belum ada pengguna terdaftar.")
		return b.String()
	}
	for _, u := range users {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		username := "N/A"
		if u.Username != "" {
			username = "@" + u.Username
		}
		fmt.Fprintf(&b, "🔸 %s (%s)\n", name, username)
		fmt.Fprintf(&b, "   ID: %d\n", u.UserID)
		fmt.Fprintf(&b, "   Order: %d | Belanja: %s\n\n", u.TotalOrders, FormatRupiah(u.TotalSpent))
	}
	fmt.Fprintf(&b, "Total: %d pengguna", len(users))
	return b.String()
}

// AdminOrders renders the order list for the admin panel.
func AdminOrders(orders []models.OrderReport) string {
	var b strings.Builder
	b.WriteString("💰 **DAFTAR PESANAN**\n\n")
	if len(orders) == 0 {
		b.WriteString("Belum ada pesanan.")
		return b.String()
	}
	for _, o := range orders {
		name := strings.TrimSpace(o.FirstName + " " + o.LastName)
		fmt.Fprintf(&b, "%s **#%d** %s\n", StatusGlyph(o.PaymentStatus), o.OrderID, o.ProductName)
		fmt.Fprintf(&b, "   %s (ID %d) | %dx | %s | %s\n\n", name, o.UserID, o.Quantity, FormatRupiah(o.TotalPrice), o.PaymentMethod)
	}
	fmt.Fprintf(&b, "Total: %d pesanan", len(orders))
	return b.String()
}

// AdminProducts renders the product list, including inactive entries, for
// the admin panel.
func AdminProducts(products []models.Product) string {
	var b strings.Builder
	b.WriteString("📦 **DAFTAR PRODUK**\n\n")
	if len(products) == 0 {
		b.WriteString("Belum ada produk.")
		return b.String()
	}
	for _, p := range products {
		status := "Aktif"
		if !p.IsActive {
			status = "Nonaktif"
		}
		fmt.Fprintf(&b, "🔸 **%s** (ID %d)\n", p.Name, p.ID)
		fmt.Fprintf(&b, "   %s | %s | %s\n\n", FormatRupiah(p.Price), p.Category, status)
	}
	fmt.Fprintf(&b, "Total: %d produk", len(products))
	return b.String()
}
