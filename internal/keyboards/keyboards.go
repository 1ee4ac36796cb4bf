// Package keyboards builds the inline keyboards for every bot view. The
// builders only produce markup; sending is the caller's concern.
package keyboards

import (
	"premium-store-bot/internal/commands"
	"premium-store-bot/internal/payment"
	"premium-store-bot/internal/telegram"
	"premium-store-bot/models"
)

func action(kind commands.ActionKind) string {
	return commands.Action{Kind: kind}.Encode()
}

// MainMenu is the home menu shown after /start.
func MainMenu() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("📱 Lihat Katalog", action(commands.ActionCatalog))),
		telegram.Row(
			telegram.Button("🛒 Keranjang", action(commands.ActionCart)),
			telegram.Button("📞 Kontak", action(commands.ActionContact)),
		),
		telegram.Row(telegram.Button("ℹ️ Bantuan", action(commands.ActionHelp))),
	}}
}

// BackHome is a single back-to-menu row.
func BackHome() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("🏠 Menu Utama", action(commands.ActionStart))),
	}}
}

// Catalog builds the catalog keyboard: category filters (full view only,
// two per row), one detail/buy row per product, and navigation.
func Catalog(categories []string, products []models.Product, category string) *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton

	if category == "" {
		var catRow []telegram.InlineKeyboardButton
		for _, cat := range categories {
			data := commands.Action{Kind: commands.ActionCategory, Category: cat}.Encode()
			catRow = append(catRow, telegram.Button("📂 "+cat, data))
			if len(catRow) == 2 {
				rows = append(rows, catRow)
				catRow = nil
			}
		}
		if len(catRow) > 0 {
			rows = append(rows, catRow)
		}
		rows = append(rows, telegram.Row(telegram.Button("📋 Semua Produk", action(commands.ActionCatalog))))
	}

	for _, p := range products {
		rows = append(rows, telegram.Row(
			telegram.Button("👁️ Detail", commands.Action{Kind: commands.ActionProduct, ProductID: p.ID}.Encode()),
			telegram.Button("🛒 Beli", commands.Action{Kind: commands.ActionBuy, ProductID: p.ID}.Encode()),
		))
	}

	var nav []telegram.InlineKeyboardButton
	if category != "" {
		nav = append(nav, telegram.Button("🔙 Semua Kategori", action(commands.ActionCatalog)))
	}
	nav = append(nav, telegram.Button("🏠 Menu Utama", action(commands.ActionStart)))
	rows = append(rows, nav)

	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// ProductDetail offers add-to-cart, buy-now and back for one product.
func ProductDetail(productID uint) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("🛒 Tambah ke Keranjang", commands.Action{Kind: commands.ActionAddCart, ProductID: productID}.Encode())),
		telegram.Row(telegram.Button("💳 Beli Sekarang", commands.Action{Kind: commands.ActionBuyNow, ProductID: productID}.Encode())),
		telegram.Row(telegram.Button("🔙 Kembali ke Katalog", action(commands.ActionCatalog))),
	}}
}

// Cart offers checkout/clear/continue/home, or catalog/home for an empty
// cart.
func Cart(empty bool) *telegram.InlineKeyboardMarkup {
	if empty {
		return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
			telegram.Row(telegram.Button("📱 Lihat Katalog", action(commands.ActionCatalog))),
			telegram.Row(telegram.Button("🏠 Menu Utama", action(commands.ActionStart))),
		}}
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("💳 Checkout", action(commands.ActionCheckout))),
		telegram.Row(telegram.Button("🗑️ Kosongkan Keranjang", action(commands.ActionClearCart))),
		telegram.Row(telegram.Button("📱 Lanjut Belanja", action(commands.ActionCatalog))),
		telegram.Row(telegram.Button("🏠 Menu Utama", action(commands.ActionStart))),
	}}
}

// Checkout lists one button per payment method plus back-to-cart.
func Checkout(methods []payment.Method) *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	for _, m := range methods {
		data := commands.Action{Kind: commands.ActionPay, Method: m.Code}.Encode()
		rows = append(rows, telegram.Row(telegram.Button("💳 "+m.Name(), data)))
	}
	rows = append(rows, telegram.Row(telegram.Button("🔙 Kembali ke Keranjang", action(commands.ActionCart))))
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// PaymentDone is shown under the transfer instructions.
func PaymentDone() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("📞 Hubungi Admin", action(commands.ActionContact))),
		telegram.Row(telegram.Button("📋 Riwayat Pembelian", action(commands.ActionHistory))),
		telegram.Row(telegram.Button("🏠 Menu Utama", action(commands.ActionStart))),
	}}
}

// History is shown under the purchase history view.
func History(empty bool) *telegram.InlineKeyboardMarkup {
	label := "📱 Belanja Lagi"
	if empty {
		label = "📱 Mulai Belanja"
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button(label, action(commands.ActionCatalog))),
		telegram.Row(telegram.Button("🏠 Menu Utama", action(commands.ActionStart))),
	}}
}

// AdminPanel is the /admin menu.
func AdminPanel() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{
		telegram.Row(telegram.Button("📊 Statistik", action(commands.ActionAdminStats))),
		telegram.Row(telegram.Button("👥 Daftar User", action(commands.ActionAdminUsers))),
		telegram.Row(telegram.Button("📦 Kelola Produk", action(commands.ActionAdminProducts))),
		telegram.Row(telegram.Button("💰 Kelola Pesanan", action(commands.ActionAdminOrders))),
	}}
}
