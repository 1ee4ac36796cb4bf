// Package commands names the bot's slash commands and defines the closed set
// of callback actions carried in inline-keyboard button payloads.
package commands

import (
	"strconv"
	"strings"
)

// Slash commands understood by the bot (without the leading slash).
const (
	CmdStart         = "start"
	CmdHelp          = "help"
	CmdCatalog       = "catalog"
	CmdCart          = "cart"
	CmdHistory       = "history"
	CmdContact       = "contact"
	CmdAdmin         = "admin"
	CmdAddProduct    = "addproduct"
	CmdRemoveProduct = "removeproduct"
	CmdUsers         = "users"
)

// ActionKind enumerates every callback action the bot can dispatch. Parsing
// never fails silently: anything unrecognized maps to ActionUnknown and is
// handled by an explicit branch.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionStart
	ActionHelp
	ActionCatalog
	ActionCategory
	ActionProduct
	ActionAddCart
	ActionBuy
	ActionBuyNow
	ActionCart
	ActionClearCart
	ActionCheckout
	ActionPay
	ActionHistory
	ActionContact
	ActionAdminStats
	ActionAdminUsers
	ActionAdminOrders
	ActionAdminProducts
)

// Action is one decoded callback payload. Exactly one of the payload fields
// is meaningful for a given kind.
type Action struct {
	Kind      ActionKind
	Category  string // ActionCategory
	ProductID uint   // ActionProduct, ActionAddCart, ActionBuy, ActionBuyNow
	Method    string // ActionPay
}

// AdminOnly reports whether the action is gated by the admin allow-list.
func (a Action) AdminOnly() bool {
	switch a.Kind {
	case ActionAdminStats, ActionAdminUsers, ActionAdminOrders, ActionAdminProducts:
		return true
	}
	return false
}

var exact = map[string]ActionKind{
	"start":          ActionStart,
	"help":           ActionHelp,
	"catalog":        ActionCatalog,
	"cart":           ActionCart,
	"clearcart":      ActionClearCart,
	"checkout":       ActionCheckout,
	"history":        ActionHistory,
	"contact":        ActionContact,
	"admin_stats":    ActionAdminStats,
	"admin_users":    ActionAdminUsers,
	"admin_orders":   ActionAdminOrders,
	"admin_products": ActionAdminProducts,
}

// ParseCallback decodes a callback data string into an Action.
func ParseCallback(data string) Action {
	if kind, ok := exact[data]; ok {
		return Action{Kind: kind}
	}

	if category, ok := strings.CutPrefix(data, "category_"); ok && category != "" {
		return Action{Kind: ActionCategory, Category: category}
	}
	if method, ok := strings.CutPrefix(data, "pay_"); ok && method != "" {
		return Action{Kind: ActionPay, Method: method}
	}

	// buynow_ must be tried before buy_, which is also its prefix.
	idPrefixes := []struct {
		prefix string
		kind   ActionKind
	}{
		{"product_", ActionProduct},
		{"addcart_", ActionAddCart},
		{"buynow_", ActionBuyNow},
		{"buy_", ActionBuy},
	}
	for _, p := range idPrefixes {
		if rest, ok := strings.CutPrefix(data, p.prefix); ok {
			id, err := strconv.ParseUint(rest, 10, 32)
			if err != nil {
				return Action{Kind: ActionUnknown}
			}
			return Action{Kind: p.kind, ProductID: uint(id)}
		}
	}

	return Action{Kind: ActionUnknown}
}

// Encode renders the Action back into its callback data string. Unknown
// actions encode to the empty string and must not be put on buttons.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionStart:
		return "start"
	case ActionHelp:
		return "help"
	case ActionCatalog:
		return "catalog"
	case ActionCategory:
		return "category_" + a.Category
	case ActionProduct:
		return "product_" + strconv.FormatUint(uint64(a.ProductID), 10)
	case ActionAddCart:
		return "addcart_" + strconv.FormatUint(uint64(a.ProductID), 10)
	case ActionBuy:
		return "buy_" + strconv.FormatUint(uint64(a.ProductID), 10)
	case ActionBuyNow:
		return "buynow_" + strconv.FormatUint(uint64(a.ProductID), 10)
	case ActionCart:
		return "cart"
	case ActionClearCart:
		return "clearcart"
	case ActionCheckout:
		return "checkout"
	case ActionPay:
		return "pay_" + a.Method
	case ActionHistory:
		return "history"
	case ActionContact:
		return "contact"
	case ActionAdminStats:
		return "admin_stats"
	case ActionAdminUsers:
		return "admin_users"
	case ActionAdminOrders:
		return "admin_orders"
	case ActionAdminProducts:
		return "admin_products"
	}
	return ""
}
