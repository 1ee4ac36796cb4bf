// Package handlers dispatches inbound Telegram updates. Every update is
// handled independently; all durable state lives in the store.
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"premium-store-bot/internal/commands"
	"premium-store-bot/internal/config"
	"premium-store-bot/internal/database"
	"premium-store-bot/internal/keyboards"
	"premium-store-bot/internal/messages"
	"premium-store-bot/internal/payment"
	"premium-store-bot/internal/telegram"
	"premium-store-bot/models"
)

// Bot wires the store, the Bot API client and the configuration into one
// update dispatcher.
type Bot struct {
	store *database.Store
	tg    *telegram.Client
	cfg   *config.Config
	log   *zap.Logger
}

// New creates the dispatcher.
func New(store *database.Store, tg *telegram.Client, cfg *config.Config, log *zap.Logger) *Bot {
	return &Bot{store: store, tg: tg, cfg: cfg, log: log}
}

// HandleUpdate processes one inbound update. Panics and errors are contained
// here: a bad update is logged and dropped, never fatal.
func (b *Bot) HandleUpdate(update telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("update handler panic", zap.Any("panic", r), zap.Int64("update_id", update.UpdateID))
		}
	}()

	var err error
	switch {
	case update.CallbackQuery != nil:
		err = b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		err = b.handleMessage(update.Message)
	case update.EditedMessage != nil:
		err = b.handleMessage(update.EditedMessage)
	}
	if err != nil {
		b.log.Error("update handling failed", zap.Int64("update_id", update.UpdateID), zap.Error(err))
		if chatID, ok := updateChatID(update); ok {
			if sendErr := b.tg.SendMessage(chatID, messages.GenericError, nil); sendErr != nil {
				b.log.Error("failed to notify user of error", zap.Int64("chat_id", chatID), zap.Error(sendErr))
			}
		}
	}
}

// updateChatID extracts the chat an error notice can be sent to, if any.
func updateChatID(update telegram.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.EditedMessage != nil:
		return update.EditedMessage.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}

// handleMessage routes slash commands; any other text gets the static
// use-the-menu reply.
func (b *Bot) handleMessage(msg *telegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return b.tg.SendMessage(msg.Chat.ID, messages.UseMenu, nil)
	}

	cmd, args, _ := strings.Cut(text[1:], " ")
	// Commands in groups arrive suffixed with the bot username.
	cmd, _, _ = strings.Cut(cmd, "@")
	args = strings.TrimSpace(args)

	switch cmd {
	case commands.CmdStart:
		return b.cmdStart(msg)
	case commands.CmdHelp:
		return b.tg.SendMessage(msg.Chat.ID, messages.Help, nil)
	case commands.CmdCatalog:
		return b.showCatalog(msg.Chat.ID, 0, "")
	case commands.CmdCart:
		return b.showCart(msg.Chat.ID, 0, senderID(msg))
	case commands.CmdHistory:
		return b.showHistory(msg.Chat.ID, 0, senderID(msg))
	case commands.CmdContact:
		return b.tg.SendMessage(msg.Chat.ID, messages.Contact, keyboards.BackHome())
	case commands.CmdAdmin:
		return b.cmdAdmin(msg)
	case commands.CmdAddProduct:
		return b.cmdAddProduct(msg, args)
	case commands.CmdRemoveProduct:
		return b.cmdRemoveProduct(msg, args)
	case commands.CmdUsers:
		return b.cmdUsers(msg)
	default:
		return b.tg.SendMessage(msg.Chat.ID, messages.UseMenu, nil)
	}
}

func (b *Bot) cmdStart(msg *telegram.Message) error {
	if msg.From != nil {
		user := &models.User{
			ID:        msg.From.ID,
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
		if err := b.store.UpsertUser(user); err != nil {
			return err
		}
	}
	return b.tg.SendMessage(msg.Chat.ID, messages.Welcome, keyboards.MainMenu())
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg.IsAdmin(userID)
}

func senderID(msg *telegram.Message) int64 {
	if msg.From != nil {
		return msg.From.ID
	}
	return msg.Chat.ID
}

func (b *Bot) cmdAdmin(msg *telegram.Message) error {
	if !b.isAdmin(senderID(msg)) {
		return b.tg.SendMessage(msg.Chat.ID, messages.NoAdminAccess, nil)
	}
	return b.tg.SendMessage(msg.Chat.ID, messages.AdminPanel, keyboards.AdminPanel())
}

// cmdAddProduct parses "/addproduct name | description | price | category".
func (b *Bot) cmdAddProduct(msg *telegram.Message, args string) error {
	if !b.isAdmin(senderID(msg)) {
		return b.tg.SendMessage(msg.Chat.ID, messages.NoAdminAccess, nil)
	}
	if args == "" {
		return b.tg.SendMessage(msg.Chat.ID, messages.AddProductUsage, nil)
	}

	parts := strings.Split(args, "|")
	if len(parts) != 4 {
		return b.tg.SendMessage(msg.Chat.ID, messages.AddProductUsage, nil)
	}
	price, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil || price < 0 {
		return b.tg.SendMessage(msg.Chat.ID, "❌ Harga harus berupa angka positif!", nil)
	}

	product := &models.Product{
		Name:        strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		Price:       price,
		Category:    strings.TrimSpace(parts[3]),
	}
	if err := b.store.AddProduct(product); err != nil {
		return err
	}
	return b.tg.SendMessage(msg.Chat.ID, "✅ Produk berhasil ditambahkan dengan ID: "+strconv.FormatUint(uint64(product.ID), 10), nil)
}

// cmdRemoveProduct soft-disables a product; order history stays intact.
func (b *Bot) cmdRemoveProduct(msg *telegram.Message, args string) error {
	if !b.isAdmin(senderID(msg)) {
		return b.tg.SendMessage(msg.Chat.ID, messages.NoAdminAccess, nil)
	}
	id, err := strconv.ParseUint(args, 10, 32)
	if err != nil {
		return b.tg.SendMessage(msg.Chat.ID, messages.RemoveProductUsage, nil)
	}
	if err := b.store.SetProductActive(uint(id), false); err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			return b.tg.SendMessage(msg.Chat.ID, messages.ProductNotFound, nil)
		}
		return err
	}
	return b.tg.SendMessage(msg.Chat.ID, "✅ Produk #"+args+" dinonaktifkan.", nil)
}

func (b *Bot) cmdUsers(msg *telegram.Message) error {
	if !b.isAdmin(senderID(msg)) {
		return b.tg.SendMessage(msg.Chat.ID, messages.NoAdminAccess, nil)
	}
	users, err := b.store.ListUsers()
	if err != nil {
		return err
	}
	return b.tg.SendMessage(msg.Chat.ID, messages.AdminUsers(users), nil)
}

// render sends a new message (messageID 0) or edits the originating one.
func (b *Bot) render(chatID, messageID int64, text string, markup *telegram.InlineKeyboardMarkup) error {
	if messageID != 0 {
		return b.tg.EditMessageText(chatID, messageID, text, markup)
	}
	return b.tg.SendMessage(chatID, text, markup)
}

func (b *Bot) showCatalog(chatID, messageID int64, category string) error {
	products, err := b.store.ActiveProducts(category)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return b.render(chatID, messageID, messages.CatalogEmpty, keyboards.BackHome())
	}
	categories, err := b.store.Categories()
	if err != nil {
		return err
	}
	return b.render(chatID, messageID, messages.Catalog(products, category), keyboards.Catalog(categories, products, category))
}

func (b *Bot) showCart(chatID, messageID, userID int64) error {
	lines, err := b.store.Cart(userID)
	if err != nil {
		return err
	}
	return b.render(chatID, messageID, messages.Cart(lines), keyboards.Cart(len(lines) == 0))
}

func (b *Bot) showHistory(chatID, messageID, userID int64) error {
	orders, err := b.store.OrdersByUser(userID)
	if err != nil {
		return err
	}
	return b.render(chatID, messageID, messages.History(orders), keyboards.History(len(orders) == 0))
}

// handleCallback resolves a button press to exactly one action of the
// closed enumeration. The unknown branch is explicit.
func (b *Bot) handleCallback(q *telegram.CallbackQuery) error {
	if q.Message == nil {
		return b.tg.AnswerCallbackQuery(q.ID, "")
	}

	chatID := q.Message.Chat.ID
	messageID := q.Message.MessageID
	userID := q.From.ID

	act := commands.ParseCallback(q.Data)

	if act.AdminOnly() && !b.isAdmin(userID) {
		return b.tg.AnswerCallbackQuery(q.ID, messages.NoAdminAccess)
	}

	switch act.Kind {
	case commands.ActionStart:
		user := &models.User{
			ID:        q.From.ID,
			Username:  q.From.Username,
			FirstName: q.From.FirstName,
			LastName:  q.From.LastName,
		}
		if err := b.store.UpsertUser(user); err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.Welcome, keyboards.MainMenu())

	case commands.ActionHelp:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.Help, keyboards.BackHome())

	case commands.ActionCatalog:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.showCatalog(chatID, messageID, "")

	case commands.ActionCategory:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.showCatalog(chatID, messageID, act.Category)

	case commands.ActionProduct:
		product, err := b.store.ProductByID(act.ProductID)
		if err != nil {
			if errors.Is(err, database.ErrProductNotFound) {
				return b.tg.AnswerCallbackQuery(q.ID, messages.ProductNotFound)
			}
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.ProductDetail(product), keyboards.ProductDetail(product.ID))

	case commands.ActionAddCart:
		if _, err := b.store.ProductByID(act.ProductID); err != nil {
			if errors.Is(err, database.ErrProductNotFound) {
				return b.tg.AnswerCallbackQuery(q.ID, messages.ProductNotFound)
			}
			return err
		}
		if err := b.store.AddToCart(userID, act.ProductID, 1); err != nil {
			return err
		}
		return b.tg.AnswerCallbackQuery(q.ID, messages.AddedToCart)

	case commands.ActionBuy, commands.ActionBuyNow:
		if _, err := b.store.ProductByID(act.ProductID); err != nil {
			if errors.Is(err, database.ErrProductNotFound) {
				return b.tg.AnswerCallbackQuery(q.ID, messages.ProductNotFound)
			}
			return err
		}
		if err := b.store.AddToCart(userID, act.ProductID, 1); err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, messages.AddedToCart); err != nil {
			return err
		}
		return b.showCart(chatID, messageID, userID)

	case commands.ActionCart:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.showCart(chatID, messageID, userID)

	case commands.ActionClearCart:
		if err := b.store.ClearCart(userID); err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, messages.CartCleared); err != nil {
			return err
		}
		return b.showCart(chatID, messageID, userID)

	case commands.ActionCheckout:
		lines, err := b.store.Cart(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return b.tg.AnswerCallbackQuery(q.ID, messages.CartEmptyNotice)
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.CheckoutSummary(messages.CartTotal(lines)), keyboards.Checkout(payment.Methods()))

	case commands.ActionPay:
		method, ok := payment.ByCode(act.Method)
		if !ok {
			b.log.Warn("unknown payment method in callback", zap.String("data", q.Data))
			return b.tg.AnswerCallbackQuery(q.ID, messages.UnknownAction)
		}
		orderIDs, total, err := b.store.Checkout(userID, method.Code)
		if err != nil {
			if errors.Is(err, database.ErrCartEmpty) {
				return b.tg.AnswerCallbackQuery(q.ID, messages.CartEmptyNotice)
			}
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.PaymentInstructions(method, total, orderIDs), keyboards.PaymentDone())

	case commands.ActionHistory:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.showHistory(chatID, messageID, userID)

	case commands.ActionContact:
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.Contact, keyboards.BackHome())

	case commands.ActionAdminStats:
		stats, err := b.store.Stats()
		if err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.AdminStats(stats), keyboards.AdminPanel())

	case commands.ActionAdminUsers:
		users, err := b.store.ListUsers()
		if err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.AdminUsers(users), keyboards.AdminPanel())

	case commands.ActionAdminOrders:
		orders, err := b.store.AllOrders("")
		if err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.AdminOrders(orders), keyboards.AdminPanel())

	case commands.ActionAdminProducts:
		products, err := b.store.AllProducts()
		if err != nil {
			return err
		}
		if err := b.tg.AnswerCallbackQuery(q.ID, ""); err != nil {
			return err
		}
		return b.render(chatID, messageID, messages.AdminProducts(products), keyboards.AdminPanel())

	case commands.ActionUnknown:
		b.log.Warn("unknown callback action", zap.String("data", q.Data))
		return b.tg.AnswerCallbackQuery(q.ID, messages.UnknownAction)
	}

	return nil
}
