package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/dinoxe/internal/models"
)

// TelegramService pushes back-office notifications to the admin chat. With
// an empty bot token or chat id every send is a logged no-op, so local
// setups work without Telegram credentials.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// FormatPrice renders a rupee amount with Indian digit grouping, e.g.
// 125000 -> ₹1,25,000.
func FormatPrice(amount float64) string {
	str := fmt.Sprintf("%d", int64(amount))

	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}

	// Indian grouping: rightmost group of three, then groups of two.
	var groups []string
	if len(str) > 3 {
		groups = append(groups, str[len(str)-3:])
		str = str[:len(str)-3]
		for len(str) > 2 {
			groups = append(groups, str[len(str)-2:])
			str = str[:len(str)-2]
		}
	}
	groups = append(groups, str)

	var result strings.Builder
	if neg {
		result.WriteString("-")
	}
	result.WriteString("₹")
	for i := len(groups) - 1; i >= 0; i-- {
		result.WriteString(groups[i])
		if i > 0 {
			result.WriteString(",")
		}
	}
	return result.String()
}

// NotifyNewOrder sends a notification about a freshly placed order to the
// admin chat.
func (s *TelegramService) NotifyNewOrder(order models.Order) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x %s = %s\n",
			i+1,
			item.ProductName,
			item.Quantity,
			FormatPrice(item.ProductPrice),
			FormatPrice(item.Subtotal),
		))
	}

	message := fmt.Sprintf(`<b>🛒 NEW ORDER!</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>📞 Phone:</b> %s
<b>📍 Address:</b> %s
<b>📦 Items:</b>
%s
<b>💰 Total:</b> %s
<b>💳 Payment:</b> Cash on Delivery
━━━━━━━━━━━━━━━━━━`,
		order.OrderID,
		order.CustomerName,
		order.CustomerPhone,
		order.DeliveryAddress,
		itemsList.String(),
		FormatPrice(order.TotalAmount),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyRefundInitiated sends a notification when an order enters the refund
// branch.
func (s *TelegramService) NotifyRefundInitiated(order models.Order, refund models.Refund) error {
	if s.adminChatID == "" {
		return nil
	}

	reason := refund.Reason
	if reason == "" {
		reason = "not specified"
	}

	message := fmt.Sprintf(`<b>↩️ REFUND INITIATED</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>💰 Amount:</b> %s
<b>📝 Reason:</b> %s
━━━━━━━━━━━━━━━━━━`,
		order.OrderID,
		order.CustomerName,
		FormatPrice(refund.Amount),
		reason,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
