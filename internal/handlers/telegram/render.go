package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lessonbot/internal/services/conversation"
)

// renderMessage builds a fresh message carrying the prompt
func renderMessage(chatID int64, prompt *conversation.Prompt) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if markup := renderKeyboard(prompt); markup != nil {
		msg.ReplyMarkup = *markup
	}
	return msg
}

// renderEdit rewrites an existing message in place with the prompt
func renderEdit(chatID int64, messageID int, prompt *conversation.Prompt) tgbotapi.Chattable {
	markup := renderKeyboard(prompt)
	if markup == nil {
		return tgbotapi.NewEditMessageText(chatID, messageID, prompt.Text)
	}
	return tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, prompt.Text, *markup)
}

// renderKeyboard lays the prompt's choices out as an inline keyboard,
// honoring the prompt's column count
func renderKeyboard(prompt *conversation.Prompt) *tgbotapi.InlineKeyboardMarkup {
	if len(prompt.Choices) == 0 {
		return nil
	}

	columns := prompt.Columns
	if columns <= 0 {
		columns = 1
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, choice := range prompt.Choices {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Token))
		if len(row) == columns {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
