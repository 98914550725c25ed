package telegram

import (
	"context"
	"log"
	"path"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	MsgStart = "Send me a PDF file and I will return a ZIP archive " +
		"with PNG images for each page."
	MsgNotPDF = "Please send a PDF document."
)

// runBotLoop — главный цикл получения апдейтов
func (app *BotApp) runBotLoop(bot *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", bot.Self.UserName)

	for update := range updates {
		msg := update.Message
		if msg == nil || msg.From == nil {
			continue
		}

		log.Printf("[bot_touch] fromTG=%d updateID=%d", msg.From.ID, update.UpdateID)

		app.dispatchMessage(bot, msg)
	}
}

func (app *BotApp) dispatchMessage(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		bot.Send(tgbotapi.NewMessage(chatID, MsgStart))

	case msg.Document != nil:
		if !isPDF(msg.Document) {
			bot.Send(tgbotapi.NewMessage(chatID, MsgNotPDF))
			return
		}
		// конвертации независимы, пусть идут параллельно
		go app.handlePDF(context.Background(), bot, msg)

	default:
		bot.Send(tgbotapi.NewMessage(chatID, MsgNotPDF))
	}
}

func isPDF(doc *tgbotapi.Document) bool {
	if doc.MimeType == "application/pdf" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(doc.FileName), ".pdf")
}

// archiveName — document.pdf → document_images.zip
func archiveName(pdfName string) string {
	base := path.Base(pdfName)
	if base == "" || base == "." || base == "/" {
		base = "document.pdf"
	}
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		stem = "document"
	}
	return stem + "_images.zip"
}
