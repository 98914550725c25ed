package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/pdf_ziper/internal/pdf"
	"github.com/Vovarama1992/pdf_ziper/internal/pipeline"
)

// лимит загрузки файла ботом, чуть ниже телеграмных 50 MB
const uploadLimit = 49 << 20

func (app *BotApp) handlePDF(
	ctx context.Context,
	bot *tgbotapi.BotAPI,
	msg *tgbotapi.Message,
) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID
	d := msg.Document

	log.Printf("[pdf] START tg=%d filename=%s mime=%s", tgID, d.FileName, d.MimeType)

	bot.Send(tgbotapi.NewMessage(chatID, "PDF received. Converting pages to PNG images..."))

	// 1. TG FILE
	fileInfo, err := bot.GetFile(tgbotapi.FileConfig{FileID: d.FileID})
	if err != nil {
		log.Printf("[pdf] TG GetFile ERROR: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Could not fetch the PDF from Telegram."))
		return
	}
	downloadURL := fileInfo.Link(bot.Token)

	resp, err := http.Get(downloadURL)
	if err != nil {
		log.Printf("[pdf] HTTP GET ERROR: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Could not download the PDF."))
		return
	}
	defer resp.Body.Close()

	document, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[pdf] READ BODY ERROR: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Could not download the PDF."))
		return
	}

	// 2. PDF → ZIP
	res, err := app.Pipeline.Convert(ctx, document)
	if err != nil {
		log.Printf("[pdf] CONVERT ERROR: %v", err)
		if app.ErrorNotify != nil {
			_ = app.ErrorNotify.Notify(ctx, err, d.FileName)
		}
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ "+pipeline.UserMessage(err)+"."))
		return
	}

	name := archiveName(d.FileName)
	caption := fmt.Sprintf(
		"Done. Converted %d page(s) to PNG (%d DPI) and packed them into this ZIP.",
		res.Pages, pdf.RenderDPI,
	)

	// 3. DELIVERY
	if len(res.Archive) > uploadLimit {
		app.deliverViaStorage(ctx, bot, chatID, tgID, name, res)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  name,
		Bytes: res.Archive,
	})
	doc.Caption = caption
	if _, err := bot.Send(doc); err != nil {
		log.Printf("[pdf] SEND ERROR: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Could not send the archive."))
		return
	}

	log.Printf("[pdf] DONE tg=%d pages=%d size=%s",
		tgID, res.Pages, humanize.Bytes(uint64(len(res.Archive))))
}

// deliverViaStorage — архив не пролезает в лимит бота, выгружаем в S3
func (app *BotApp) deliverViaStorage(
	ctx context.Context,
	bot *tgbotapi.BotAPI,
	chatID int64,
	tgID int64,
	name string,
	res *pipeline.Result,
) {
	size := humanize.Bytes(uint64(len(res.Archive)))

	if app.Storage == nil {
		log.Printf("[pdf] archive too large (%s) and no storage configured", size)
		bot.Send(tgbotapi.NewMessage(chatID,
			"⚠️ The archive is too large to send ("+size+") and no external storage is configured."))
		return
	}

	url, err := app.Storage.SaveArchive(
		ctx, tgID,
		bytes.NewReader(res.Archive),
		int64(len(res.Archive)),
		name,
	)
	if err != nil {
		log.Printf("[pdf] S3 ERROR: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Could not store the archive."))
		return
	}

	text := fmt.Sprintf(
		"Done. Converted %d page(s) to PNG (%d DPI). The archive is too large for Telegram (%s), download it here:\n%s",
		res.Pages, pdf.RenderDPI, size, url,
	)
	bot.Send(tgbotapi.NewMessage(chatID, text))

	log.Printf("[pdf] DONE via storage tg=%d pages=%d size=%s", tgID, res.Pages, size)
}
