package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/pdf_ziper/internal/error_notificator"
	"github.com/Vovarama1992/pdf_ziper/internal/pipeline"
	"github.com/Vovarama1992/pdf_ziper/internal/ports"
)

type BotApp struct {
	Pipeline    *pipeline.Service
	Storage     ports.ArchiveStorage // nil, если S3 не настроен
	ErrorNotify error_notificator.Notificator

	bot *tgbotapi.BotAPI
}

func NewBotApp(
	pipelineService *pipeline.Service,
	storage ports.ArchiveStorage,
	errorNotify error_notificator.Notificator,
) *BotApp {
	return &BotApp{
		Pipeline:    pipelineService,
		Storage:     storage,
		ErrorNotify: errorNotify,
	}
}

func (app *BotApp) InitBot(token string) error {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	app.bot = bot
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)

	go app.runBotLoop(bot)

	return nil
}

func (app *BotApp) GetBot() *tgbotapi.BotAPI {
	return app.bot
}
