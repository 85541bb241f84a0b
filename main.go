package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"gptbot/pkg/domain"
	"gptbot/pkg/gpt"
	"gptbot/pkg/logger"
	"gptbot/pkg/repository"
	"gptbot/pkg/resource"
	"gptbot/pkg/telegram/handlers"
	"gptbot/pkg/telegram/matchers"
	"gptbot/pkg/telegram/middleware"
	"gptbot/pkg/workers"
)

type Config struct {
	TelegramBotToken string        `env:"BOT_TOKEN,required"`
	GptToken         string        `env:"GPT_TOKEN,required"`
	GptModel         string        `env:"GPT_MODEL" envDefault:"gpt-3.5-turbo"`
	ProxyURL         string        `env:"PROXY"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	LogLevel         slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	ResourcesDir     string        `env:"RESOURCES_DIR" envDefault:"resources"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	opts := *logger.DefaultOptions
	opts.Level = cfg.LogLevel
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &opts)))

	sessions := repository.NewSessionRepository()
	loader := resource.NewLoader(cfg.ResourcesDir)

	gptClient, err := gpt.NewClient(gpt.Config{
		Token:    cfg.GptToken,
		Model:    cfg.GptModel,
		Timeout:  cfg.RequestTimeout,
		ProxyURL: cfg.ProxyURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gpt client: %w", err)
	}

	b, err := bot.New(cfg.TelegramBotToken,
		bot.WithMiddlewares(middleware.Recover, middleware.RequestID, middleware.Typing),
		bot.WithDefaultHandler(handlers.Fallback()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	registerHandlers(b, sessions, loader, gptClient)

	return workers.Group{workers.NewTelegramBot(b)}, nil
}

func registerHandlers(b *bot.Bot, sessions handlers.SessionStore, loader handlers.ResourceLoader, gptClient handlers.Completer) {
	// Commands.
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeCommand, handlers.Start(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/random", bot.MatchTypeCommand, handlers.RandomFact(loader, gptClient))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/gpt", bot.MatchTypeCommand, handlers.StartChat(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/talk", bot.MatchTypeCommand, handlers.ShowCelebrities(loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/quiz", bot.MatchTypeCommand, handlers.StartQuiz(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/translator", bot.MatchTypeCommand, handlers.StartTranslator(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, "/media", bot.MatchTypeCommand, handlers.StartMedia(sessions, loader))

	// Literal triggers.
	b.RegisterHandler(bot.HandlerTypeMessageText, domain.TriggerFinish, bot.MatchTypeExact, handlers.Finish(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, domain.TriggerSayGoodbye, bot.MatchTypeExact, handlers.Finish(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeMessageText, domain.TriggerAnotherFact, bot.MatchTypeExact, handlers.RandomFact(loader, gptClient))

	// Stage-bound free text.
	b.RegisterHandlerMatchFunc(matchers.StageText(sessions, domain.StageChatWaitingForRequest), handlers.ChatMessage(sessions, loader, gptClient))
	b.RegisterHandlerMatchFunc(matchers.StageText(sessions, domain.StageCelebrityWaitingForAnswer), handlers.CelebrityMessage(sessions, loader, gptClient))
	b.RegisterHandlerMatchFunc(matchers.StageText(sessions, domain.StageQuizWaitingForAnswer), handlers.QuizAnswer(sessions, loader, gptClient))
	b.RegisterHandlerMatchFunc(matchers.StageText(sessions, domain.StageTranslatorWaitingForText), handlers.TranslateText(sessions, loader, gptClient))

	// Inline button callbacks.
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.CelebrityCallbackPrefix+":", bot.MatchTypePrefix, handlers.SelectCelebrity(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.QuizCallbackPrefix+":"+domain.QuizActionSelectTopic+":", bot.MatchTypePrefix, handlers.SelectQuizTopic(sessions, loader, gptClient))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.QuizCallbackPrefix+":"+domain.QuizActionNextQuestion, bot.MatchTypePrefix, handlers.NextQuestion(sessions, loader, gptClient))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.QuizCallbackPrefix+":"+domain.QuizActionChangeTopic, bot.MatchTypePrefix, handlers.ChangeTopic(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.QuizCallbackPrefix+":"+domain.QuizActionFinish, bot.MatchTypePrefix, handlers.FinishQuiz(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.TranslatorCallbackPrefix+":", bot.MatchTypePrefix, handlers.SelectDirection(sessions))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.MediaCallbackPrefix+":"+domain.MediaActionSelectCategory+":", bot.MatchTypePrefix, handlers.SelectCategory(sessions, loader))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.MediaCallbackPrefix+":"+domain.MediaActionSelectGenre+":", bot.MatchTypePrefix, handlers.SelectGenre(sessions, loader, gptClient))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.MediaCallbackPrefix+":"+domain.MediaActionDislike, bot.MatchTypePrefix, handlers.Dislike(sessions, loader, gptClient))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.MediaCallbackPrefix+":"+domain.MediaActionFinish, bot.MatchTypePrefix, handlers.FinishMedia(sessions, loader))
}
