package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	chatRepository "github.com/Mahmoudyf96/EliteQuiz/internal/chat/repository"
	chatUsecase "github.com/Mahmoudyf96/EliteQuiz/internal/chat/usecase"
	"github.com/Mahmoudyf96/EliteQuiz/internal/media"
	"github.com/Mahmoudyf96/EliteQuiz/internal/quiz"
	"github.com/Mahmoudyf96/EliteQuiz/internal/server"
	"github.com/Mahmoudyf96/EliteQuiz/internal/store"
	userRepository "github.com/Mahmoudyf96/EliteQuiz/internal/user/repository"
	userUsecase "github.com/Mahmoudyf96/EliteQuiz/internal/user/usecase"
	"github.com/Mahmoudyf96/EliteQuiz/internal/ws"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

func main() {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config"
	}

	v, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	l, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	docStore := store.NewBunStore(db, l)
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := docStore.Init(initCtx); err != nil {
		l.Error("failed to init document store", "err", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	indexRepo := chatRepository.NewConversationIndexRepo(docStore, l, cfg.Sync)
	messageRepo := chatRepository.NewMessageRepo(docStore, l, cfg.Sync)
	userRepo := userRepository.NewUserRepo(docStore, l)

	chatUC := chatUsecase.NewChatUsecase(indexRepo, messageRepo, *l, cfg.Sync)
	userUC := userUsecase.NewUserUsecase(userRepo, *l)

	quizClient := quiz.NewClient(cfg.Quiz, l)
	leaderboard := quiz.NewLeaderboard(rdb)
	quizUC := quiz.NewQuizUsecase(quizClient, userRepo, leaderboard, *l)

	uploader := media.NewFSUploader(cfg.Media)
	hub := ws.NewHub(rdb, chatUC, l)

	srv := server.New(cfg, l, userUC, chatUC, quizUC, uploader, hub, rdb)
	if err := srv.Run(); err != nil {
		l.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
