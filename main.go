package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/gbalekage/my-pos-v2-sub000/config"
	"github.com/gbalekage/my-pos-v2-sub000/printing"
	"github.com/gbalekage/my-pos-v2-sub000/routes"
	"github.com/gbalekage/my-pos-v2-sub000/service"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

func main() {
	cfg := config.Load()
	utils.SetSecret(cfg.JWTSecret)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	config.Seed(db, cfg)

	dispatcher := printing.TCPDispatcher{}
	var spooler printing.Spooler
	if len(cfg.KafkaBrokers) > 0 {
		spooler = printing.NewKafkaSpooler(cfg.KafkaBrokers)
		consumer := printing.NewConsumer(cfg.KafkaBrokers, dispatcher, cfg.PrintTimeout)
		go consumer.Run(context.Background())
		defer consumer.Close()
	} else {
		spooler = printing.NewChannelSpooler(dispatcher, cfg.PrintTimeout)
	}
	defer spooler.Close()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	orders := service.NewOrderService(db, spooler, rdb)
	closing := service.NewClosingService(db, spooler)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Deps{DB: db, Orders: orders, Closing: closing})

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "POS API is running"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
