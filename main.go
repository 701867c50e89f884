package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"concertsapi/config"
	"concertsapi/db"
	"concertsapi/models"
	"concertsapi/routes"
	"concertsapi/sessions"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("db open error:", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("db migrate error:", err)
	}
	sqldb, err := gdb.DB()
	if err != nil {
		log.Fatal("db pool error:", err)
	}
	sqldb.SetMaxOpenConns(20)
	sqldb.SetMaxIdleConns(10)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis ping error:", err)
	}

	store := sessions.NewStore(rdb, cfg.SessionTTL)

	server := gin.Default()
	routes.RegisterRoutes(server,
		models.NewUserRepository(gdb),
		models.NewEventRepository(gdb),
		models.NewAttendeeRepository(gdb),
		store, rdb,
		routes.Config{
			CookieName:   cfg.SessionCookie,
			CookieSecure: cfg.CookieSecure,
			SessionTTL:   cfg.SessionTTL,
		})

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal("gin.Run error:", err)
	}
}
