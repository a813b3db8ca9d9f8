package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"
	"Simple_Twitter/internal/repository/redis"
	"Simple_Twitter/internal/router"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	dsn := envOr("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/simple_twitter?charset=utf8mb4&parseTime=True")
	db, err := mysql.InitDB(dsn)
	if err != nil {
		panic(err)
	}

	// 连接redis
	rdb, err := redis.Init(envOr("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		panic(err)
	}

	// 自动建表（开发阶段 OK）
	if err := db.AutoMigrate(
		&model.User{},
		&model.Followship{},
		&model.Tweet{},
		&model.Like{},
		&model.Reply{},
	); err != nil {
		panic(err)
	}

	// kafka 事件流可选，没配 broker 就只写库不发事件
	var stream *pkg.EventWriter
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		stream = pkg.NewEventWriter(pkg.EventStreamConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   envOr("KAFKA_TOPIC", "social-events"),
		})
		defer stream.Close()
	}

	// 配置邮件环境，没配 host 就不发欢迎邮件
	smtpPort, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))
	smtpCfg := pkg.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOr("SMTP_FROM", "NoReply <no-reply@example.com>"),
	}

	// Gin
	r := router.InitRouter(db, rdb, stream, smtpCfg)
	if err := r.Run(envOr("HTTP_ADDR", ":8080")); err != nil {
		log.Fatal(err)
	}
}
