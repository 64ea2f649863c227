package main

import (
	"log"
	"os"
	"time"

	"ecom/config"
	"ecom/jwt"
	"ecom/routers"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("無法讀取設定檔: %v", err)
	}

	db, err := config.SetupMySQLConnection(cfg)
	if err != nil {
		log.Fatalf("無法連接到資料庫: %v", err)
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection(cfg)
	if err != nil {
		log.Fatalf("無法連接到Redis: %v", err)
	}
	defer rdb.Close()

	issuer, err := jwt.NewIssuer(
		cfg.JWT.PrivateKeyPath,
		cfg.JWT.PublicKeyPath,
		jwt.NewRedisTokenStore(rdb),
		time.Duration(cfg.JWT.TokenTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("無法載入JWT金鑰: %v", err)
	}

	router := routers.SetupRouters(db, issuer)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("伺服器啟動失敗: %v", err)
	}
}
