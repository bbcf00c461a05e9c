// file: main.go
package main

import (
	"context"
	"log"
	"os"

	"GOTCTF/database"
	"GOTCTF/routes"
	"GOTCTF/services"
	"GOTCTF/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env 只在存在时加载，容器环境直接注入环境变量
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	utils.InitJWT()
	database.Connect()
	database.MigrateTables()
	database.InitRedis()
	database.SeedAdmin()
	services.InitEvents(context.Background())

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
