package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) string {
	var user, password, host, port, name string

	switch env {
	case "dev", "":
		user = GetEnv("DEV_DB_USER")
		password = GetEnv("DEV_DB_PASSWORD")
		host = GetEnv("DEV_DB_HOST")
		port = GetEnv("DEV_DB_PORT")
		name = GetEnv("DEV_DB_NAME")
	case "prod":
		user = GetEnv("PROD_DB_USER")
		password = GetEnv("PROD_DB_PASSWORD")
		host = GetEnv("PROD_DB_HOST")
		port = GetEnv("PROD_DB_PORT")
		name = GetEnv("PROD_DB_NAME")
	default:
		log.Fatalf("Unknown environment: %s", env)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=Asia/Colombo",
		host, user, password, name, port)
	return dsn
}

func ConnectDB() {
	var err error
	env := GetEnv("ENV")
	dsn := getDBConfigByEnv(env)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}
