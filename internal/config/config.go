package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	DBDSN      string
	ContentAPI string
	APIToken   string
	MediaDir   string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "folio.db" // sqlite file in project root
	}
	api := os.Getenv("CONTENT_API")
	if api == "" {
		api = "http://localhost:9000"
	}
	token := os.Getenv("CONTENT_API_TOKEN") // empty disables admin writes
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE") // empty keeps logging on stdout only

	cfg := Config{Port: port, DBDSN: dsn, ContentAPI: api, APIToken: token, MediaDir: media, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s CONTENT_API=%s MEDIA_DIR=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.ContentAPI, cfg.MediaDir, cfg.LogFile)
	return cfg
}
