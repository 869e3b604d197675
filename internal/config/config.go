package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config — настройки обоих бинарников. Сервер использует Port и DBFile,
// клиент — APIURL. Значения берутся из флагов, затем перекрываются
// переменными окружения (в том числе из .env).
type Config struct {
	Port   string
	DBFile string
	APIURL string
}

func New() *Config {
	loadDotEnv()

	cfg := Config{}
	cfg.parseFlags()

	cfg.Port = ":" + cfg.Port

	if port := os.Getenv("TODO_PORT"); port != "" {
		cfg.Port = ":" + port
	}

	if dbFile := os.Getenv("TODO_DBFILE"); dbFile != "" {
		cfg.DBFile = dbFile
	}

	if apiURL := os.Getenv("TODO_API_URL"); apiURL != "" {
		cfg.APIURL = apiURL
	}

	return &cfg
}

func (c *Config) parseFlags() {
	flag.StringVar(&c.Port, "port", "8000", "порт HTTP-сервера")
	flag.StringVar(&c.DBFile, "dbfile", "./gotodo.db", "файл базы данных sqlite")
	flag.StringVar(&c.APIURL, "api", "http://localhost:8000", "адрес API для клиента")

	flag.Parse()
}

func loadDotEnv() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			log.Printf("Загружен файл с переменными окружения: %s", file)
			break
		}
	}
}
