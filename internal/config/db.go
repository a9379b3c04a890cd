package config

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// MySQLDSN builds the DSN from DB_* env vars. Empty when DB_NAME is unset.
func MySQLDSN() string {
	name := GetEnv("DB_NAME", "")
	if name == "" {
		return ""
	}

	cfg := mysql.NewConfig()
	cfg.User = GetEnv("DB_USER", "root")
	cfg.Passwd = GetEnv("DB_PASSWORD", "")
	cfg.Net = "tcp"
	cfg.Addr = GetEnv("DB_HOST", "127.0.0.1") + ":" + GetEnv("DB_PORT", "3306")
	cfg.DBName = name
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// InitDB opens MySQL. Returns false when no database is configured and the
// landing page should run on built-in content.
func InitDB() bool {
	dsn := MySQLDSN()
	if dsn == "" {
		log.Println("[config] DB_NAME kosong, pakai konten default")
		return false
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("[config] MySQL DSN invalid:", err)
	}

	db.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	db.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("[config] MySQL tidak nyambung:", err)
	}

	DB = db
	log.Println("[config] MySQL connected")
	return true
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
