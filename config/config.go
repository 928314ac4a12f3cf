package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	HTTPPort     string `envconfig:"HTTP_PORT" default:"8501"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Quelle der Spot-Tabelle: file, s3, postgres oder sqlite
	SpotsSource    string `envconfig:"SPOTS_SOURCE" default:"file"`
	SpotsPath      string `envconfig:"SPOTS_PATH" default:"spots.csv"`
	SpotsDelimiter string `envconfig:"SPOTS_DELIMITER"`
	SpotsTable     string `envconfig:"SPOTS_TABLE" default:"spots"`
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"spots.db"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`

	S3URL       string `envconfig:"S3_URL"`
	S3Region    string `envconfig:"S3_REGION" default:"eu-central-1"`
	S3Key       string `envconfig:"S3_KEY"`
	S3Secret    string `envconfig:"S3_SECRET"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3ObjectKey string `envconfig:"S3_OBJECT_KEY" default:"spots.csv"`

	// Leer deaktiviert das periodische Neuladen
	ReloadSchedule string `envconfig:"RELOAD_SCHEDULE" default:"*/15 * * * *"`

	AliasFile string `envconfig:"ALIAS_FILE"`

	LoadErrorMessage string `envconfig:"LOAD_ERROR_MESSAGE" default:"Impossible de charger la liste des adresses."`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Delimiter liefert das konfigurierte Trennzeichen oder 0 für automatische Erkennung.
func (c *Config) Delimiter() rune {
	return ParseDelimiter(c.SpotsDelimiter)
}

// ParseDelimiter übersetzt eine Trennzeichen-Angabe; "tab" und `\t` stehen für Tab, "" für automatisch.
func ParseDelimiter(s string) rune {
	switch s {
	case "":
		return 0
	case `\t`, "tab":
		return '\t'
	}
	return []rune(s)[0]
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
