package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		Port            string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Name          string
		DisableTLS    bool
	}

	// CampusConfig holds the geo-fence deployment constants: where campus
	// is and how far away a check-in is still accepted.
	CampusConfig struct {
		Lat               float64
		Lon               float64
		MaxDistanceMeters float64
	}

	Config struct {
		Debug    bool
		TestMode bool
		AppName  string
		Env      string

		SecretKey            []byte
		SessionTTL           time.Duration
		PasswordResetTimeout time.Duration

		DefaultFromEmail mail.Address
		SendgridApiKey   string
		RollbarToken     string

		Server   ServerConfig
		Database DatabaseConfig
		Campus   CampusConfig
	}
)

var Conf *Config

func init() {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "HolbStudyMate")
	v.SetDefault("secretKey", "f8e0(f&yn$kf+1+y9w#&mhx_2-kzu3!pqs%$_7chm3^t0p)m+d")
	v.SetDefault("sessionTTL", 7*24*time.Hour)
	v.SetDefault("passwordResetTimeoutDelta", 3*24*time.Hour)
	v.SetDefault("defaultFromEmail", "noreply@localhost")

	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)

	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbUser", "studymate")
	v.SetDefault("dbPassword", "studymate")
	v.SetDefault("dbName", "studymate")
	v.SetDefault("dbDisableTLS", true)

	// Holberton campus, Baku
	v.SetDefault("campusLat", 40.40663934042372)
	v.SetDefault("campusLon", 49.848206791133954)
	v.SetDefault("campusMaxDistanceMeters", 50.0)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:                v.GetBool("debug"),
		TestMode:             v.GetBool("testMode"),
		AppName:              v.GetString("appName"),
		Env:                  env,
		SecretKey:            []byte(v.GetString("secretKey")),
		SessionTTL:           v.GetDuration("sessionTTL"),
		PasswordResetTimeout: v.GetDuration("passwordResetTimeoutDelta"),
		DefaultFromEmail:     mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridApiKey:       v.GetString("sendgridApiKey"),
		RollbarToken:         v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			Port:            v.GetString("serverPort"),
			ShutdownTimeout: v.GetDuration("serverShutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("dbEngine"),
			Host:          v.GetString("dbHost"),
			Port:          v.GetString("dbPort"),
			User:          v.GetString("dbUser"),
			Password:      v.GetString("dbPassword"),
			AdminUser:     v.GetString("dbAdminUser"),
			AdminPassword: v.GetString("dbAdminPassword"),
			Name:          v.GetString("dbName"),
			DisableTLS:    v.GetBool("dbDisableTLS"),
		},
		Campus: CampusConfig{
			Lat:               v.GetFloat64("campusLat"),
			Lon:               v.GetFloat64("campusLon"),
			MaxDistanceMeters: v.GetFloat64("campusMaxDistanceMeters"),
		},
	}
}

// Address returns the host:port the DB listens on.
func (c DatabaseConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address returns the host:port the API server binds to.
func (c ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}
