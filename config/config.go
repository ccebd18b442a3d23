// Package config exposes environment-driven configuration for the
// shivam-store server. Every setting has a default so the binary runs
// without any environment at all.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("STORE_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("STORE_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("STORE_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("STORE_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("STORE_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("STORE_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("STORE_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "uploads"
	}
	return uploadFolderPath
}

// GetDomain returns the expected Host header. Empty disables the check.
func GetDomain() string {
	return os.Getenv("STORE_DOMAIN")
}

// GetSessionSecret returns the cookie-signing secret. An empty value
// means the server generates a random one at startup, which invalidates
// existing sessions on restart.
func GetSessionSecret() string {
	return os.Getenv("STORE_SESSION_SECRET")
}

// GetPaymentAddress is the UPI-style address encoded into the payment QR.
func GetPaymentAddress() string {
	addr := os.Getenv("STORE_PAYMENT_ADDRESS")
	if addr == "" {
		addr = "upi://pay?pa=shivam@upi&pn=Shivam%20General%20Store"
	}
	return addr
}
