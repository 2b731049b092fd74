package config

import (
	"os"
	"strconv"
)

type Config struct {
	BookingFile string
	MaxStayDays int
	Currency    string
}

func Load() *Config {
	return &Config{
		BookingFile: getEnv("HOTEL_BOOKING_FILE", "bookings.txt"),
		MaxStayDays: getEnvAsInt("HOTEL_MAX_STAY_DAYS", 50),
		Currency:    getEnv("HOTEL_CURRENCY", "£"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if num, err := strconv.Atoi(value); err == nil {
			return num
		}
	}

	return defaultValue
}
