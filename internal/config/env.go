package config

import "github.com/joho/godotenv"

// LoadEnv loads a .env file into the process environment if one
// exists. A missing file is not an error; already-set variables are
// never overridden.
func LoadEnv() bool {
	if err := godotenv.Load(); err != nil {
		return false
	}

	return true
}
