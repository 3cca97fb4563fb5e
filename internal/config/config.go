package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

func GetConfig() (*Options, error) {
	GetDefaultOptions()

	// A .env file is optional, the host may set env vars directly.
	_ = godotenv.Load()

	dataDir, err := checkDataDir(Opts.Data)
	if err != nil {
		fmt.Println("Error checking data directory: ", err)
		return nil, err
	}

	Opts.Data = dataDir
	Opts.DSN = filepath.Join(Opts.Data, "/bookhaven.db")
	loadEnvOverrides()

	return Opts, nil
}

// loadEnvOverrides pulls secrets from the environment so tokens never have
// to live in the config file.
func loadEnvOverrides() {
	if token := strings.TrimSpace(os.Getenv("HARDCOVER_TOKEN")); token != "" {
		Opts.HardcoverToken = token
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
		}
		if dataDir == defaultData {
			err := os.MkdirAll(dataDir, 0755)
			if err != nil {
				if errors.Is(err, os.ErrPermission) {
					// Permission denied, try the user's home directory instead
					currentUser, err := user.Current()
					if err != nil {
						return "", errors.Wrap(err, "unable to get current user")
					}
					homeDir := currentUser.HomeDir
					if homeDir == "" {
						return "", errors.New("unable to get home directory")
					}

					fallback := filepath.Join(homeDir, "/.bookhaven")
					if _, err := os.Stat(fallback); err == nil {
						return fallback, nil
					}
					if err := os.MkdirAll(fallback, 0755); err != nil {
						return "", errors.Wrapf(err, "unable to create default data folder %s", fallback)
					}
					return fallback, nil
				}
				return "", errors.Wrapf(err, "unable to create default data folder %s", dataDir)
			}
		}
	}
	return dataDir, nil
}

func ParseFile(file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(Opts); err != nil {
		return nil, err
	}
	loadEnvOverrides()
	return Opts, nil
}
