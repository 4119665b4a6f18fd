package main

import (
	"Launchbox/internal/config"
)

// Provider loads the configuration consumed by the injector. It lives
// outside the wireinject-gated file so both build variants share it.
func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("launchbox.yaml")
}
