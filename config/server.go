package config

import (
	"os"
)

type ServerConfig struct {
	Host string
	Port string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	host := os.Getenv("HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	return &ServerConfig{
		Host: host,
		Port: port,
	}
}

func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
