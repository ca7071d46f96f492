package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/logger"
	"github.com/domiapi/nanobanana-http/internal/server"
)

func main() {
	// .env may carry DOMI_API_TOKEN; a missing file is fine
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(err)
		}
	}
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", "9000")

	var domiConfig domi.Config
	if err := viper.UnmarshalKey("domi", &domiConfig); err != nil {
		panic(err)
	}
	domi.SetDefault(domi.NewClient(domiConfig.Options()...))

	host := viper.GetString("server.host")
	port := viper.GetString("server.port")
	apiKey := viper.GetString("server.apiKey")
	logger.Infof("service is starting, host: %s, port: %s", host, port)
	server.Start(host, port, apiKey)
}
