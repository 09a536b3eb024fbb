package main

import (
	"os"
	"os/signal"
	"syscall"

	"scrollwish.link/configs"
	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/configs/configslog"
	"scrollwish.link/routes"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := configs.SetupApp()
	routes.SetupRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler bitene
	// kadar beklenir, sonra bağlantılar kapatılır.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("ScrollWish %s portunda dinliyor", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu durduruldu.")
}
