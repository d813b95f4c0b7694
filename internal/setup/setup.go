package setup

import (
	"github.com/dugun-dev/dugun/internal/cloudinary"
	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/handler"
	"github.com/dugun-dev/dugun/internal/service"
	"github.com/dugun-dev/dugun/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(&cfg.Private.Pg)
	if err != nil {
		return nil, err
	}

	uploader := cloudinary.New(&cfg.Private.Cloudinary)

	image := service.NewImage(storage, uploader)
	message := service.NewMessage(storage, storage, &cfg.Public.Message)

	h := handler.New(image, message, storage, cfg)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Handler: h,
	}, nil
}
