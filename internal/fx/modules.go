package fx

import (
	"database/sql"

	"golf-wager/internal/api"
	"golf-wager/internal/cache"
	"golf-wager/internal/config"
	"golf-wager/internal/database"
	"golf-wager/internal/db"
	"golf-wager/internal/logger"
	"golf-wager/internal/repository"
	"golf-wager/internal/server"
	"golf-wager/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewCourseRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewScoreRepository),
	fx.Provide(repository.NewPressRepository),
	// external
	fx.Provide(api.NewCourseDirectoryClient),
	fx.Provide(cache.New),
	// svc
	fx.Provide(service.NewCourseService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewSettlementService),
	fx.Provide(service.NewHistoryService),
	// server
	fx.Provide(server.NewWagerServer),
	fx.Provide(server.NewRouter),
)
