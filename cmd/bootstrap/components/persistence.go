package components

import (
	"hostelops/internal/infra/db"
	"hostelops/internal/infra/ordersvc"
	"hostelops/internal/infra/readstore"
	"hostelops/internal/infra/uow"
	"hostelops/internal/pkg/config"
	"hostelops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewOrderServiceClient,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewOccupancyReadStore,
			fx.As(new(queries.OccupancyReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
	),
)

// Read stores outside a transaction run directly against the pool.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewOrderServiceClient(cfg config.Config) ordersvc.Client {
	return ordersvc.NewClient(cfg.OrderSvc)
}
