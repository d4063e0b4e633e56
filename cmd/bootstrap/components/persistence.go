package components

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/query"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/readstore"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/infra/uow"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		NewDBTX,
		uow.NewPostgresUoW,
		NewVoucherReadStore,
		NewRatingReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

func NewVoucherReadStore(q *query.Queries, db query.DBTX) queries.VoucherReadStore {
	return readstore.NewVoucherReadStore(q, db)
}

func NewRatingReadStore(q *query.Queries, db query.DBTX) queries.RatingReadStore {
	return readstore.NewRatingReadStore(q, db)
}
