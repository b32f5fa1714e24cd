//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	bid_post "bidding/internal/handlers/rest/bid_post"
	bidding_status_get "bidding/internal/handlers/rest/bidding_status_get"
	optimal_bids_get "bidding/internal/handlers/rest/optimal_bids_get"
	ranked_bids_get "bidding/internal/handlers/rest/ranked_bids_get"
	route_get "bidding/internal/handlers/rest/route_get"
	route_post "bidding/internal/handlers/rest/route_post"
	"bidding/internal/handlers/tasks/bid_finalization"
	"bidding/internal/pkg/config"
	"bidding/internal/pkg/factory/bidding_window"
	"bidding/internal/pkg/factory/route_handle"

	bidRepo "bidding/internal/repository/bid"
	routeRepo "bidding/internal/repository/route"
	bidService "bidding/internal/service/bid"
	eventService "bidding/internal/service/event"
	rankingService "bidding/internal/service/ranking"
	routeService "bidding/internal/service/route"
	selectionService "bidding/internal/service/selection"

	"bidding/pkg/background"
	"bidding/pkg/logger"
	"bidding/pkg/querier"
	"bidding/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	FinalizationInterval time.Duration
)

type Application struct {
	ServiceRoute      ServiceRoute
	ServiceBid        ServiceBid
	ServiceRanking    ServiceRanking
	ServiceSelection  ServiceSelection
	BackgroundWorkers *background.Worker
}

type ServiceRoute interface {
	route_get.Service
	route_post.Service
}

type ServiceBid interface {
	bid_post.Service
	bidding_status_get.Service
}

type ServiceRanking interface {
	ranked_bids_get.Service
}

type ServiceSelection interface {
	optimal_bids_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFinalizationInterval,
		provideWindowFactory,

		provideRouteRepository,
		provideBidRepository,

		provideServiceRoute,
		provideServiceBid,
		provideServiceRanking,
		provideServiceSelection,

		provideBidFinalizationTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceBid), new(*bidService.Bid)),
		wire.Bind(new(ServiceRanking), new(*rankingService.Ranking)),
		wire.Bind(new(ServiceSelection), new(*selectionService.Selection)),

		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.BidRepository), new(*bidRepo.Repository)),
		wire.Bind(new(routeService.WindowFactory), new(*bidding_window.WindowFactory)),
		wire.Bind(new(bidService.Repository), new(*bidRepo.Repository)),
		wire.Bind(new(bidService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(bidService.WindowFactory), new(*bidding_window.WindowFactory)),
		wire.Bind(new(rankingService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(rankingService.BidRepository), new(*bidRepo.Repository)),
		wire.Bind(new(selectionService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(selectionService.BidRepository), new(*bidRepo.Repository)),
		wire.Bind(new(selectionService.Ranker), new(*rankingService.Ranking)),
		wire.Bind(new(selectionService.WindowFactory), new(*bidding_window.WindowFactory)),

		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(selectionService.TxManager), new(*tx.Manager)),

		wire.Bind(new(bid_finalization.Service), new(*selectionService.Selection)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventService *eventService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-route-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideWindowFactory,

		provideRouteRepository,
		provideBidRepository,

		provideServiceRoute,
		provideStatusHandlerFabric,
		provideEventService,

		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.BidRepository), new(*bidRepo.Repository)),
		wire.Bind(new(routeService.WindowFactory), new(*bidding_window.WindowFactory)),
		wire.Bind(new(eventService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(eventService.HandlerFactory), new(*route_handle.StatusHandlerFactory)),

		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideWindowFactory(cfg *config.Config) *bidding_window.WindowFactory {
	return bidding_window.New(cfg.Bidding.LeadTime)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideBidRepository(querier *querier.Querier) *bidRepo.Repository {
	return bidRepo.New(querier)
}

func provideServiceRoute(
	repository routeService.Repository,
	bidRepository routeService.BidRepository,
	windowFactory routeService.WindowFactory,
	txManager routeService.TxManager,
) *routeService.Route {
	return routeService.New(repository, bidRepository, windowFactory, txManager)
}

func provideServiceBid(
	repository bidService.Repository,
	routeRepository bidService.RouteRepository,
	windowFactory bidService.WindowFactory,
) *bidService.Bid {
	return bidService.New(repository, routeRepository, windowFactory)
}

func provideServiceRanking(
	routeRepository rankingService.RouteRepository,
	bidRepository rankingService.BidRepository,
	cfg *config.Config,
) *rankingService.Ranking {
	weights := rankingService.Weights{
		Price:    cfg.Bidding.WeightPrice,
		Volume:   cfg.Bidding.WeightVolume,
		Distance: cfg.Bidding.WeightDistance,
	}
	return rankingService.New(routeRepository, bidRepository, weights, cfg.Bidding.MaxDetourPercentage)
}

func provideServiceSelection(
	routeRepository selectionService.RouteRepository,
	bidRepository selectionService.BidRepository,
	ranker selectionService.Ranker,
	windowFactory selectionService.WindowFactory,
	txManager selectionService.TxManager,
) *selectionService.Selection {
	return selectionService.New(
		routeRepository,
		bidRepository,
		ranker,
		windowFactory,
		txManager,
	)
}

func provideFinalizationInterval(cfg *config.Config) FinalizationInterval {
	return FinalizationInterval(cfg.Tasks.BidFinalizationInterval)
}

// provideEventService создает eventService для обработки событий Kafka
func provideEventService(
	routeRepository eventService.RouteRepository,
	handlerFactory eventService.HandlerFactory,
) *eventService.Service {
	return eventService.New(routeRepository, handlerFactory)
}

func provideStatusHandlerFabric(routeService *routeService.Route) *route_handle.StatusHandlerFactory {
	return route_handle.NewStatusHandlerFactory(routeService)
}

func provideBidFinalizationTask(
	log logger.Logger,
	selectionService bid_finalization.Service,
	interval FinalizationInterval,
) *bid_finalization.BidFinalization {
	return bid_finalization.NewBidFinalization(log, selectionService, time.Duration(interval))
}

func provideTaskList(
	bidFinalizationTask *bid_finalization.BidFinalization,
) []background.Task {
	return []background.Task{
		bidFinalizationTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
