package di

import (
	"log"

	"github.com/ethereum/go-ethereum/common"

	"signforge/internal/adapters/inbound/http/controllers"
	httpRouter "signforge/internal/adapters/inbound/http/router"
	"signforge/internal/adapters/outbound/docs"
	"signforge/internal/adapters/outbound/evmrpc"
	orderbookhttp "signforge/internal/adapters/outbound/orderbook/http"
	"signforge/internal/adapters/outbound/rates"
	tokensourcehttp "signforge/internal/adapters/outbound/tokensource/http"
	"signforge/internal/application/use_cases"
	"signforge/internal/domain/cowswap"
	"signforge/internal/infrastructure/config"
	"signforge/internal/infrastructure/httpserver"
	"signforge/internal/infrastructure/tokendirectory"
)

type Container struct {
	Server *httpserver.Server
}

func Build(cfg config.Config, logger *log.Logger) (Container, error) {
	chainReader := evmrpc.NewReader(evmrpc.Config{
		RPCURLs: cfg.RPCURLs,
	})
	tokenSource := tokensourcehttp.NewSource(tokensourcehttp.Config{
		URLs: cfg.TokenMapURLs,
	})
	tokenDirectory := tokendirectory.New(
		tokenSource,
		chainReader,
		cfg.TokenCacheTTL,
		use_cases.NewSystemClock(),
		logger,
	)
	orderBookGateway := orderbookhttp.NewGateway(orderbookhttp.Config{
		BaseURLs: cfg.OrderBookURLs,
	})
	marketDataSource := rates.NewStaticSource(cfg.StakingRate)
	openAPIReadModel := docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath)

	var partnerFee *cowswap.PartnerFee
	if cfg.PartnerFeeBps > 0 {
		partnerFee = &cowswap.PartnerFee{
			Bps:       cfg.PartnerFeeBps,
			Recipient: common.HexToAddress(cfg.PartnerFeeRecipient).Hex(),
		}
	}

	healthUseCase := use_cases.NewGetHealthUseCase()
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(openAPIReadModel)
	swapUseCase := use_cases.NewCreateSwapOrderUseCase(
		tokenDirectory,
		orderBookGateway,
		chainReader,
		use_cases.SwapPolicy{
			SlippageBps:     cfg.SlippageBps,
			AppCode:         cfg.AppCode,
			ReferrerAddress: cfg.ReferralAddress,
			PartnerFee:      partnerFee,
		},
		logger,
	)
	transferUseCase := use_cases.NewCreateTransferUseCase(tokenDirectory)
	wrapUseCase := use_cases.NewWrapNativeUseCase()
	unwrapUseCase := use_cases.NewUnwrapNativeUseCase()
	stakingUseCase := use_cases.NewCreateStakingUseCase(marketDataSource)
	marketActionUseCase := use_cases.NewCreateMarketActionUseCase(tokenDirectory)
	marketHealthUseCase := use_cases.NewGetMarketHealthUseCase(marketDataSource)

	mux := httpRouter.New(httpRouter.Dependencies{
		HealthController:   controllers.NewHealthController(healthUseCase, logger),
		SwaggerController:  controllers.NewSwaggerController(openAPIUseCase, logger),
		SwapController:     controllers.NewSwapController(swapUseCase, logger),
		TransferController: controllers.NewTransferController(transferUseCase, logger),
		WrapController:     controllers.NewWrapController(wrapUseCase, unwrapUseCase, logger),
		StakingController:  controllers.NewStakingController(stakingUseCase, logger),
		MarketsController:  controllers.NewMarketsController(marketActionUseCase, marketHealthUseCase, logger),
	})

	server := httpserver.New(cfg.Address(), mux, logger)

	return Container{
		Server: server,
	}, nil
}
