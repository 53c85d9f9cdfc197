package router

import (
	"net/http"

	"signforge/internal/adapters/inbound/http/controllers"
)

type Dependencies struct {
	HealthController   *controllers.HealthController
	SwaggerController  *controllers.SwaggerController
	SwapController     *controllers.SwapController
	TransferController *controllers.TransferController
	WrapController     *controllers.WrapController
	StakingController  *controllers.StakingController
	MarketsController  *controllers.MarketsController
}

func New(deps Dependencies) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.HealthController.GetHealth)
	mux.HandleFunc("GET /swagger", deps.SwaggerController.RedirectToIndex)
	mux.HandleFunc("GET /swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	mux.HandleFunc("GET /swagger/", deps.SwaggerController.ServeUI)
	mux.HandleFunc("POST /v1/tools/swap", deps.SwapController.CreateSwapOrder)
	mux.HandleFunc("GET /v1/tools/erc20/transfer", deps.TransferController.CreateTransfer)
	mux.HandleFunc("GET /v1/tools/weth/wrap", deps.WrapController.WrapNative)
	mux.HandleFunc("GET /v1/tools/weth/unwrap", deps.WrapController.UnwrapNative)
	mux.HandleFunc("GET /v1/tools/staking", deps.StakingController.CreateStakingAction)
	mux.HandleFunc("GET /v1/tools/markets", deps.MarketsController.CreateMarketAction)
	mux.HandleFunc("GET /v1/tools/markets/health", deps.MarketsController.GetMarketHealth)

	return mux
}
