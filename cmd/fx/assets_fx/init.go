package assets_fx

import (
	"go.uber.org/fx"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/infra"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/config"
)

var Module = fx.Provide(
	provideAssets)

func provideAssets(cfg *config.Config) *infra.ModelAssets {
	return infra.MustLoadAssets(cfg)
}
