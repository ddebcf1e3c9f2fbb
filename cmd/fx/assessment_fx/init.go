package assessment_fx

import (
	"go.uber.org/fx"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/infra"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/services"
)

var Module = fx.Provide(
	provideAssessmentService)

func provideAssessmentService(assets *infra.ModelAssets) services.AssessmentServiceInterface {
	return services.NewAssessmentService(assets.Schema, assets.Scaler, assets.Classifier, assets.LoadedAt)
}
