package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAssessmentController),
	fx.Provide(controllers.NewPagesController),
	fx.Provide(controllers.NewHealthController))
