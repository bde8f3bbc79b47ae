package payroll

import (
	"github.com/bharatbooks/bharatbooks/internal/payroll/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payroll.service",
	fx.Provide(service.NewService),
)
