package invoice

import (
	"github.com/bharatbooks/bharatbooks/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(service.NewService),
)
