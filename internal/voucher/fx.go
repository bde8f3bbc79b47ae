package voucher

import (
	"github.com/bharatbooks/bharatbooks/internal/voucher/service"
	"go.uber.org/fx"
)

var Module = fx.Module("voucher.service",
	fx.Provide(service.NewService),
)
