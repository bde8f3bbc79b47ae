package party

import (
	"github.com/bharatbooks/bharatbooks/internal/party/service"
	"go.uber.org/fx"
)

var Module = fx.Module("party.service",
	fx.Provide(service.NewService),
)
