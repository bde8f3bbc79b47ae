package domain

import (
	"context"

	"github.com/xuri/excelize/v2"
)

type Service interface {
	Summary(ctx context.Context, month, year int) (*ReturnSummary, error)
	ExportGSTR1(ctx context.Context, month, year int) (*excelize.File, error)
}
