package service

import (
	"context"
	"strings"
	"time"

	"github.com/bharatbooks/bharatbooks/internal/gst"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	"github.com/bharatbooks/bharatbooks/pkg/repository"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	log  *zap.Logger
	repo repository.Repository[tenantdomain.Tenant]
}

func NewService(p Params) tenantdomain.Service {
	return &Service{
		log:  p.Log.Named("tenant.service"),
		repo: repository.ProvideStore[tenantdomain.Tenant](p.DB),
	}
}

func (s *Service) Get(ctx context.Context) (*tenantdomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, tenantdomain.ErrInvalidTenant
	}

	item, err := s.repo.FindOne(ctx, &tenantdomain.Tenant{ID: tenantID})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, tenantdomain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req tenantdomain.UpdateRequest) (*tenantdomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, tenantdomain.ErrInvalidTenant
	}

	item, err := s.repo.FindOne(ctx, &tenantdomain.Tenant{ID: tenantID})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, tenantdomain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, tenantdomain.ErrInvalidName
		}
		item.Name = name
	}
	if req.GSTIN != nil {
		gstin := strings.TrimSpace(*req.GSTIN)
		if gstin != "" {
			if !gst.ValidGSTIN(gstin) {
				return nil, tenantdomain.ErrInvalidGSTIN
			}
			code, err := gst.StateCode(gstin)
			if err != nil {
				return nil, tenantdomain.ErrInvalidGSTIN
			}
			item.StateCode = code
		}
		item.GSTIN = gstin
	}
	if req.Email != nil {
		item.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		item.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		item.Address = strings.TrimSpace(*req.Address)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, item.ID.String(), item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func toResponse(t *tenantdomain.Tenant) tenantdomain.Response {
	resp := tenantdomain.Response{
		ID:        t.ID.String(),
		Name:      t.Name,
		GSTIN:     t.GSTIN,
		StateCode: t.StateCode,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
	}
	if pan, err := gst.PAN(t.GSTIN); err == nil {
		resp.EntityType = string(gst.EntityTypeHint(pan))
	}
	return resp
}
