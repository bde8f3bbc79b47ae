package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	"github.com/bharatbooks/bharatbooks/pkg/repository"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HSN/SAC codes are 4 to 8 digits.
var hsnPattern = regexp.MustCompile(`^\d{4,8}$`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[itemdomain.Item]
}

func NewService(p Params) itemdomain.Service {
	return &Service{
		log:   p.Log.Named("item.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[itemdomain.Item](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req itemdomain.CreateRequest) (*itemdomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, itemdomain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, itemdomain.ErrInvalidName
	}
	hsn := strings.TrimSpace(req.HSNCode)
	if hsn != "" && !hsnPattern.MatchString(hsn) {
		return nil, itemdomain.ErrInvalidHSN
	}

	now := time.Now().UTC()
	record := &itemdomain.Item{
		ID:             s.genID.Generate(),
		TenantID:       tenantID,
		Name:           name,
		HSNCode:        hsn,
		GSTRatePercent: req.GSTRatePercent,
		Unit:           strings.TrimSpace(req.Unit),
		Rate:           req.Rate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := toResponse(record)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]itemdomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, itemdomain.ErrInvalidTenant
	}

	items, err := s.repo.Find(ctx, &itemdomain.Item{TenantID: tenantID})
	if err != nil {
		return nil, err
	}

	resp := make([]itemdomain.Response, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		resp = append(resp, toResponse(item))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*itemdomain.Response, error) {
	item, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req itemdomain.UpdateRequest) (*itemdomain.Response, error) {
	item, err := s.findOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, itemdomain.ErrInvalidName
		}
		item.Name = name
	}
	if req.HSNCode != nil {
		hsn := strings.TrimSpace(*req.HSNCode)
		if hsn != "" && !hsnPattern.MatchString(hsn) {
			return nil, itemdomain.ErrInvalidHSN
		}
		item.HSNCode = hsn
	}
	if req.GSTRatePercent != nil {
		item.GSTRatePercent = *req.GSTRatePercent
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Rate != nil {
		item.Rate = *req.Rate
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, item.ID.String(), item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.findOwned(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, item.ID.String())
}

func (s *Service) findOwned(ctx context.Context, id string) (*itemdomain.Item, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, itemdomain.ErrInvalidTenant
	}

	itemID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, itemdomain.ErrInvalidID
	}

	item, err := s.repo.FindOne(ctx, &itemdomain.Item{ID: itemID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, itemdomain.ErrNotFound
	}
	return item, nil
}

func toResponse(i *itemdomain.Item) itemdomain.Response {
	return itemdomain.Response{
		ID:             i.ID.String(),
		Name:           i.Name,
		HSNCode:        i.HSNCode,
		GSTRatePercent: i.GSTRatePercent,
		Unit:           i.Unit,
		Rate:           i.Rate,
	}
}
