package service

import (
	"context"
	"strings"
	"time"

	"github.com/bharatbooks/bharatbooks/internal/gst"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	"github.com/bharatbooks/bharatbooks/pkg/repository"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[partydomain.Party]
}

func NewService(p Params) partydomain.Service {
	return &Service{
		log:   p.Log.Named("party.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[partydomain.Party](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req partydomain.CreateRequest) (*partydomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, partydomain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, partydomain.ErrInvalidName
	}
	partyType := normalizeType(req.Type)
	if partyType != partydomain.PartyTypeCustomer && partyType != partydomain.PartyTypeSupplier {
		return nil, partydomain.ErrInvalidType
	}

	gstin := strings.TrimSpace(strings.ToUpper(req.GSTIN))
	stateCode := strings.TrimSpace(req.StateCode)
	if gstin != "" {
		if !gst.ValidGSTIN(gstin) {
			return nil, partydomain.ErrInvalidGSTIN
		}
		code, err := gst.StateCode(gstin)
		if err != nil {
			return nil, partydomain.ErrInvalidGSTIN
		}
		if stateCode != "" && stateCode != code {
			return nil, partydomain.ErrGSTINStateMismatch
		}
		stateCode = code
	}

	now := time.Now().UTC()
	record := &partydomain.Party{
		ID:        s.genID.Generate(),
		TenantID:  tenantID,
		Name:      name,
		Type:      partyType,
		GSTIN:     gstin,
		StateCode: stateCode,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := toResponse(record)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req partydomain.ListRequest) ([]partydomain.Response, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, partydomain.ErrInvalidTenant
	}

	filter := &partydomain.Party{TenantID: tenantID}
	if req.Type != "" {
		filter.Type = normalizeType(req.Type)
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		filter.Name = name
	}

	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]partydomain.Response, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		resp = append(resp, toResponse(item))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*partydomain.Response, error) {
	item, err := s.findOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req partydomain.UpdateRequest) (*partydomain.Response, error) {
	item, err := s.findOwned(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, partydomain.ErrInvalidName
		}
		item.Name = name
	}
	if req.GSTIN != nil {
		gstin := strings.TrimSpace(strings.ToUpper(*req.GSTIN))
		if gstin != "" {
			if !gst.ValidGSTIN(gstin) {
				return nil, partydomain.ErrInvalidGSTIN
			}
			code, err := gst.StateCode(gstin)
			if err != nil {
				return nil, partydomain.ErrInvalidGSTIN
			}
			item.StateCode = code
		}
		item.GSTIN = gstin
	}
	if req.StateCode != nil && item.GSTIN == "" {
		item.StateCode = strings.TrimSpace(*req.StateCode)
	}
	if req.Phone != nil {
		item.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		item.Email = strings.TrimSpace(*req.Email)
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

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.findOwned(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, item.ID.String())
}

func (s *Service) findOwned(ctx context.Context, id string) (*partydomain.Party, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, partydomain.ErrInvalidTenant
	}

	partyID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, partydomain.ErrInvalidID
	}

	item, err := s.repo.FindOne(ctx, &partydomain.Party{ID: partyID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, partydomain.ErrNotFound
	}
	return item, nil
}

func toResponse(p *partydomain.Party) partydomain.Response {
	resp := partydomain.Response{
		ID:        p.ID.String(),
		Name:      p.Name,
		Type:      p.Type,
		GSTIN:     p.GSTIN,
		StateCode: p.StateCode,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
	}
	if pan, err := gst.PAN(p.GSTIN); err == nil {
		resp.EntityType = string(gst.EntityTypeHint(pan))
	}
	return resp
}

func normalizeType(value partydomain.PartyType) partydomain.PartyType {
	return partydomain.PartyType(strings.ToLower(strings.TrimSpace(string(value))))
}
