package service

import (
	"context"
	"strings"
	"time"

	"github.com/bharatbooks/bharatbooks/internal/docnum"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
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
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	accountRepo repository.Repository[voucherdomain.LedgerAccount]
	voucherRepo repository.Repository[voucherdomain.Voucher]
}

func NewService(p Params) voucherdomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("voucher.service"),
		genID:       p.GenID,
		accountRepo: repository.ProvideStore[voucherdomain.LedgerAccount](p.DB),
		voucherRepo: repository.ProvideStore[voucherdomain.Voucher](p.DB),
	}
}

func (s *Service) CreateAccount(ctx context.Context, req voucherdomain.CreateAccountRequest) (*voucherdomain.AccountResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, voucherdomain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, voucherdomain.ErrInvalidName
	}
	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		return nil, voucherdomain.ErrInvalidCode
	}
	kind := voucherdomain.AccountKind(strings.ToLower(strings.TrimSpace(string(req.Kind))))
	if !voucherdomain.ValidAccountKind(kind) {
		return nil, voucherdomain.ErrInvalidAccountKind
	}

	record := &voucherdomain.LedgerAccount{
		ID:        s.genID.Generate(),
		TenantID:  tenantID,
		Code:      code,
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accountRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := toAccountResponse(record)
	return &resp, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]voucherdomain.AccountResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, voucherdomain.ErrInvalidTenant
	}

	items, err := s.accountRepo.Find(ctx, &voucherdomain.LedgerAccount{TenantID: tenantID})
	if err != nil {
		return nil, err
	}

	resp := make([]voucherdomain.AccountResponse, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		resp = append(resp, toAccountResponse(item))
	}
	return resp, nil
}

func (s *Service) CreateVoucher(ctx context.Context, req voucherdomain.CreateVoucherRequest) (*voucherdomain.VoucherResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, voucherdomain.ErrInvalidTenant
	}

	voucherType := voucherdomain.VoucherType(strings.ToLower(strings.TrimSpace(string(req.Type))))
	if !voucherdomain.ValidVoucherType(voucherType) {
		return nil, voucherdomain.ErrInvalidVoucherType
	}
	if req.Date.IsZero() {
		return nil, voucherdomain.ErrInvalidDate
	}

	var partyID *snowflake.ID
	if req.PartyID != nil && strings.TrimSpace(*req.PartyID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.PartyID))
		if err != nil {
			return nil, voucherdomain.ErrInvalidID
		}
		partyID = &parsed
	}

	entries := make([]voucherdomain.VoucherEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		accountID, err := snowflake.ParseString(strings.TrimSpace(e.AccountID))
		if err != nil {
			return nil, voucherdomain.ErrInvalidAccount
		}
		direction := voucherdomain.EntryDirection(strings.ToLower(strings.TrimSpace(string(e.Direction))))
		if direction != voucherdomain.EntryDirectionDebit && direction != voucherdomain.EntryDirectionCredit {
			return nil, voucherdomain.ErrInvalidDirection
		}
		if e.Amount < 0 {
			return nil, voucherdomain.ErrInvalidEntryAmount
		}
		entries = append(entries, voucherdomain.VoucherEntry{
			AccountID: accountID,
			Direction: direction,
			Amount:    e.Amount,
		})
	}
	if err := voucherdomain.ValidateBalanced(entries); err != nil {
		return nil, err
	}

	accounts, err := s.loadAccounts(ctx, tenantID, entries)
	if err != nil {
		return nil, err
	}

	var created voucherdomain.Voucher
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := docnum.NextSeq(ctx, tx, tenantID, docnum.KindVoucher)
		if err != nil {
			return err
		}
		number, err := docnum.Format(docnum.VoucherTemplates[string(voucherType)], req.Date, seq)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		created = voucherdomain.Voucher{
			ID:            s.genID.Generate(),
			TenantID:      tenantID,
			VoucherNumber: number,
			SeqNo:         seq,
			Type:          voucherType,
			Date:          req.Date.UTC(),
			PartyID:       partyID,
			Narration:     strings.TrimSpace(req.Narration),
			CreatedAt:     now,
		}
		if err := tx.WithContext(ctx).Create(&created).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = s.genID.Generate()
			entries[i].VoucherID = created.ID
			entries[i].CreatedAt = now
		}
		return tx.WithContext(ctx).Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("voucher created",
		zap.String("voucher_number", created.VoucherNumber),
		zap.String("type", string(created.Type)),
	)

	resp := s.toVoucherResponse(&created, entries, accounts)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req voucherdomain.ListRequest) ([]voucherdomain.VoucherResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, voucherdomain.ErrInvalidTenant
	}

	stmt := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if req.Type != "" {
		stmt = stmt.Where("type = ?", strings.ToLower(strings.TrimSpace(string(req.Type))))
	}
	if req.From != nil {
		stmt = stmt.Where("date >= ?", req.From.UTC())
	}
	if req.To != nil {
		stmt = stmt.Where("date <= ?", req.To.UTC())
	}

	var vouchers []voucherdomain.Voucher
	if err := stmt.Order("date ASC, seq_no ASC").Find(&vouchers).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, tenantID, vouchers)
}

func (s *Service) GetByID(ctx context.Context, id string) (*voucherdomain.VoucherResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, voucherdomain.ErrInvalidTenant
	}

	voucherID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, voucherdomain.ErrInvalidID
	}

	item, err := s.voucherRepo.FindOne(ctx, &voucherdomain.Voucher{ID: voucherID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, voucherdomain.ErrNotFound
	}

	expanded, err := s.expand(ctx, tenantID, []voucherdomain.Voucher{*item})
	if err != nil {
		return nil, err
	}
	return &expanded[0], nil
}

// expand attaches entries and account metadata to voucher headers.
func (s *Service) expand(ctx context.Context, tenantID snowflake.ID, vouchers []voucherdomain.Voucher) ([]voucherdomain.VoucherResponse, error) {
	if len(vouchers) == 0 {
		return []voucherdomain.VoucherResponse{}, nil
	}

	ids := make([]snowflake.ID, 0, len(vouchers))
	for _, v := range vouchers {
		ids = append(ids, v.ID)
	}

	var entries []voucherdomain.VoucherEntry
	if err := s.db.WithContext(ctx).
		Where("voucher_id IN ?", ids).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	accounts, err := s.loadAccounts(ctx, tenantID, entries)
	if err != nil {
		return nil, err
	}

	byVoucher := make(map[snowflake.ID][]voucherdomain.VoucherEntry, len(vouchers))
	for _, e := range entries {
		byVoucher[e.VoucherID] = append(byVoucher[e.VoucherID], e)
	}

	resp := make([]voucherdomain.VoucherResponse, 0, len(vouchers))
	for i := range vouchers {
		v := &vouchers[i]
		resp = append(resp, s.toVoucherResponse(v, byVoucher[v.ID], accounts))
	}
	return resp, nil
}

func (s *Service) loadAccounts(ctx context.Context, tenantID snowflake.ID, entries []voucherdomain.VoucherEntry) (map[snowflake.ID]voucherdomain.LedgerAccount, error) {
	result := make(map[snowflake.ID]voucherdomain.LedgerAccount)
	if len(entries) == 0 {
		return result, nil
	}

	ids := make([]snowflake.ID, 0, len(entries))
	seen := make(map[snowflake.ID]bool, len(entries))
	for _, e := range entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			ids = append(ids, e.AccountID)
		}
	}

	var accounts []voucherdomain.LedgerAccount
	if err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	if len(accounts) != len(ids) {
		return nil, voucherdomain.ErrInvalidAccount
	}

	for _, acc := range accounts {
		result[acc.ID] = acc
	}
	return result, nil
}

func (s *Service) toVoucherResponse(v *voucherdomain.Voucher, entries []voucherdomain.VoucherEntry, accounts map[snowflake.ID]voucherdomain.LedgerAccount) voucherdomain.VoucherResponse {
	resp := voucherdomain.VoucherResponse{
		ID:            v.ID.String(),
		VoucherNumber: v.VoucherNumber,
		Type:          v.Type,
		Date:          v.Date,
		Narration:     v.Narration,
		Entries:       make([]voucherdomain.EntryResponse, 0, len(entries)),
	}
	if v.PartyID != nil {
		resp.PartyID = v.PartyID.String()
	}
	for _, e := range entries {
		acc := accounts[e.AccountID]
		resp.Entries = append(resp.Entries, voucherdomain.EntryResponse{
			AccountID:   e.AccountID.String(),
			AccountName: acc.Name,
			AccountKind: acc.Kind,
			Direction:   e.Direction,
			Amount:      e.Amount,
		})
	}
	return resp
}

func toAccountResponse(a *voucherdomain.LedgerAccount) voucherdomain.AccountResponse {
	return voucherdomain.AccountResponse{
		ID:   a.ID.String(),
		Name: a.Name,
		Code: a.Code,
		Kind: a.Kind,
	}
}
