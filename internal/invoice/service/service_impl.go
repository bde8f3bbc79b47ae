package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bharatbooks/bharatbooks/internal/docnum"
	"github.com/bharatbooks/bharatbooks/internal/gst"
	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	"github.com/bharatbooks/bharatbooks/pkg/repository"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
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
	invoiceRepo repository.Repository[invoicedomain.Invoice]
	partyRepo   repository.Repository[partydomain.Party]
}

func NewService(p Params) invoicedomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("invoice.service"),
		genID:       p.GenID,
		invoiceRepo: repository.ProvideStore[invoicedomain.Invoice](p.DB),
		partyRepo:   repository.ProvideStore[partydomain.Party](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateRequest) (*invoicedomain.InvoiceResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, invoicedomain.ErrInvalidTenant
	}

	if len(req.Lines) == 0 {
		return nil, invoicedomain.ErrNoLines
	}
	if req.InvoiceDate.IsZero() {
		return nil, invoicedomain.ErrInvalidDate
	}

	partyID, err := snowflake.ParseString(strings.TrimSpace(req.PartyID))
	if err != nil {
		return nil, invoicedomain.ErrInvalidParty
	}
	party, err := s.partyRepo.FindOne(ctx, &partydomain.Party{ID: partyID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, invoicedomain.ErrInvalidParty
	}

	var tenant tenantdomain.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, "id = ?", tenantID).Error; err != nil {
		return nil, invoicedomain.ErrInvalidTenant
	}

	// Supply classification is computed once, at issue time, and stored.
	supply := gst.Classify(tenant.StateCode, party.StateCode)

	lines, err := s.buildLines(ctx, tenantID, req.Lines, supply)
	if err != nil {
		return nil, err
	}

	var subtotal, cgst, sgst, igst float64
	for _, l := range lines {
		subtotal += l.Amount
		cgst += l.CGST
		sgst += l.SGST
		igst += l.IGST
	}
	totalTax := cgst + sgst + igst
	grandTotal := gst.RoundRupees(subtotal + totalTax)
	roundOff := grandTotal - (subtotal + totalTax)

	var created invoicedomain.Invoice
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := docnum.NextSeq(ctx, tx, tenantID, docnum.KindInvoice)
		if err != nil {
			return err
		}
		number, err := docnum.Format(docnum.DefaultInvoiceTemplate, req.InvoiceDate, seq)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		created = invoicedomain.Invoice{
			ID:            s.genID.Generate(),
			TenantID:      tenantID,
			PartyID:       party.ID,
			InvoiceNumber: number,
			SeqNo:         seq,
			InvoiceDate:   req.InvoiceDate.UTC(),
			SupplyType:    supply,
			Subtotal:      subtotal,
			CGST:          cgst,
			SGST:          sgst,
			IGST:          igst,
			TotalTax:      totalTax,
			GrandTotal:    grandTotal,
			RoundOff:      roundOff,
			AmountInWords: gst.AmountInWords(grandTotal),
			Status:        invoicedomain.InvoiceStatusIssued,
			Metadata:      req.Metadata,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.WithContext(ctx).Create(&created).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].ID = s.genID.Generate()
			lines[i].InvoiceID = created.ID
			lines[i].CreatedAt = now
		}
		if err := tx.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}

		return s.postToLedger(ctx, tx, &created)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice issued",
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("supply_type", string(created.SupplyType)),
		zap.Float64("grand_total", created.GrandTotal),
	)

	resp := toResponse(&created, lines, party.Name)
	return &resp, nil
}

// buildLines recomputes every derived line figure from quantity, rate and the
// line's own GST rate. The split happens per line; rounding does not.
func (s *Service) buildLines(ctx context.Context, tenantID snowflake.ID, reqs []invoicedomain.LineRequest, supply gst.SupplyType) ([]invoicedomain.InvoiceLine, error) {
	lines := make([]invoicedomain.InvoiceLine, 0, len(reqs))
	for i, lr := range reqs {
		line := invoicedomain.InvoiceLine{
			Position:       i + 1,
			Description:    strings.TrimSpace(lr.Description),
			HSNCode:        strings.TrimSpace(lr.HSNCode),
			Quantity:       lr.Quantity,
			Unit:           strings.TrimSpace(lr.Unit),
			Rate:           lr.Rate,
			GSTRatePercent: lr.GSTRatePercent,
		}

		if lr.ItemID != nil && strings.TrimSpace(*lr.ItemID) != "" {
			itemID, err := snowflake.ParseString(strings.TrimSpace(*lr.ItemID))
			if err != nil {
				return nil, invoicedomain.ErrInvalidItem
			}
			var item itemdomain.Item
			if err := s.db.WithContext(ctx).
				First(&item, "id = ? AND tenant_id = ?", itemID, tenantID).Error; err != nil {
				return nil, invoicedomain.ErrInvalidItem
			}
			line.ItemID = &item.ID
			if line.Description == "" {
				line.Description = item.Name
			}
			if line.HSNCode == "" {
				line.HSNCode = item.HSNCode
			}
			if line.Unit == "" {
				line.Unit = item.Unit
			}
			if line.Rate == 0 {
				line.Rate = item.Rate
			}
			if line.GSTRatePercent == 0 {
				line.GSTRatePercent = item.GSTRatePercent
			}
		}

		if line.Description == "" {
			return nil, invoicedomain.ErrBlankDescription
		}

		line.Amount = line.Quantity * line.Rate
		split := gst.SplitTax(line.Amount, line.GSTRatePercent, supply)
		line.CGST = split.CGST
		line.SGST = split.SGST
		line.IGST = split.IGST
		lines = append(lines, line)
	}
	return lines, nil
}

// postToLedger records the sales posting for an issued invoice inside the
// issuing transaction: debit Sundry Debtors for the grand total, credit Sales
// for subtotal plus round-off, credit the output GST accounts for the tax.
func (s *Service) postToLedger(ctx context.Context, tx *gorm.DB, inv *invoicedomain.Invoice) error {
	accounts, err := s.accountsByCode(ctx, tx, inv.TenantID,
		voucherdomain.AccountCodeSundryDebtors,
		voucherdomain.AccountCodeSales,
		voucherdomain.AccountCodeCGSTOutput,
		voucherdomain.AccountCodeSGSTOutput,
		voucherdomain.AccountCodeIGSTOutput,
	)
	if err != nil {
		return err
	}

	seq, err := docnum.NextSeq(ctx, tx, inv.TenantID, docnum.KindVoucher)
	if err != nil {
		return err
	}
	number, err := docnum.Format(docnum.VoucherTemplates[string(voucherdomain.VoucherTypeSales)], inv.InvoiceDate, seq)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	voucher := voucherdomain.Voucher{
		ID:            s.genID.Generate(),
		TenantID:      inv.TenantID,
		VoucherNumber: number,
		SeqNo:         seq,
		Type:          voucherdomain.VoucherTypeSales,
		Date:          inv.InvoiceDate,
		PartyID:       &inv.PartyID,
		Narration:     "Sales against invoice " + inv.InvoiceNumber,
		CreatedAt:     now,
	}
	if err := tx.WithContext(ctx).Create(&voucher).Error; err != nil {
		return err
	}

	entries := []voucherdomain.VoucherEntry{
		{
			AccountID: accounts[voucherdomain.AccountCodeSundryDebtors],
			Direction: voucherdomain.EntryDirectionDebit,
			Amount:    inv.GrandTotal,
		},
		{
			AccountID: accounts[voucherdomain.AccountCodeSales],
			Direction: voucherdomain.EntryDirectionCredit,
			Amount:    inv.Subtotal + inv.RoundOff,
		},
	}
	if inv.CGST != 0 {
		entries = append(entries, voucherdomain.VoucherEntry{
			AccountID: accounts[voucherdomain.AccountCodeCGSTOutput],
			Direction: voucherdomain.EntryDirectionCredit,
			Amount:    inv.CGST,
		})
	}
	if inv.SGST != 0 {
		entries = append(entries, voucherdomain.VoucherEntry{
			AccountID: accounts[voucherdomain.AccountCodeSGSTOutput],
			Direction: voucherdomain.EntryDirectionCredit,
			Amount:    inv.SGST,
		})
	}
	if inv.IGST != 0 {
		entries = append(entries, voucherdomain.VoucherEntry{
			AccountID: accounts[voucherdomain.AccountCodeIGSTOutput],
			Direction: voucherdomain.EntryDirectionCredit,
			Amount:    inv.IGST,
		})
	}

	if err := voucherdomain.ValidateBalanced(entries); err != nil {
		return err
	}

	for i := range entries {
		entries[i].ID = s.genID.Generate()
		entries[i].VoucherID = voucher.ID
		entries[i].CreatedAt = now
	}
	return tx.WithContext(ctx).Create(&entries).Error
}

func (s *Service) accountsByCode(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, codes ...string) (map[string]snowflake.ID, error) {
	var accounts []voucherdomain.LedgerAccount
	if err := tx.WithContext(ctx).
		Where("tenant_id = ? AND code IN ?", tenantID, codes).
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	if len(accounts) != len(codes) {
		return nil, invoicedomain.ErrMissingLedgerSetup
	}
	result := make(map[string]snowflake.ID, len(accounts))
	for _, acc := range accounts {
		result[acc.Code] = acc.ID
	}
	return result, nil
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListRequest) ([]invoicedomain.InvoiceResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, invoicedomain.ErrInvalidTenant
	}

	stmt := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if strings.TrimSpace(req.PartyID) != "" {
		partyID, err := snowflake.ParseString(strings.TrimSpace(req.PartyID))
		if err != nil {
			return nil, invoicedomain.ErrInvalidParty
		}
		stmt = stmt.Where("party_id = ?", partyID)
	}
	if req.Status != "" {
		stmt = stmt.Where("status = ?", req.Status)
	}
	if req.From != nil {
		stmt = stmt.Where("invoice_date >= ?", req.From.UTC())
	}
	if req.To != nil {
		stmt = stmt.Where("invoice_date <= ?", req.To.UTC())
	}

	var invoices []invoicedomain.Invoice
	if err := stmt.Order("invoice_date ASC, seq_no ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	resp := make([]invoicedomain.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		lines, err := s.linesFor(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, toResponse(inv, lines, s.partyName(ctx, tenantID, inv.PartyID)))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*invoicedomain.InvoiceResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, invoicedomain.ErrInvalidTenant
	}

	inv, err := s.findOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.linesFor(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(inv, lines, s.partyName(ctx, tenantID, inv.PartyID))
	return &resp, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (*invoicedomain.InvoiceResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, invoicedomain.ErrInvalidTenant
	}

	inv, err := s.findOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == invoicedomain.InvoiceStatusCancelled {
		return nil, invoicedomain.ErrAlreadyCancelled
	}

	inv.Status = invoicedomain.InvoiceStatusCancelled
	inv.UpdatedAt = time.Now().UTC()
	if err := s.invoiceRepo.Update(ctx, inv.ID.String(), map[string]any{
		"status":     inv.Status,
		"updated_at": inv.UpdatedAt,
	}); err != nil {
		return nil, err
	}

	s.log.Info("invoice cancelled", zap.String("invoice_number", inv.InvoiceNumber))

	lines, err := s.linesFor(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(inv, lines, s.partyName(ctx, tenantID, inv.PartyID))
	return &resp, nil
}

func (s *Service) findOwned(ctx context.Context, tenantID snowflake.ID, id string) (*invoicedomain.Invoice, error) {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, invoicedomain.ErrInvalidID
	}

	inv, err := s.invoiceRepo.FindOne(ctx, &invoicedomain.Invoice{ID: invoiceID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, invoicedomain.ErrNotFound
	}
	return inv, nil
}

func (s *Service) linesFor(ctx context.Context, invoiceID snowflake.ID) ([]invoicedomain.InvoiceLine, error) {
	var lines []invoicedomain.InvoiceLine
	if err := s.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("position ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) partyName(ctx context.Context, tenantID, partyID snowflake.ID) string {
	party, err := s.partyRepo.FindOne(ctx, &partydomain.Party{ID: partyID, TenantID: tenantID})
	if err != nil || party == nil {
		return ""
	}
	return party.Name
}

func toResponse(inv *invoicedomain.Invoice, lines []invoicedomain.InvoiceLine, partyName string) invoicedomain.InvoiceResponse {
	resp := invoicedomain.InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		PartyID:       inv.PartyID.String(),
		PartyName:     partyName,
		InvoiceDate:   inv.InvoiceDate,
		SupplyType:    inv.SupplyType,
		Subtotal:      inv.Subtotal,
		CGST:          inv.CGST,
		SGST:          inv.SGST,
		IGST:          inv.IGST,
		TotalTax:      inv.TotalTax,
		GrandTotal:    inv.GrandTotal,
		RoundOff:      inv.RoundOff,
		AmountInWords: inv.AmountInWords,
		Status:        inv.Status,
		Lines:         make([]invoicedomain.LineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, invoicedomain.LineResponse{
			Position:       l.Position,
			Description:    l.Description,
			HSNCode:        l.HSNCode,
			Quantity:       l.Quantity,
			Unit:           l.Unit,
			Rate:           l.Rate,
			Amount:         l.Amount,
			GSTRatePercent: l.GSTRatePercent,
			CGST:           l.CGST,
			SGST:           l.SGST,
			IGST:           l.IGST,
		})
	}
	return resp
}
