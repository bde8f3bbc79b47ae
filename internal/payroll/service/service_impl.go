package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bharatbooks/bharatbooks/internal/clock"
	"github.com/bharatbooks/bharatbooks/internal/config"
	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
	"github.com/bharatbooks/bharatbooks/pkg/repository"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Cfg   config.Config
	Clock clock.Clock
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	rates        payrolldomain.Rates
	employeeRepo repository.Repository[payrolldomain.Employee]
}

func NewService(p Params) payrolldomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("payroll.service"),
		genID: p.GenID,
		clock: p.Clock,
		rates: payrolldomain.Rates{
			BasicRatio:   p.Cfg.Payroll.BasicRatio,
			HRARatio:     p.Cfg.Payroll.HRARatio,
			SpecialRatio: p.Cfg.Payroll.SpecialRatio,
			PFRate:       p.Cfg.Payroll.PFRate,
			PTAmount:     p.Cfg.Payroll.PTAmount,
		},
		employeeRepo: repository.ProvideStore[payrolldomain.Employee](p.DB),
	}
}

func (s *Service) CreateEmployee(ctx context.Context, req payrolldomain.EmployeeRequest) (*payrolldomain.EmployeeResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, payrolldomain.ErrInvalidName
	}

	now := s.clock.Now()
	record := &payrolldomain.Employee{
		ID:          s.genID.Generate(),
		TenantID:    tenantID,
		Name:        name,
		Designation: strings.TrimSpace(req.Designation),
		JoiningDate: req.JoiningDate,
		Salary:      req.Salary,
		Basic:       req.Basic,
		HRA:         req.HRA,
		Special:     req.Special,
		PF:          req.PF,
		PT:          req.PT,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.employeeRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	resp := toEmployeeResponse(record)
	return &resp, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]payrolldomain.EmployeeResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}

	items, err := s.employeeRepo.Find(ctx, &payrolldomain.Employee{TenantID: tenantID})
	if err != nil {
		return nil, err
	}

	resp := make([]payrolldomain.EmployeeResponse, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		resp = append(resp, toEmployeeResponse(item))
	}
	return resp, nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*payrolldomain.EmployeeResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}

	record, err := s.findOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	resp := toEmployeeResponse(record)
	return &resp, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, req payrolldomain.EmployeeRequest) (*payrolldomain.EmployeeResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}

	record, err := s.findOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		record.Name = name
	}
	if req.Designation != "" {
		record.Designation = strings.TrimSpace(req.Designation)
	}
	if req.JoiningDate != nil {
		record.JoiningDate = req.JoiningDate
	}
	if req.Salary != nil {
		record.Salary = req.Salary
	}
	if req.Basic != nil {
		record.Basic = req.Basic
	}
	if req.HRA != nil {
		record.HRA = req.HRA
	}
	if req.Special != nil {
		record.Special = req.Special
	}
	if req.PF != nil {
		record.PF = req.PF
	}
	if req.PT != nil {
		record.PT = req.PT
	}
	record.UpdatedAt = s.clock.Now()

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}

	resp := toEmployeeResponse(record)
	return &resp, nil
}

// Generate computes and inserts the period's payroll for every employee.
// The insert ignores conflicts on the (tenant, employee, month, year) unique
// index, so a rerun skips existing records atomically instead of racing a
// lookup. gorm renders the conflict clause for whichever dialect is active.
func (s *Service) Generate(ctx context.Context, month, year int) (*payrolldomain.GenerateResult, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, payrolldomain.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.Find(ctx, &payrolldomain.Employee{TenantID: tenantID})
	if err != nil {
		return nil, err
	}

	period := periodLabel(month, year)
	result := &payrolldomain.GenerateResult{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, emp := range employees {
			if emp == nil {
				continue
			}
			breakdown := payrolldomain.Compute(emp, s.rates)
			record := payrolldomain.PayrollRecord{
				ID:              s.genID.Generate(),
				TenantID:        tenantID,
				EmployeeID:      emp.ID,
				Period:          period,
				Month:           month,
				Year:            year,
				Basic:           breakdown.Basic,
				HRA:             breakdown.HRA,
				Special:         breakdown.Special,
				PF:              breakdown.PF,
				PT:              breakdown.PT,
				TotalEarnings:   breakdown.TotalEarnings(),
				TotalDeductions: breakdown.TotalDeductions(),
				NetSalary:       breakdown.Net(),
				CreatedAt:       s.clock.Now(),
			}

			res := tx.WithContext(ctx).Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "tenant_id"}, {Name: "employee_id"},
					{Name: "month"}, {Name: "year"},
				},
				DoNothing: true,
			}).Create(&record)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				result.SkippedCount++
				continue
			}

			components := breakdown.Components()
			for i := range components {
				components[i].ID = s.genID.Generate()
				components[i].RecordID = record.ID
			}
			if err := tx.WithContext(ctx).Create(&components).Error; err != nil {
				return err
			}
			result.CreatedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("payroll generated",
		zap.String("period", period),
		zap.Int("created", result.CreatedCount),
		zap.Int("skipped", result.SkippedCount),
	)
	return result, nil
}

func (s *Service) ListRecords(ctx context.Context, month, year int) ([]payrolldomain.RecordResponse, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, payrolldomain.ErrInvalidTenant
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, payrolldomain.ErrInvalidPeriod
	}

	var records []payrolldomain.PayrollRecord
	if err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND month = ? AND year = ?", tenantID, month, year).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	resp := make([]payrolldomain.RecordResponse, 0, len(records))
	for i := range records {
		r := &records[i]

		var components []payrolldomain.PayrollComponent
		if err := s.db.WithContext(ctx).
			Where("record_id = ?", r.ID).
			Order("position ASC").
			Find(&components).Error; err != nil {
			return nil, err
		}

		item := payrolldomain.RecordResponse{
			ID:              r.ID.String(),
			EmployeeID:      r.EmployeeID.String(),
			Period:          r.Period,
			Month:           r.Month,
			Year:            r.Year,
			Basic:           r.Basic,
			HRA:             r.HRA,
			Special:         r.Special,
			PF:              r.PF,
			PT:              r.PT,
			TotalEarnings:   r.TotalEarnings,
			TotalDeductions: r.TotalDeductions,
			NetSalary:       r.NetSalary,
			Components:      make([]payrolldomain.ComponentResponse, 0, len(components)),
		}
		if emp, err := s.employeeRepo.FindOne(ctx, &payrolldomain.Employee{ID: r.EmployeeID, TenantID: tenantID}); err == nil && emp != nil {
			item.EmployeeName = emp.Name
		}
		for _, c := range components {
			item.Components = append(item.Components, payrolldomain.ComponentResponse{
				Name:   c.Name,
				Type:   c.Type,
				Amount: c.Amount,
			})
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *Service) findOwned(ctx context.Context, tenantID snowflake.ID, id string) (*payrolldomain.Employee, error) {
	employeeID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, payrolldomain.ErrInvalidID
	}

	record, err := s.employeeRepo.FindOne(ctx, &payrolldomain.Employee{ID: employeeID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, payrolldomain.ErrNotFound
	}
	return record, nil
}

// periodLabel is the payslip period key, e.g. "Apr-2024". This format is part
// of the stored unique record identity and stays distinct from the API label.
func periodLabel(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan-2006")
}

func toEmployeeResponse(e *payrolldomain.Employee) payrolldomain.EmployeeResponse {
	return payrolldomain.EmployeeResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Designation: e.Designation,
		JoiningDate: e.JoiningDate,
		Salary:      e.Salary,
		Basic:       e.Basic,
		HRA:         e.HRA,
		Special:     e.Special,
		PF:          e.PF,
		PT:          e.PT,
	}
}
