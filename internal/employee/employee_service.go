package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/events"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = time.Hour
	dateLayout         = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

type profile struct {
	fullName    string
	jobTitle    string
	phone       string
	nationalID  *string
	dailySalary decimal.Decimal
	hiredAt     *time.Time
}

func validateProfile(fullName, jobTitle, phone string, nationalID *string, dailySalary decimal.Decimal, hiredAt string) (profile, error) {
	p := profile{
		fullName:    strings.TrimSpace(fullName),
		jobTitle:    strings.TrimSpace(jobTitle),
		phone:       strings.TrimSpace(phone),
		dailySalary: dailySalary,
	}
	if p.fullName == "" {
		return profile{}, employeeerrors.ErrFullNameRequired
	}
	if !dailySalary.IsPositive() {
		return profile{}, employeeerrors.ErrInvalidDailySalary
	}
	if nationalID != nil {
		if v := strings.TrimSpace(*nationalID); v != "" {
			p.nationalID = &v
		}
	}
	if hiredAt != "" {
		t, err := time.Parse(dateLayout, hiredAt)
		if err != nil {
			return profile{}, employeeerrors.ErrInvalidHiredAt
		}
		p.hiredAt = &t
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("full_name", req.FullName))

	p, err := validateProfile(req.FullName, req.JobTitle, req.Phone, req.NationalID, req.DailySalary, req.HiredAt)
	if err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:          uuid.New(),
		FullName:    p.fullName,
		JobTitle:    p.jobTitle,
		Phone:       p.phone,
		NationalID:  p.nationalID,
		DailySalary: p.dailySalary,
		Budget:      decimal.Zero,
		HiredAt:     p.hiredAt,
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
			log.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if s.outbox == nil {
			return nil
		}

		event, err := kafka.NewEvent(rid, "employee", empl.ID.String(),
			events.EmployeeCreatedEventType, events.EmployeeLifecycleTopic,
			events.EmployeeCreatedEvent{
				EventType:   events.EmployeeCreatedEventType,
				EmployeeID:  empl.ID.String(),
				FullName:    empl.FullName,
				DailySalary: empl.DailySalary.String(),
				OccurredAt:  time.Now().UTC(),
			},
		)
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent cache misses into one query.
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), FullName: e.FullName, JobTitle: e.JobTitle}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, payload, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	p, err := validateProfile(req.FullName, req.JobTitle, req.Phone, req.NationalID, req.DailySalary, req.HiredAt)
	if err != nil {
		log.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		found, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		found.FullName = p.fullName
		found.JobTitle = p.jobTitle
		found.Phone = p.phone
		found.NationalID = p.nationalID
		found.DailySalary = p.dailySalary
		found.HiredAt = p.hiredAt

		if err := qtx.Update(ctx, found); err != nil {
			log.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		empl = found
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	log.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	// Ledger rows pointing at the employee must be removed first.
	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !cur.Budget.IsZero() {
			return employeeerrors.ErrEmployeeHasBalance
		}
		inUse, err := qtx.HasRecords(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return employeeerrors.ErrEmployeeHasRecords
		}
		return mapRepositoryError(qtx.Delete(ctx, id))
	})
	if err != nil {
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	log.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:          empl.ID.String(),
		FullName:    empl.FullName,
		JobTitle:    empl.JobTitle,
		Phone:       empl.Phone,
		NationalID:  empl.NationalID,
		DailySalary: empl.DailySalary,
		Budget:      empl.Budget,
		CreatedAt:   empl.CreatedAt.Format(time.RFC3339),
	}
	if empl.HiredAt != nil {
		resp.HiredAt = empl.HiredAt.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
