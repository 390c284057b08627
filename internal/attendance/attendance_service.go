package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/attendance/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "attendance"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	poster ledger.Poster
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, poster: poster, logger: l}
}

type shift struct {
	date     time.Time
	checkIn  time.Time
	checkOut *time.Time
}

func parseShift(date, checkIn string, checkOut *string) (shift, error) {
	if strings.TrimSpace(checkIn) == "" {
		return shift{}, attendanceerrors.ErrCheckInRequired
	}
	in, err := dateutil.ParseDateTime(checkIn)
	if err != nil {
		return shift{}, attendanceerrors.ErrInvalidCheckIn
	}
	out, err := dateutil.ParseOptionalDateTime(checkOut)
	if err != nil {
		return shift{}, attendanceerrors.ErrInvalidCheckOut
	}

	day, err := dateutil.ParseDateOr(date, dateutil.DateOf(in))
	if err != nil {
		return shift{}, attendanceerrors.ErrInvalidDate
	}

	in = in.UTC()
	if out != nil {
		utc := out.UTC()
		out = &utc
	}

	return shift{date: day, checkIn: in, checkOut: out}, nil
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create attendance requested", zap.String("employee_id", req.EmployeeID))

	employeeID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	sh, err := parseShift(req.Date, req.CheckIn, req.CheckOut)
	if err != nil {
		log.Warn("create attendance validation failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       sh.date,
		CheckIn:    sh.checkIn,
		CheckOut:   sh.checkOut,
		Notes:      strings.TrimSpace(req.Notes),
	}

	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		emp, err := s.findEmployee(ctx, qtx, employeeID)
		if err != nil {
			return err
		}
		row.AppliedPay = ledger.AttendancePay(sh.checkIn, sh.checkOut, emp.DailySalary)
		row.Employee = emp

		if err := qtx.Create(ctx, row); err != nil {
			log.Error("create attendance persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Create("attendance.created",
			ledger.AttendanceContribution(employeeID, row.AppliedPay),
		).From(sourceType, row.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("create attendance success",
		zap.String("attendance_id", row.ID.String()),
		zap.String("applied_pay", row.AppliedPay.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error) {
	filter.EmployeeID = strings.TrimSpace(filter.EmployeeID)
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}
	q := Query{EmployeeID: filter.EmployeeID}
	if filter.From != "" {
		from, err := dateutil.ParseDate(filter.From)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		q.From = &from
	}
	if filter.To != "" {
		to, err := dateutil.ParseDate(filter.To)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		q.To = &to
	}

	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all attendances failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// Update recomputes pay from the new times and moves the budget by the
// difference to the stored applied pay.
func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update attendance requested", zap.String("attendance_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	sh, err := parseShift(req.Date, req.CheckIn, req.CheckOut)
	if err != nil {
		log.Warn("update attendance validation failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	var row *Attendance
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		emp, err := s.findEmployee(ctx, qtx, cur.EmployeeID)
		if err != nil {
			return err
		}

		prevPay := cur.AppliedPay
		cur.Date = sh.date
		cur.CheckIn = sh.checkIn
		cur.CheckOut = sh.checkOut
		cur.Notes = strings.TrimSpace(req.Notes)
		cur.AppliedPay = ledger.AttendancePay(sh.checkIn, sh.checkOut, emp.DailySalary)

		if err := qtx.Update(ctx, cur); err != nil {
			log.Error("update attendance persist failed", zap.Error(err))
			return err
		}

		plan := ledger.Diff("attendance.updated",
			ledger.AttendanceContribution(cur.EmployeeID, prevPay),
			ledger.AttendanceContribution(cur.EmployeeID, cur.AppliedPay),
		).From(sourceType, cur.ID)
		if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
			return err
		}

		cur.Employee = emp
		row = cur
		return nil
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	log.Info("update attendance success",
		zap.String("attendance_id", id),
		zap.String("applied_pay", row.AppliedPay.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	err := dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)

		cur, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := qtx.Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		plan := ledger.Reverse("attendance.deleted",
			ledger.AttendanceContribution(cur.EmployeeID, cur.AppliedPay),
		).From(sourceType, cur.ID)
		_, err = s.poster.WithTx(tx).Apply(ctx, plan)
		return err
	})
	if err != nil {
		log.Warn("delete attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return err
	}

	log.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func (s *service) findEmployee(ctx context.Context, qtx Repository, id uuid.UUID) (*domain.EmployeeRef, error) {
	emp, err := qtx.FindEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       dateutil.FormatDate(a.Date),
		CheckIn:    dateutil.FormatDateTime(a.CheckIn),
		CheckOut:   dateutil.FormatOptional(a.CheckOut, dateutil.DateTimeLayout),
		AppliedPay: a.AppliedPay,
		Notes:      a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
