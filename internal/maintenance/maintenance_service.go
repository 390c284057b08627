package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/domain"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	maintenanceerrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sourceType = "maintenance"

//go:generate mockgen -source=maintenance_service.go -destination=mock/maintenance_service_mock.go -package=mock
type Service interface {
	Send(ctx context.Context, req SendRequest) (MaintenanceResponse, error)
	Return(ctx context.Context, id string, req ReturnRequest) (MaintenanceResponse, error)
	GetAll(ctx context.Context, filter MaintenanceFilter) ([]MaintenanceResponse, error)
	GetByID(ctx context.Context, id string) (MaintenanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	equipment equipment.Repository
	poster    ledger.Poster
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, equipmentRepo equipment.Repository, poster ledger.Poster, logger ...*zap.Logger) Service {
	l := zap.L().Named("maintenance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("maintenance.service")
	}
	return &service{db: db, repo: repo, equipment: equipmentRepo, poster: poster, logger: l}
}

// Send moves quantity items of an available row into maintenance. Sending the
// whole row flips its status; sending part of it splits off a new row.
func (s *service) Send(ctx context.Context, req SendRequest) (MaintenanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("send to maintenance requested",
		zap.String("equipment_id", req.EquipmentID),
		zap.Int("quantity", req.Quantity),
	)

	if _, err := uuid.Parse(req.EquipmentID); err != nil {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidEquipmentID
	}
	if req.Quantity <= 0 {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidQuantity
	}
	sentAt, err := dateutil.ParseDateOr(req.SentAt, dateutil.Today())
	if err != nil {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidDate
	}

	var m *Maintenance
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		eqtx := s.equipment.WithTx(tx)

		src, err := eqtx.FindByIDForUpdate(ctx, req.EquipmentID)
		if err != nil {
			return mapEquipmentError(err)
		}
		if src.Status != equipment.StatusAvailable {
			return maintenanceerrors.ErrEquipmentNotAvailable
		}
		if req.Quantity > src.Quantity {
			return maintenanceerrors.ErrInsufficientQuantity
		}

		held := src
		if req.Quantity == src.Quantity {
			src.Status = equipment.StatusUnderMaintenance
			if err := eqtx.Update(ctx, src); err != nil {
				return err
			}
		} else {
			src.Quantity -= req.Quantity
			if err := eqtx.Update(ctx, src); err != nil {
				return err
			}
			held = splitRow(*src, req.Quantity, equipment.StatusUnderMaintenance)
			if err := eqtx.Create(ctx, held); err != nil {
				return err
			}
		}

		m = &Maintenance{
			ID:                uuid.New(),
			EquipmentID:       held.ID,
			SourceEquipmentID: src.ID,
			SentQuantity:      req.Quantity,
			PendingQuantity:   req.Quantity,
			Status:            StatusOpen,
			SentAt:            sentAt,
			Notes:             strings.TrimSpace(req.Notes),
		}
		if err := s.repo.WithTx(tx).Create(ctx, m); err != nil {
			return err
		}
		m.Equipment = equipmentRef(*held)
		return nil
	})
	if err != nil {
		log.Warn("send to maintenance failed", zap.String("equipment_id", req.EquipmentID), zap.Error(err))
		return MaintenanceResponse{}, err
	}

	log.Info("send to maintenance success",
		zap.String("maintenance_id", m.ID.String()),
		zap.String("held_equipment_id", m.EquipmentID.String()),
	)
	return mapToResponse(*m), nil
}

// Return settles part or all of the pending quantity. Working items go back
// to the source row, broken items end up in a broken row and the rest stay
// in maintenance. A cost paid from a custody is charged to it.
func (s *service) Return(ctx context.Context, id string, req ReturnRequest) (MaintenanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("maintenance return requested", zap.String("maintenance_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidMaintenanceID
	}
	w, b, p := req.WorkingQuantity, req.BrokenQuantity, req.PendingQuantity
	if w < 0 || b < 0 || p < 0 {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidQuantity
	}
	if w+b == 0 {
		return MaintenanceResponse{}, maintenanceerrors.ErrNothingReturned
	}
	if req.Cost.IsNegative() {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidCost
	}
	date, err := dateutil.ParseDateOr(req.Date, dateutil.Today())
	if err != nil {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidDate
	}
	var custodyID *uuid.UUID
	if req.CustodyID != nil && strings.TrimSpace(*req.CustodyID) != "" {
		cid, err := uuid.Parse(strings.TrimSpace(*req.CustodyID))
		if err != nil {
			return MaintenanceResponse{}, maintenanceerrors.ErrInvalidCustodyID
		}
		custodyID = &cid
	}

	var m *Maintenance
	err = dbtx.WithinTx(ctx, s.db, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)
		eqtx := s.equipment.WithTx(tx)

		var err error
		m, err = qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if m.Status == StatusCompleted {
			return maintenanceerrors.ErrMaintenanceClosed
		}
		if w+b+p != m.PendingQuantity {
			return maintenanceerrors.ErrQuantityMismatch
		}

		held, err := eqtx.FindByIDForUpdate(ctx, m.EquipmentID.String())
		if err != nil {
			return mapEquipmentError(err)
		}
		sameRow := m.EquipmentID == m.SourceEquipmentID

		var workingTaken, brokenTaken bool
		switch {
		case p > 0:
			held.Quantity = p
			if err := eqtx.Update(ctx, held); err != nil {
				return err
			}
		case b > 0:
			held.Quantity = b
			held.Status = equipment.StatusBroken
			brokenTaken = true
			if err := eqtx.Update(ctx, held); err != nil {
				return err
			}
		case sameRow:
			held.Quantity = w
			held.Status = equipment.StatusAvailable
			workingTaken = true
			if err := eqtx.Update(ctx, held); err != nil {
				return err
			}
		default:
			if err := eqtx.Delete(ctx, held.ID.String()); err != nil {
				return err
			}
		}

		if w > 0 && !workingTaken {
			if err := s.restore(ctx, eqtx, *held, m.SourceEquipmentID, sameRow, w); err != nil {
				return err
			}
		}
		if b > 0 && !brokenTaken {
			if err := eqtx.Create(ctx, splitRow(*held, b, equipment.StatusBroken)); err != nil {
				return err
			}
		}

		m.WorkingQuantity += w
		m.BrokenQuantity += b
		m.PendingQuantity = p
		m.Cost = m.Cost.Add(req.Cost)
		if p == 0 {
			m.Status = StatusCompleted
			m.CompletedAt = &date
		}
		if notes := strings.TrimSpace(req.Notes); notes != "" {
			m.Notes = notes
		}

		if req.Cost.IsPositive() && custodyID != nil {
			m.CustodyID = custodyID
			plan := ledger.Create("maintenance.cost_charged", nil).
				From(sourceType, m.ID).
				WithCharge(ledger.Charge{
					CustodyID:   *custodyID,
					Amount:      req.Cost,
					Description: "Maintenance of " + held.Name,
					Date:        date,
					Source:      ledger.SourceMaintenance,
					SourceID:    m.ID,
				})
			if _, err := s.poster.WithTx(tx).Apply(ctx, plan); err != nil {
				return err
			}
		}

		if err := qtx.Update(ctx, m); err != nil {
			return err
		}
		m.Equipment = equipmentRef(*held)
		return nil
	})
	if err != nil {
		log.Warn("maintenance return failed", zap.String("maintenance_id", id), zap.Error(err))
		return MaintenanceResponse{}, err
	}

	log.Info("maintenance return success",
		zap.String("maintenance_id", id),
		zap.Int("working", w),
		zap.Int("broken", b),
		zap.Int("pending", p),
		zap.String("status", m.Status),
	)
	return mapToResponse(*m), nil
}

// restore puts working items back into the source row when it is still
// available, or into a fresh available row otherwise.
func (s *service) restore(ctx context.Context, eqtx equipment.Repository, held equipment.Equipment, sourceID uuid.UUID, sameRow bool, qty int) error {
	if !sameRow {
		src, err := eqtx.FindByIDForUpdate(ctx, sourceID.String())
		switch {
		case err == nil && src.Status == equipment.StatusAvailable:
			src.Quantity += qty
			return eqtx.Update(ctx, src)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}
	return eqtx.Create(ctx, splitRow(held, qty, equipment.StatusAvailable))
}

func (s *service) GetAll(ctx context.Context, filter MaintenanceFilter) ([]MaintenanceResponse, error) {
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	switch status {
	case "", StatusOpen, StatusCompleted:
	default:
		return nil, maintenanceerrors.ErrInvalidStatus
	}
	equipmentID := strings.TrimSpace(filter.EquipmentID)
	if equipmentID != "" {
		if _, err := uuid.Parse(equipmentID); err != nil {
			return nil, maintenanceerrors.ErrInvalidEquipmentID
		}
	}

	rows, err := s.repo.FindAll(ctx, status, equipmentID)
	if err != nil {
		return nil, err
	}

	res := make([]MaintenanceResponse, len(rows))
	for i, m := range rows {
		res[i] = mapToResponse(m)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (MaintenanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MaintenanceResponse{}, maintenanceerrors.ErrInvalidMaintenanceID
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MaintenanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*m), nil
}

func splitRow(from equipment.Equipment, qty int, status string) *equipment.Equipment {
	root := from.RootID()
	return &equipment.Equipment{
		ID:       uuid.New(),
		Name:     from.Name,
		Quantity: qty,
		Status:   status,
		ParentID: &root,
	}
}

func equipmentRef(e equipment.Equipment) *domain.EquipmentRef {
	return &domain.EquipmentRef{ID: e.ID, Name: e.Name, Quantity: e.Quantity}
}

func mapToResponse(m Maintenance) MaintenanceResponse {
	resp := MaintenanceResponse{
		ID:                m.ID.String(),
		EquipmentID:       m.EquipmentID.String(),
		SourceEquipmentID: m.SourceEquipmentID.String(),
		SentQuantity:      m.SentQuantity,
		PendingQuantity:   m.PendingQuantity,
		WorkingQuantity:   m.WorkingQuantity,
		BrokenQuantity:    m.BrokenQuantity,
		Status:            m.Status,
		Cost:              m.Cost,
		SentAt:            dateutil.FormatDate(m.SentAt),
		CompletedAt:       dateutil.FormatOptional(m.CompletedAt, dateutil.DateLayout),
		Notes:             m.Notes,
	}
	if m.Equipment != nil {
		resp.EquipmentName = m.Equipment.Name
	}
	if m.CustodyID != nil {
		cid := m.CustodyID.String()
		resp.CustodyID = &cid
	}
	return resp
}
