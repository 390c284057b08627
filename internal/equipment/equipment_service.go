package equipment

import (
	"context"
	"database/sql"
	"strings"

	equipmenterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=equipment_service.go -destination=mock/equipment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEquipmentRequest) (EquipmentResponse, error)
	GetAll(ctx context.Context, filter EquipmentFilter) ([]EquipmentResponse, error)
	GetByID(ctx context.Context, id string) (EquipmentResponse, error)
	Update(ctx context.Context, id string, req UpdateEquipmentRequest) (EquipmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("equipment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("equipment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// normalizeStatus accepts the states a user may set directly. Maintenance
// owns under_maintenance.
func normalizeStatus(status string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case "":
		return StatusAvailable, nil
	case StatusAvailable, StatusBroken:
		return s, nil
	default:
		return "", equipmenterrors.ErrInvalidStatus
	}
}

func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := strings.TrimSpace(*code)
	if c == "" {
		return nil
	}
	return &c
}

func (s *service) Create(
	ctx context.Context,
	req CreateEquipmentRequest,
) (EquipmentResponse, error) {

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EquipmentResponse{}, equipmenterrors.ErrNameRequired
	}
	if req.Quantity < 0 {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidQuantity
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return EquipmentResponse{}, err
	}

	e := &Equipment{
		ID:       uuid.New(),
		Name:     name,
		Code:     normalizeCode(req.Code),
		Quantity: req.Quantity,
		Status:   status,
		Notes:    strings.TrimSpace(req.Notes),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Warn("create equipment failed", zap.String("name", name), zap.Error(err))
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create equipment success",
		zap.String("equipment_id", e.ID.String()),
		zap.Int("quantity", e.Quantity),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter EquipmentFilter,
) ([]EquipmentResponse, error) {

	status := strings.ToLower(strings.TrimSpace(filter.Status))
	switch status {
	case "", StatusAvailable, StatusUnderMaintenance, StatusBroken:
	default:
		return nil, equipmenterrors.ErrInvalidStatus
	}
	parentID := strings.TrimSpace(filter.ParentID)
	if parentID != "" {
		if _, err := uuid.Parse(parentID); err != nil {
			return nil, equipmenterrors.ErrInvalidEquipmentID
		}
	}

	items, err := s.repo.FindAll(ctx, status, parentID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(items), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (EquipmentResponse, error) {

	if _, err := uuid.Parse(id); err != nil {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidEquipmentID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// Update edits a row that is not in maintenance. Rows under maintenance only
// accept descriptive changes.
func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEquipmentRequest,
) (EquipmentResponse, error) {

	if _, err := uuid.Parse(id); err != nil {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidEquipmentID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EquipmentResponse{}, equipmenterrors.ErrNameRequired
	}
	if req.Quantity < 0 {
		return EquipmentResponse{}, equipmenterrors.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EquipmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	if e.Status == StatusUnderMaintenance {
		if req.Quantity != e.Quantity || (req.Status != "" && req.Status != e.Status) {
			return EquipmentResponse{}, equipmenterrors.ErrUnderMaintenance
		}
	} else {
		status, err := normalizeStatus(req.Status)
		if err != nil {
			return EquipmentResponse{}, err
		}
		e.Status = status
		e.Quantity = req.Quantity
	}

	e.Name = name
	e.Code = normalizeCode(req.Code)
	e.Notes = strings.TrimSpace(req.Notes)

	if err := qtx.Update(ctx, e); err != nil {
		return EquipmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EquipmentResponse{}, err
	}

	s.logger.Info("update equipment success", zap.String("equipment_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {

	if _, err := uuid.Parse(id); err != nil {
		return equipmenterrors.ErrInvalidEquipmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if e.Status == StatusUnderMaintenance {
		return equipmenterrors.ErrUnderMaintenance
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(e Equipment) EquipmentResponse {
	resp := EquipmentResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Code:      e.Code,
		Quantity:  e.Quantity,
		Status:    e.Status,
		Notes:     e.Notes,
		CreatedAt: dateutil.FormatDateTime(e.CreatedAt),
		UpdatedAt: dateutil.FormatDateTime(e.UpdatedAt),
	}
	if e.ParentID != nil {
		id := e.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

func mapToListResponse(items []Equipment) []EquipmentResponse {
	res := make([]EquipmentResponse, len(items))
	for i, e := range items {
		res[i] = mapToResponse(e)
	}
	return res
}
