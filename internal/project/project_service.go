package project

import (
	"context"
	"database/sql"
	"strings"

	projecterrors "github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/project/errors"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, status string) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func normalizeStatus(status string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case "":
		return StatusActive, nil
	case StatusActive, StatusOnHold, StatusCompleted:
		return s, nil
	default:
		return "", projecterrors.ErrInvalidStatus
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateProjectRequest,
) (ProjectResponse, error) {

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ProjectResponse{}, projecterrors.ErrProjectNameRequired
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Project{
		ID:          uuid.New(),
		Name:        name,
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Status:      status,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Warn("create project failed", zap.String("name", name), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success", zap.String("project_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(
	ctx context.Context,
	status string,
) ([]ProjectResponse, error) {

	if strings.TrimSpace(status) != "" {
		var err error
		if status, err = normalizeStatus(status); err != nil {
			return nil, err
		}
	}

	projects, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(projects), nil
}

// GetByID also reports the total of expenses booked against the project.
func (s *service) GetByID(
	ctx context.Context,
	id string,
) (ProjectResponse, error) {

	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	total, err := s.repo.TotalExpenses(ctx, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	resp := mapToResponse(*p)
	resp.TotalExpenses = &total
	return resp, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateProjectRequest,
) (ProjectResponse, error) {

	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ProjectResponse{}, projecterrors.ErrProjectNameRequired
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return ProjectResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	p.Name = name
	p.Location = strings.TrimSpace(req.Location)
	p.Description = strings.TrimSpace(req.Description)
	p.Status = status

	if err := qtx.Update(ctx, p); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {

	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   dateutil.FormatDateTime(p.CreatedAt),
		UpdatedAt:   dateutil.FormatDateTime(p.UpdatedAt),
	}
}

func mapToListResponse(projects []Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res
}
