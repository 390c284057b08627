package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
	GetRoleParents(ctx context.Context) ([]RoleParentRow, error)
	SeedDefaults(ctx context.Context, perms []RolePermissionRow, parents []RoleParentRow) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RolePermissionRow struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role     string    `gorm:"size:50;not null;uniqueIndex:uq_role_permission"`
	Resource string    `gorm:"size:50;not null;uniqueIndex:uq_role_permission"`
	Action   string    `gorm:"size:50;not null;uniqueIndex:uq_role_permission"`
}

func (RolePermissionRow) TableName() string {
	return "role_permissions"
}

// RoleParentRow makes Role inherit every permission of Parent.
type RoleParentRow struct {
	Role   string `gorm:"size:50;primaryKey"`
	Parent string `gorm:"size:50;primaryKey"`
}

func (RoleParentRow) TableName() string {
	return "role_parents"
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleParents(ctx context.Context) ([]RoleParentRow, error) {
	var result []RoleParentRow
	err := r.db.WithContext(ctx).Order("role, parent").Find(&result).Error
	return result, err
}

// SeedDefaults inserts the given policy only when no permission exists yet.
func (r *repository) SeedDefaults(ctx context.Context, perms []RolePermissionRow, parents []RoleParentRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&RolePermissionRow{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		rows := make([]RolePermissionRow, len(perms))
		for i, p := range perms {
			p.ID = uuid.New()
			rows[i] = p
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if len(parents) > 0 {
			if err := tx.Create(&parents).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
