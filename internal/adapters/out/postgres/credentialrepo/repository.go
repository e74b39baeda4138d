// Package credentialrepo stores login credentials for students and shops.
package credentialrepo

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CredentialDTO is keyed by principal. An email may be used once per role.
type CredentialDTO struct {
	PrincipalID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         string    `gorm:"size:16;not null;uniqueIndex:idx_credentials_email_role,priority:2"`
	Email        string    `gorm:"size:254;not null;uniqueIndex:idx_credentials_email_role,priority:1"`
	PasswordHash string    `gorm:"size:100;not null"`
	CreatedAt    time.Time
}

func (CredentialDTO) TableName() string {
	return "credentials"
}

type GormCredentialRepository struct {
	db *gorm.DB
}

func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Add returns errs.AlreadyExistsError when the email is taken for the role.
func (r *GormCredentialRepository) Add(ctx context.Context, c ports.Credential) error {
	if err := errors.Join(c.PrincipalID.Validate(), c.Role.Validate()); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CredentialDTO{}).
		Where("email = ? AND role = ?", c.Email.String(), c.Role.String()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewAlreadyExistsError("email", c.Email.String())
	}

	dto := CredentialDTO{
		PrincipalID:  c.PrincipalID.Bytes(),
		Role:         c.Role.String(),
		Email:        c.Email.String(),
		PasswordHash: c.PasswordHash,
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// A concurrent registration can still win between the check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("email", c.Email.String())
		}
		return err
	}
	return nil
}

func (r *GormCredentialRepository) GetByEmail(
	ctx context.Context,
	email kernel.Email,
	role kernel.Role,
) (ports.Credential, error) {
	var dto CredentialDTO
	err := r.db.WithContext(ctx).
		First(&dto, "email = ? AND role = ?", email.String(), role.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Credential{}, errs.NewObjectNotFoundError("email", email.String())
		}
		return ports.Credential{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.PrincipalID[:])
	if err != nil {
		return ports.Credential{}, err
	}
	storedRole, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return ports.Credential{}, err
	}

	return ports.Credential{
		PrincipalID:  id,
		Role:         storedRole,
		Email:        kernel.Email(dto.Email),
		PasswordHash: dto.PasswordHash,
	}, nil
}
