package studentrepo

import (
	"context"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudentRepository implements ports.StudentRepository using GORM.
type GormStudentRepository struct {
	db *gorm.DB
}

func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

func (r *GormStudentRepository) Add(ctx context.Context, aggregate *student.Student) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("rollNumber", dto.RollNumber)
		}
		return err
	}
	return nil
}

// Update writes the profile columns. Email and roll number are fixed at registration.
func (r *GormStudentRepository) Update(ctx context.Context, aggregate *student.Student) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	p := aggregate.Profile()
	result := r.db.WithContext(ctx).Model(&StudentDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"name":   p.Name,
			"hostel": string(p.Hostel),
			"phone":  p.Phone.String(),
			"year":   p.Year,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("student", aggregate.ID().String())
	}
	return nil
}

func (r *GormStudentRepository) Get(ctx context.Context, id kernel.UUID) (*student.Student, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("student", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber student.RollNumber) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StudentDTO{}).
		Where("roll_number = ?", string(rollNumber)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
