// Package studentrepo persists student accounts.
package studentrepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/student"

	"github.com/google/uuid"
)

type StudentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"size:254;index;not null"`
	RollNumber string    `gorm:"size:9;uniqueIndex;not null"`
	Name       string    `gorm:"size:120;not null"`
	Hostel     string    `gorm:"size:4;not null"`
	Phone      string    `gorm:"size:10;not null"`
	Year       int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StudentDTO) TableName() string {
	return "students"
}

func fromDomain(s *student.Student) StudentDTO {
	p := s.Profile()
	return StudentDTO{
		ID:         s.ID().Bytes(),
		Email:      s.Email().String(),
		RollNumber: string(s.RollNumber()),
		Name:       p.Name,
		Hostel:     string(p.Hostel),
		Phone:      p.Phone.String(),
		Year:       p.Year,
	}
}

func toDomain(dto StudentDTO) (*student.Student, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return student.RestoreStudent(id, kernel.Email(dto.Email), student.RollNumber(dto.RollNumber), student.Profile{
		Name:   dto.Name,
		Hostel: student.Hostel(dto.Hostel),
		Phone:  kernel.Phone(dto.Phone),
		Year:   dto.Year,
	})
}
