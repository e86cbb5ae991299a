package service

import (
	"context"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/google/uuid"
)

// Roster peta class_id -> nama kelas, dibangun ulang di setiap operasi
type Roster struct {
	classNames map[uuid.UUID]string
}

func loadRoster(ctx context.Context, classRepo repository.ClassRepository) (*Roster, error) {
	classes, err := classRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newRoster(classes), nil
}

func newRoster(classes []*model.Class) *Roster {
	names := make(map[uuid.UUID]string, len(classes))
	for _, c := range classes {
		names[c.ID] = c.Name
	}
	return &Roster{classNames: names}
}

// ClassName "" jika kelas tidak dikenal
func (r *Roster) ClassName(classID uuid.UUID) string {
	return r.classNames[classID]
}

// Attach mengisi ClassName setiap siswa
func (r *Roster) Attach(students []*model.Student) {
	for _, s := range students {
		s.ClassName = r.ClassName(s.ClassID)
	}
}

// parseOptionalClassID "" berarti tanpa filter kelas
func parseOptionalClassID(classID string) (*uuid.UUID, error) {
	if classID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}
