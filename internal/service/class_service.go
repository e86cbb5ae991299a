package service

import (
	"context"
	"errors"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/google/uuid"
)

type ClassService interface {
	GetAll(ctx context.Context) ([]*model.Class, error)
	Create(ctx context.Context, req model.ClassRequest) (*model.Class, error)
	Update(ctx context.Context, id string, req model.ClassRequest) (*model.Class, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	repo        repository.ClassRepository
	studentRepo repository.StudentRepository
}

func NewClassService(repo repository.ClassRepository, studentRepo repository.StudentRepository) ClassService {
	return &classService{repo: repo, studentRepo: studentRepo}
}

func (s *classService) GetAll(ctx context.Context) ([]*model.Class, error) {
	return s.repo.FindAll(ctx)
}

func (s *classService) Create(ctx context.Context, req model.ClassRequest) (*model.Class, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrClassNameExists
	}

	class := &model.Class{ID: uuid.New(), Name: req.Name}
	if err := s.repo.Create(ctx, class); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrClassNameExists
		}
		return nil, err
	}

	return class, nil
}

func (s *classService) Update(ctx context.Context, id string, req model.ClassRequest) (*model.Class, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != uid {
		return nil, ErrClassNameExists
	}

	class := &model.Class{ID: uid, Name: req.Name}
	found, err := s.repo.Update(ctx, class)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrClassNameExists
		}
		return nil, err
	}
	if !found {
		return nil, ErrClassNotFound
	}

	return class, nil
}

// Delete ditolak selama masih ada siswa di kelas tersebut
func (s *classService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	refs, err := s.studentRepo.CountByClass(ctx, uid)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrClassInUse
	}

	deleted, err := s.repo.Delete(ctx, uid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClassNotFound
	}
	return nil
}
