package service

import (
	"context"
	"errors"
	"log"

	"github.com/ahmadqo/school-attendance/internal/model"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/google/uuid"
)

// PhotoStorage penyimpanan objek untuk foto siswa (MinIO di produksi)
type PhotoStorage interface {
	UploadFile(ctx context.Context, folder string, data []byte, contentType string) (*utils.UploadResult, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

type StudentService interface {
	GetAll(ctx context.Context, classID, search string) ([]*model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, req model.StudentRequest) (*model.Student, error)
	Update(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, data []byte, contentType string) (*model.Student, error)
	QRCode(ctx context.Context, id string) ([]byte, *model.Student, error)
}

type studentService struct {
	repo           repository.StudentRepository
	classRepo      repository.ClassRepository
	attendanceRepo repository.AttendanceRepository
	storage        PhotoStorage
}

func NewStudentService(
	repo repository.StudentRepository,
	classRepo repository.ClassRepository,
	attendanceRepo repository.AttendanceRepository,
	storage PhotoStorage,
) StudentService {
	return &studentService{
		repo: repo, classRepo: classRepo,
		attendanceRepo: attendanceRepo, storage: storage,
	}
}

func (s *studentService) GetAll(ctx context.Context, classID, search string) ([]*model.Student, error) {
	cid, err := parseOptionalClassID(classID)
	if err != nil {
		return nil, err
	}

	students, err := s.repo.FindAll(ctx, model.StudentFilter{ClassID: cid, Search: search})
	if err != nil {
		return nil, err
	}

	roster, err := loadRoster(ctx, s.classRepo)
	if err != nil {
		return nil, err
	}
	roster.Attach(students)

	return students, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	student, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	class, err := s.classRepo.FindByID(ctx, student.ClassID)
	if err != nil {
		return nil, err
	}
	if class != nil {
		student.ClassName = class.Name
	}

	return student, nil
}

// resolveClass memastikan id_kelas menunjuk kelas yang ada
func (s *studentService) resolveClass(ctx context.Context, classID string) (*model.Class, error) {
	cid, err := uuid.Parse(classID)
	if err != nil {
		return nil, ErrClassInvalid
	}
	class, err := s.classRepo.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassInvalid
	}
	return class, nil
}

func (s *studentService) Create(ctx context.Context, req model.StudentRequest) (*model.Student, error) {
	class, err := s.resolveClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByNIS(ctx, req.NIS)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNISExists
	}

	student := &model.Student{
		ID:        uuid.New(),
		NIS:       req.NIS,
		FullName:  req.FullName,
		ClassID:   class.ID,
		ClassName: class.Name,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNISExists
		}
		return nil, err
	}

	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, req model.StudentRequest) (*model.Student, error) {
	class, err := s.resolveClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}

	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// NIS unik, kecuali milik siswa ini sendiri
	existing, err := s.repo.FindByNIS(ctx, req.NIS)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != student.ID {
		return nil, ErrNISExists
	}

	student.NIS = req.NIS
	student.FullName = req.FullName
	student.ClassID = class.ID
	student.ClassName = class.Name

	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrNISExists
		}
		return nil, err
	}

	return student, nil
}

// Delete menghapus siswa beserta seluruh catatan absensinya
func (s *studentService) Delete(ctx context.Context, id string) error {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.attendanceRepo.DeleteByStudent(ctx, student.ID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, student.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}

	if student.PhotoURL != nil {
		if err := s.storage.DeleteFile(ctx, *student.PhotoURL); err != nil {
			log.Printf("Failed to delete photo of student %s: %v", student.ID, err)
		}
	}
	return nil
}

func (s *studentService) UploadPhoto(ctx context.Context, id string, data []byte, contentType string) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.UploadFile(ctx, "students/photos", data, contentType)
	if err != nil {
		return nil, newError(ErrInvalidInput, err.Error())
	}

	if err := s.repo.UpdatePhoto(ctx, student.ID, result.FileURL); err != nil {
		return nil, err
	}

	// Hapus foto lama setelah foto baru tersimpan
	if student.PhotoURL != nil {
		if err := s.storage.DeleteFile(ctx, *student.PhotoURL); err != nil {
			log.Printf("Failed to delete old photo of student %s: %v", student.ID, err)
		}
	}

	student.PhotoURL = &result.FileURL
	return student, nil
}

// QRCode kartu QR berisi NIS untuk dipindai di kiosk absensi
func (s *studentService) QRCode(ctx context.Context, id string) ([]byte, *model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	png, err := utils.GenerateQRCodePNG(student.NIS, 256)
	if err != nil {
		return nil, nil, err
	}
	return png, student, nil
}
