package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/store"
	"github.com/gestaopub/contratos-service/internal/validate"
)

type DepartmentInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Manager     string  `json:"manager" validate:"required"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// DepartmentService is the form controller for the departments page.
type DepartmentService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Department
	dialogs  Dialogs
}

func NewDepartmentService(st *store.Store, notifier Notifier, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{store: st, notifier: notifier, log: log}
}

func (s *DepartmentService) List() []model.Department {
	return s.store.Departments()
}

func (s *DepartmentService) Get(id string) (model.Department, error) {
	department, ok := s.store.DepartmentByID(id)
	if !ok {
		return model.Department{}, ErrNotFound
	}
	return department, nil
}

func (s *DepartmentService) Create(input DepartmentInput) (model.Department, error) {
	if err := validate.Struct(input); err != nil {
		return model.Department{}, err
	}

	department := model.Department{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Manager:     input.Manager,
		Budget:      input.Budget,
		CreatedAt:   model.Today(),
	}
	s.store.InsertDepartment(department)
	s.closeAndNotify("Departamento adicionado",
		fmt.Sprintf("O departamento %s foi adicionado com sucesso.", department.Name))
	return department, nil
}

func (s *DepartmentService) Update(id string, input DepartmentInput) (model.Department, error) {
	existing, ok := s.store.DepartmentByID(id)
	if !ok {
		s.log.Warn().Str("department_id", id).Msg("update target not found")
		return model.Department{}, ErrNotFound
	}
	if err := validate.Struct(input); err != nil {
		return model.Department{}, err
	}

	updated := existing
	updated.Name = input.Name
	updated.Description = input.Description
	updated.Manager = input.Manager
	updated.Budget = input.Budget

	s.store.ReplaceDepartment(updated)
	s.closeAndNotify("Departamento atualizado",
		fmt.Sprintf("O departamento %s foi atualizado com sucesso.", updated.Name))
	return updated, nil
}

func (s *DepartmentService) Delete(id string) {
	department, ok := s.store.DepartmentByID(id)
	if !ok {
		s.log.Debug().Str("department_id", id).Msg("delete target not found")
		s.reset()
		return
	}
	s.store.RemoveDepartment(id)
	s.closeAndNotify("Departamento excluído",
		fmt.Sprintf("O departamento %s foi excluído com sucesso.", department.Name))
}

func (s *DepartmentService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *DepartmentService) OpenEdit(department model.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &department
}

func (s *DepartmentService) OpenDelete(department model.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &department
}

func (s *DepartmentService) Cancel() {
	s.reset()
}

func (s *DepartmentService) Selected() (model.Department, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Department{}, false
	}
	return *s.selected, true
}

func (s *DepartmentService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *DepartmentService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *DepartmentService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}
