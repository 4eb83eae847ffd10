package service

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeService interface {
	CreateEmployee(employee *model.Employee) error
	GetAllEmployees() ([]model.Employee, error)
	GetEmployeeByID(id uuid.UUID) (*model.Employee, error)
	UpdateEmployee(id uuid.UUID, req *model.Employee) (*model.Employee, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(employee *model.Employee) error {
	if errs := validator.ValidateStruct(employee); len(errs) > 0 {
		return validationError(errs)
	}
	return s.employeeRepo.Create(employee)
}

func (s *employeeService) GetAllEmployees() ([]model.Employee, error) {
	return s.employeeRepo.FindAll()
}

func (s *employeeService) GetEmployeeByID(id uuid.UUID) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewNotFound("employee", id)
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(id uuid.UUID, req *model.Employee) (*model.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	employee.Name = req.Name
	employee.Role = req.Role
	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}
