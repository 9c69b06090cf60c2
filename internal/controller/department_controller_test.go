package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/entity"
	"lark-inventory-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type stubDepartmentService struct {
	departments map[uint]*entity.Department
}

func (s *stubDepartmentService) GetAll(ctx context.Context) ([]*entity.Department, error) {
	var all []*entity.Department
	for _, d := range s.departments {
		all = append(all, d)
	}
	return all, nil
}

func (s *stubDepartmentService) GetById(ctx context.Context, id uint) (*entity.Department, error) {
	if d, ok := s.departments[id]; ok {
		return d, nil
	}
	return nil, serverutils.NewNotFoundError("Department not found")
}

func (s *stubDepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*entity.Department, error) {
	d := &entity.Department{Id: 1, Name: req.Name, HeadId: req.HeadId}
	s.departments[d.Id] = d
	return d, nil
}

func (s *stubDepartmentService) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*entity.Department, error) {
	d, ok := s.departments[id]
	if !ok {
		return nil, serverutils.NewNotFoundError("Department not found")
	}
	d.Name = req.Name
	return d, nil
}

func (s *stubDepartmentService) Delete(ctx context.Context, id uint) error {
	if _, ok := s.departments[id]; !ok {
		return serverutils.NewNotFoundError("Department not found")
	}
	delete(s.departments, id)
	return nil
}

func newTestApp(stub *stubDepartmentService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(testLogger{}),
	})
	api := app.Group("/api")
	NewDepartmentController(stub).RegisterRoutes(api)
	return app
}

func TestDepartmentCreateReturns201(t *testing.T) {
	app := newTestApp(&stubDepartmentService{departments: map[uint]*entity.Department{}})

	req := httptest.NewRequest("POST", "/api/departments/", strings.NewReader(`{"name": "Logistics"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var body entity.Department
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Logistics", body.Name)
}

func TestDepartmentCreateValidation(t *testing.T) {
	app := newTestApp(&stubDepartmentService{departments: map[uint]*entity.Department{}})

	req := httptest.NewRequest("POST", "/api/departments/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDepartmentGetByIdNotFoundBody(t *testing.T) {
	app := newTestApp(&stubDepartmentService{departments: map[uint]*entity.Department{}})

	req := httptest.NewRequest("GET", "/api/departments/99", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail": "Department not found"}`, string(raw))
}

func TestDepartmentGetByIdBadParam(t *testing.T) {
	app := newTestApp(&stubDepartmentService{departments: map[uint]*entity.Department{}})

	req := httptest.NewRequest("GET", "/api/departments/abc", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDepartmentDeleteMessage(t *testing.T) {
	stub := &stubDepartmentService{departments: map[uint]*entity.Department{
		3: {Id: 3, Name: "Logistics"},
	}}
	app := newTestApp(stub)

	req := httptest.NewRequest("DELETE", "/api/departments/3", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message": "Department deleted successfully"}`, string(raw))
	assert.Empty(t, stub.departments)
}
