package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.employees[emp.ID] = &emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive {
			out = append(out, *emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = &emp
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	return nil
}

func (f *fakeEmployeeRepo) LastSerialNumber(ctx context.Context, companyName string, yearOfJoining int) (int, error) {
	last := 0
	for _, emp := range f.employees {
		if emp.CompanyName == companyName && emp.YearOfJoining == yearOfJoining && emp.SerialNumber > last {
			last = emp.SerialNumber
		}
	}
	return last, nil
}

type fakeUserRepo struct {
	users  map[string]*user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[u.ID] = &u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByLoginID(ctx context.Context, loginID string) (user.User, error) {
	for _, u := range f.users {
		if u.LoginID != nil && *u.LoginID == loginID {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = &u
	return nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*EmployeeServiceImpl, *fakeEmployeeRepo, *fakeUserRepo) {
	repo := newFakeEmployeeRepo()
	userRepo := newFakeUserRepo()
	svc := NewEmployeeService(nil, repo, userRepo).WithTxRunner(passthroughTx)
	return svc, repo, userRepo
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "John.Doe@Oracle.com",
		CompanyName:   "Oracle",
		DateOfJoining: "2022-03-15",
	}
}

func TestCreateProvisionsRecordAndAccount(t *testing.T) {
	svc, _, userRepo := newTestService()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "ORJODO220001", resp.LoginID)
	assert.Equal(t, "john.doe@oracle.com", resp.Email)
	assert.Len(t, resp.TemporaryPassword, 16)
	assert.True(t, resp.IsActive)

	u, err := userRepo.GetByEmail(context.Background(), "john.doe@oracle.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, u.Role)
	require.NotNil(t, u.LoginID)
	assert.Equal(t, "ORJODO220001", *u.LoginID)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, resp.ID, *u.EmployeeID)
	assert.True(t, u.IsActive)

	// The stored hash must verify against the returned temporary password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(resp.TemporaryPassword)))
}

func TestCreateIncrementsSerialPerCompanyYear(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "ORJODO220001", first.LoginID)

	second := createRequest()
	second.FirstName = "Jane"
	second.LastName = "Smith"
	second.Email = "jane.smith@oracle.com"
	resp, err := svc.Create(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "ORJASM220002", resp.LoginID)

	// A different joining year restarts the serial.
	third := createRequest()
	third.FirstName = "Mark"
	third.LastName = "Twain"
	third.Email = "mark.twain@oracle.com"
	third.DateOfJoining = "2023-01-10"
	resp, err = svc.Create(ctx, third)
	require.NoError(t, err)
	assert.Equal(t, "ORMATW230001", resp.LoginID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Email = "JOHN.DOE@ORACLE.COM"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest()
	req.FirstName = ""
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	dept := "Engineering"
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Department: &dept,
	})
	require.NoError(t, err)

	assert.Equal(t, "John", updated.FirstName)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Engineering", *updated.Department)
}

func TestDeactivateHidesEmployee(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
