package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"customer-service/internal/database"
	"customer-service/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestCustomerRepository(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

type CustomerRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CustomerStoreInterface
	ctx  context.Context
}

func (s *CustomerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *CustomerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.db.Close()
}

func newCustomer(email string) *models.Customer {
	return &models.Customer{
		Name: models.CustomerName{
			Prefix:     "Dr.",
			Surname:    gofakeit.FirstName(),
			FamilyName: gofakeit.LastName(),
		},
		Email:       email,
		PhoneNumber: gofakeit.Numerify("##########"),
	}
}

func (s *CustomerRepositorySuite) count() int64 {
	var n int64
	s.Require().NoError(s.db.Model(&models.Customer{}).Count(&n).Error)
	return n
}

func (s *CustomerRepositorySuite) TestInsert_AssignsID() {
	customer := newCustomer("jane.doe@example.com")

	id, err := s.repo.Insert(s.ctx, customer)
	s.NoError(err)
	s.NotEmpty(id)
	s.Equal(id, customer.ID)
	_, err = uuid.Parse(id)
	s.NoError(err)

	stored, err := s.repo.Get(s.ctx, id)
	s.NoError(err)
	s.Equal(customer.ID, stored.ID)
	s.Equal(customer.Name, stored.Name)
	s.Equal(customer.Email, stored.Email)
	s.Equal(customer.PhoneNumber, stored.PhoneNumber)
}

func (s *CustomerRepositorySuite) TestInsert_NilCustomer() {
	_, err := s.repo.Insert(s.ctx, nil)
	s.Error(err)
}

func (s *CustomerRepositorySuite) TestInsert_DuplicateEmailLeavesStoreUnchanged() {
	_, err := s.repo.Insert(s.ctx, newCustomer("dup@example.com"))
	s.Require().NoError(err)
	before := s.count()

	_, err = s.repo.Insert(s.ctx, newCustomer("dup@example.com"))
	s.ErrorIs(err, ErrDuplicateEmail)
	s.Equal(before, s.count())
}

func (s *CustomerRepositorySuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, uuid.New().String())
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.repo.Get(s.ctx, "not-a-uuid")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestGetByField() {
	customer := newCustomer("lookup@example.com")
	id, err := s.repo.Insert(s.ctx, customer)
	s.Require().NoError(err)

	byEmail, err := s.repo.GetByField(s.ctx, "email", "lookup@example.com")
	s.NoError(err)
	s.Equal(id, byEmail.ID)

	byID, err := s.repo.GetByField(s.ctx, "id", id)
	s.NoError(err)
	s.Equal("lookup@example.com", byID.Email)

	_, err = s.repo.GetByField(s.ctx, "email", "missing@example.com")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestGetByField_RejectsUnknownField() {
	_, err := s.repo.GetByField(s.ctx, "phone_number; DROP TABLE customers", "x")
	s.ErrorIs(err, ErrUnsupportedField)
}

func (s *CustomerRepositorySuite) TestListAll() {
	customers, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.NotNil(customers)
	s.Empty(customers)

	first, err := s.repo.Insert(s.ctx, newCustomer("a@example.com"))
	s.Require().NoError(err)
	second, err := s.repo.Insert(s.ctx, newCustomer("b@example.com"))
	s.Require().NoError(err)

	customers, err = s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.Len(customers, 2)

	ids := []string{customers[0].ID, customers[1].ID}
	s.ElementsMatch([]string{first, second}, ids)

	again, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.Equal(ids, []string{again[0].ID, again[1].ID}, "order must be stable")
}

func (s *CustomerRepositorySuite) TestReplace_UpdatesEveryField() {
	id, err := s.repo.Insert(s.ctx, newCustomer("old@example.com"))
	s.Require().NoError(err)

	replacement := &models.Customer{
		Name: models.CustomerName{
			Surname:    "Johnny",
			MiddleName: "B",
			FamilyName: "Doe",
			Suffix:     "Jr.",
		},
		Email:       "new@example.com",
		PhoneNumber: "0987654321",
	}
	s.NoError(s.repo.Replace(s.ctx, id, replacement))
	s.Equal(id, replacement.ID)

	stored, err := s.repo.Get(s.ctx, id)
	s.NoError(err)
	s.Equal(replacement.Name, stored.Name)
	s.Equal("new@example.com", stored.Email)
	s.Equal("0987654321", stored.PhoneNumber)

	_, err = s.repo.GetByField(s.ctx, "email", "old@example.com")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestReplace_KeepingOwnEmail() {
	customer := newCustomer("same@example.com")
	id, err := s.repo.Insert(s.ctx, customer)
	s.Require().NoError(err)

	customer.PhoneNumber = "1112223333"
	s.NoError(s.repo.Replace(s.ctx, id, customer))
}

func (s *CustomerRepositorySuite) TestReplace_DuplicateEmail() {
	_, err := s.repo.Insert(s.ctx, newCustomer("taken@example.com"))
	s.Require().NoError(err)
	id, err := s.repo.Insert(s.ctx, newCustomer("mine@example.com"))
	s.Require().NoError(err)

	err = s.repo.Replace(s.ctx, id, newCustomer("taken@example.com"))
	s.ErrorIs(err, ErrDuplicateEmail)

	stored, err := s.repo.Get(s.ctx, id)
	s.NoError(err)
	s.Equal("mine@example.com", stored.Email)
}

func (s *CustomerRepositorySuite) TestReplace_NotFound() {
	err := s.repo.Replace(s.ctx, uuid.New().String(), newCustomer("ghost@example.com"))
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestDelete() {
	id, err := s.repo.Insert(s.ctx, newCustomer("gone@example.com"))
	s.Require().NoError(err)

	s.NoError(s.repo.Delete(s.ctx, id))

	_, err = s.repo.Get(s.ctx, id)
	s.ErrorIs(err, ErrCustomerNotFound)

	s.ErrorIs(s.repo.Delete(s.ctx, id), ErrCustomerNotFound)

	// the email is free again once the record is gone
	_, err = s.repo.Insert(s.ctx, newCustomer("gone@example.com"))
	s.NoError(err)
}

func (s *CustomerRepositorySuite) TestInsert_ConcurrentSameEmail() {
	const writers = 5
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.repo.Insert(s.ctx, newCustomer("race@example.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, ErrDuplicateEmail)
	}
	s.Equal(1, succeeded)
	s.Equal(int64(1), s.count())
}

func newMockRepository(t *testing.T) (CustomerStoreInterface, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewCustomerRepository(db), mock
}

func TestCustomerRepository_PostgresUniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_customers_email"`))

	_, err := repo.Insert(context.Background(), newCustomer("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_ReplaceUniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "customers"`).
		WillReturnError(errors.New("ERROR: duplicate key value (SQLSTATE 23505)"))

	err := repo.Replace(context.Background(), uuid.New().String(), newCustomer("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_StoreErrorsAreWrapped(t *testing.T) {
	repo, mock := newMockRepository(t)
	storeErr := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(storeErr)
	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to list customers")

	mock.ExpectExec(`DELETE FROM "customers"`).WillReturnError(storeErr)
	err = repo.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrCustomerNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres message", errors.New("duplicate key value violates unique constraint"), true},
		{"sqlite message", errors.New("UNIQUE constraint failed: customers.email"), true},
		{"sqlstate", errors.New("SQLSTATE 23505"), true},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKeyError(tt.err))
		})
	}
}
