package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

// MockAccountsStore implements store.AccountsStore for testing using testify/mock
type MockAccountsStore struct {
	mock.Mock
}

func NewMockAccountsStore() *MockAccountsStore {
	return &MockAccountsStore{}
}

func (m *MockAccountsStore) Register(reg store.Registration) (*model.Account, error) {
	args := m.Called(reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountsStore) ByEmail(email string) (*model.Account, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountsStore) ByID(id int64) (*model.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountsStore) PendingReporters() ([]model.Account, error) {
	args := m.Called()
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountsStore) ApprovedReporters() ([]model.Account, error) {
	args := m.Called()
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountsStore) Approve(id int64) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func (m *MockAccountsStore) Revoke(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockArticlesStore implements store.ArticlesStore for testing using testify/mock
type MockArticlesStore struct {
	mock.Mock
}

func NewMockArticlesStore() *MockArticlesStore {
	return &MockArticlesStore{}
}

func (m *MockArticlesStore) Create(article *model.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticlesStore) ByID(id int64) (*model.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticlesStore) List() ([]model.Article, error) {
	args := m.Called()
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticlesStore) ListByOwner(ownerID int64) ([]model.Article, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticlesStore) OwnerOf(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticlesStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
