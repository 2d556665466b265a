package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// fakeTxManager runs the callback synchronously against the given factory.
type fakeTxManager struct {
	factory    *fakeRepoFactory
	executeErr error
	executed   int
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.executeErr != nil {
		return m.executeErr
	}
	m.executed++

	return fn(m.factory)
}

type fakeRepoFactory struct {
	customerRepo *fakeCustomerRepo
	reasonRepo   *fakeReturnReasonRepo
	editRepo     *fakeOrderEditRepo
}

func (f *fakeRepoFactory) CustomerRepo() repository.CustomerRepository {
	return f.customerRepo
}

func (f *fakeRepoFactory) ReturnReasonRepo() repository.ReturnReasonRepository {
	return f.reasonRepo
}

func (f *fakeRepoFactory) OrderEditRepo() repository.OrderEditRepository {
	return f.editRepo
}

type fakeCustomerRepo struct {
	customer *entity.Customer
	findErr  error

	updated            *entity.Customer
	replacedGroupIDs   *[]uuid.UUID
	replaceGroupsErr   error
	reloadedRelations  []string
	reloadedCustomer   *entity.Customer
	findByIDCalls      int
	findWithRelsCalls  int
	updateErr          error
	replaceGroupsCalls int
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.findByIDCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}

	clone := *r.customer

	return &clone, nil
}

func (r *fakeCustomerRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.Customer, error) {
	r.findWithRelsCalls++
	r.reloadedRelations = relations
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.reloadedCustomer != nil {
		return r.reloadedCustomer, nil
	}

	return r.customer, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = customer

	return nil
}

func (r *fakeCustomerRepo) ReplaceGroups(ctx context.Context, customerID uuid.UUID, groupIDs []uuid.UUID) error {
	r.replaceGroupsCalls++
	if r.replaceGroupsErr != nil {
		return r.replaceGroupsErr
	}
	r.replacedGroupIDs = &groupIDs

	return nil
}

type fakeReturnReasonRepo struct {
	reason  *entity.ReturnReason
	findErr error

	updated           *entity.ReturnReason
	reloadedRelations []string
}

func (r *fakeReturnReasonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnReason, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	clone := *r.reason

	return &clone, nil
}

func (r *fakeReturnReasonRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.ReturnReason, error) {
	r.reloadedRelations = relations
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.updated != nil {
		return r.updated, nil
	}

	return r.reason, nil
}

func (r *fakeReturnReasonRepo) Update(ctx context.Context, reason *entity.ReturnReason) error {
	r.updated = reason

	return nil
}

type fakeOrderEditRepo struct {
	edit    *entity.OrderEdit
	findErr error

	updated           *entity.OrderEdit
	committed         *entity.OrderEdit
	reloadedRelations []string
}

func (r *fakeOrderEditRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderEdit, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	clone := *r.edit

	return &clone, nil
}

func (r *fakeOrderEditRepo) FindByIDWithRelations(ctx context.Context, id uuid.UUID, relations []string) (*entity.OrderEdit, error) {
	r.reloadedRelations = relations
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.updated != nil {
		return r.updated, nil
	}

	return r.edit, nil
}

func (r *fakeOrderEditRepo) Update(ctx context.Context, edit *entity.OrderEdit) error {
	r.updated = edit

	return nil
}

func (r *fakeOrderEditRepo) CommitItemsToOrder(ctx context.Context, edit *entity.OrderEdit) error {
	r.committed = edit

	return nil
}

// fakeHasher marks hashed passwords so tests can assert hashing happened.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}
