package businesses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *mockRepo) GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *mockRepo) GetByCode(ctx context.Context, code string) (*domain.Business, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *mockRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Business), args.Error(1)
}

func (m *mockRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// sequenceCodes возвращает коды по очереди
type sequenceCodes struct {
	codes   []string
	lengths []int
}

func (s *sequenceCodes) Generate(length int) (string, error) {
	s.lengths = append(s.lengths, length)
	code := s.codes[0]
	s.codes = s.codes[1:]
	return code, nil
}

func TestActivate_CreatesWithDefaults(t *testing.T) {
	repo := &mockRepo{}
	codes := &sequenceCodes{codes: []string{"TAKEN234", "FREE2345"}}
	svc := NewService(repo, codes, logger.Nop())

	repo.On("GetByOwner", mock.Anything, int64(5)).Return(nil, businessRepo.ErrBusinessNotFound)
	repo.On("CodeExists", mock.Anything, "TAKEN234").Return(true, nil)
	repo.On("CodeExists", mock.Anything, "FREE2345").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Business) bool {
		return b.OwnerUserID == 5 && b.Code == "FREE2345" && b.Name == domain.DefaultBusinessName
	})).Return(&domain.Business{ID: 1, OwnerUserID: 5, Code: "FREE2345", Name: domain.DefaultBusinessName}, nil)

	resp, err := svc.Activate(context.Background(), &models.ActivateRequest{OwnerUserID: 5, Name: ptr.Ptr("  ")})

	require.NoError(t, err)
	assert.Equal(t, "FREE2345", resp.Code)
	assert.Equal(t, []int{domain.CodeLength, domain.CodeLength}, codes.lengths)
}

func TestActivate_Idempotent(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{}, logger.Nop())
	repo.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 3, OwnerUserID: 5, Code: "ABCD2345"}, nil)

	resp, err := svc.Activate(context.Background(), &models.ActivateRequest{OwnerUserID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivate_RetriesOnConcurrentCodeCollision(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{codes: []string{"RACE2345", "FREE2345"}}, logger.Nop())

	repo.On("GetByOwner", mock.Anything, int64(5)).Return(nil, businessRepo.ErrBusinessNotFound)
	repo.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Business) bool { return b.Code == "RACE2345" })).
		Return(nil, businessRepo.ErrDuplicate)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Business) bool { return b.Code == "FREE2345" })).
		Return(&domain.Business{ID: 4, OwnerUserID: 5, Code: "FREE2345"}, nil)

	resp, err := svc.Activate(context.Background(), &models.ActivateRequest{OwnerUserID: 5})

	require.NoError(t, err)
	assert.Equal(t, "FREE2345", resp.Code)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestActivate_ConcurrentActivationReturnsExisting(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{codes: []string{"ABCD2345"}}, logger.Nop())

	repo.On("GetByOwner", mock.Anything, int64(5)).Return(nil, businessRepo.ErrBusinessNotFound).Once()
	repo.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 8, OwnerUserID: 5, Code: "WXYZ2345"}, nil)
	repo.On("CodeExists", mock.Anything, "ABCD2345").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, businessRepo.ErrDuplicate)

	resp, err := svc.Activate(context.Background(), &models.ActivateRequest{OwnerUserID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.ID)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestActivate_PersistentCodeCollision(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{codes: []string{"RACE2345", "RACE2346"}}, logger.Nop())

	repo.On("GetByOwner", mock.Anything, int64(5)).Return(nil, businessRepo.ErrBusinessNotFound)
	repo.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, businessRepo.ErrDuplicate)

	_, err := svc.Activate(context.Background(), &models.ActivateRequest{OwnerUserID: 5})

	assert.ErrorIs(t, err, ErrCodeGeneration)
	repo.AssertNumberOfCalls(t, "Create", createAttempts)
}

func TestUniqueCode_FallsBackToLongerCode(t *testing.T) {
	repo := &mockRepo{}
	codes := make([]string, 0, domain.CodeAttempts+1)
	for i := 0; i < domain.CodeAttempts; i++ {
		codes = append(codes, "SAMECODE")
	}
	codes = append(codes, "LONGCODE23")
	gen := &sequenceCodes{codes: codes}
	svc := NewService(repo, gen, logger.Nop())

	repo.On("CodeExists", mock.Anything, "SAMECODE").Return(true, nil)
	repo.On("CodeExists", mock.Anything, "LONGCODE23").Return(false, nil)

	code, err := svc.uniqueCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "LONGCODE23", code)
	require.Len(t, gen.lengths, domain.CodeAttempts+1)
	assert.Equal(t, domain.CodeFallbackLength, gen.lengths[domain.CodeAttempts])
}

func TestUniqueCode_GivesUp(t *testing.T) {
	repo := &mockRepo{}
	codes := make([]string, domain.CodeAttempts+1)
	for i := range codes {
		codes[i] = "SAMECODE"
	}
	svc := NewService(repo, &sequenceCodes{codes: codes}, logger.Nop())
	repo.On("CodeExists", mock.Anything, "SAMECODE").Return(true, nil)

	_, err := svc.uniqueCode(context.Background())

	assert.ErrorIs(t, err, ErrCodeGeneration)
}

func TestList_ClampsLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{}, logger.Nop())
	repo.On("List", mock.Anything, domain.BusinessFilter{Query: "barb", Limit: domain.MaxListLimit, Offset: 0}).
		Return([]*domain.Business{{ID: 1, Name: "Barberia"}}, nil)

	resp, err := svc.List(context.Background(), &models.ListRequest{Query: " barb ", Limit: 1000, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, domain.MaxListLimit, resp.Limit)
	assert.Len(t, resp.Items, 1)
}

func TestGetByCode_UppercasesAndMapsNotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{}, logger.Nop())
	repo.On("GetByCode", mock.Anything, "ZZZZ2222").Return(nil, businessRepo.ErrBusinessNotFound)

	_, err := svc.GetByCode(context.Background(), "zzzz2222")

	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestUpdateMine_PartialUpdate(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{}, logger.Nop())
	repo.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{
		ID: 3, OwnerUserID: 5, Name: "Viejo", Code: "ABCD2345", Phone: ptr.Ptr("123"), Address: ptr.Ptr("Calle 1"),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Business) bool {
		return b.Name == "Nuevo" && b.Phone == nil && b.Address != nil && *b.Address == "Calle 1" &&
			b.Category != nil && *b.Category == "peluqueria"
	})).Return(func() *domain.Business {
		return &domain.Business{ID: 3, OwnerUserID: 5, Name: "Nuevo", Code: "ABCD2345", Category: ptr.Ptr("peluqueria")}
	}(), nil)

	resp, err := svc.UpdateMine(context.Background(), &models.UpdateRequest{
		OwnerUserID: 5,
		Name:        ptr.Ptr(" Nuevo "),
		Phone:       ptr.Ptr(""),
		Category:    ptr.Ptr("peluqueria"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Nuevo", resp.Name)
	repo.AssertExpectations(t)
}

func TestUpdateMine_EmptyNameRejected(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &sequenceCodes{}, logger.Nop())
	repo.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 3, OwnerUserID: 5, Name: "Viejo"}, nil)

	_, err := svc.UpdateMine(context.Background(), &models.UpdateRequest{OwnerUserID: 5, Name: ptr.Ptr(" ")})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRandomCodeGenerator(t *testing.T) {
	code, err := RandomCodeGenerator{}.Generate(domain.CodeLength)

	require.NoError(t, err)
	assert.Len(t, code, domain.CodeLength)
	for _, r := range code {
		assert.Contains(t, domain.CodeAlphabet, string(r))
	}
}
