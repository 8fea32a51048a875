package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var referencePattern = regexp.MustCompile(`^REG-[0-9A-Z]+-[0-9A-Z]{5}$`)

func validSubmission() *domain.RegistrationInput {
	return &domain.RegistrationInput{
		Title:                "Dr",
		FirstName:            "Sarah",
		LastName:             "Nakato",
		Email:                "sarah.nakato@health.go.ug",
		PhoneNumber:          "+256700123456",
		Country:              "Uganda",
		Organization:         "Ministry of Health",
		JobTitle:             "Epidemiologist",
		ProfessionalCategory: "Public Health Professional",
		RegistrationType:     "international",
		TermsAccepted:        true,
	}
}

func TestRegistrationService_Submit(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "sarah.nakato@health.go.ug").
		Return(nil, domain.ErrRegistrationNotFound)

	var created *domain.Registration
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reg *domain.Registration) {
			reg.ID = 42
			created = reg
		}).
		Return(nil)

	result, err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, domain.RegistrationTypeInternational, result.RegistrationType)
	assert.Equal(t, float64(400), result.RegistrationFee)
	assert.Equal(t, domain.CurrencyUSD, result.Currency)
	assert.Equal(t, domain.PaymentStatusPending, result.PaymentStatus)
	assert.Equal(t, domain.RegistrationStatusPending, result.RegistrationStatus)
	assert.Regexp(t, referencePattern, result.PaymentReference)

	require.NotNil(t, created)
	assert.True(t, created.NewsletterSubscription, "newsletter is opt-out")
	assert.False(t, created.PhotographyConsent, "photography consent is opt-in")
	assert.Equal(t, "no", created.AccommodationNeeded)
	assert.Nil(t, created.City)
}

func TestRegistrationService_Submit_StudentFee(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
		Return(nil, domain.ErrRegistrationNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	in := validSubmission()
	in.RegistrationType = "student"

	result, err := svc.Submit(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, float64(75000), result.RegistrationFee)
	assert.Equal(t, domain.CurrencyUGX, result.Currency)
}

func TestRegistrationService_Submit_InvalidInput(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	in := validSubmission()
	in.Email = ""
	in.Organization = ""

	_, err := svc.Submit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"email", "organization"}, verr.MissingFields)
}

func TestRegistrationService_Submit_EmailTaken(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "sarah.nakato@health.go.ug").
		Return(&domain.Registration{ID: 7, Email: "sarah.nakato@health.go.ug"}, nil)

	_, err := svc.Submit(context.Background(), validSubmission())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegistrationService_Submit_ReferenceCollisionRetried(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
		Return(nil, domain.ErrRegistrationNotFound)

	var references []string
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reg *domain.Registration) {
			references = append(references, reg.PaymentReference)
		}).
		Return(domain.ErrReferenceTaken).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, reg *domain.Registration) {
			references = append(references, reg.PaymentReference)
		}).
		Return(nil).Once()

	result, err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	require.Len(t, references, 2)
	assert.NotEqual(t, references[0], references[1])
	assert.Equal(t, references[1], result.PaymentReference)
}

func TestRegistrationService_List_Pagination(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	regs := make([]*domain.Registration, 10)
	for i := range regs {
		regs[i] = &domain.Registration{ID: int64(i + 11)}
	}
	repo.EXPECT().List(mock.Anything, domain.ListFilter{Page: 2, Limit: 10}).
		Return(regs, 25, nil)

	page, err := svc.List(context.Background(), domain.ListFilter{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, page.Registrations, 10)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 25, page.Pagination.TotalRegistrations)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestRegistrationService_List_LastPage(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything, domain.ListFilter{Page: 3, Limit: 10}).
		Return([]*domain.Registration{{ID: 25}}, 25, nil)

	page, err := svc.List(context.Background(), domain.ListFilter{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.False(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestRegistrationService_List_ClampsPageAndLimit(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything, domain.ListFilter{Page: 1, Limit: 10}).
		Return(nil, 0, nil)

	page, err := svc.List(context.Background(), domain.ListFilter{Page: -3, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPrevPage)
}

func TestRegistrationService_List_CapsLimit(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything, domain.ListFilter{Page: 1, Limit: 100}).
		Return(nil, 0, nil)

	_, err := svc.List(context.Background(), domain.ListFilter{Page: 1, Limit: 5000})

	require.NoError(t, err)
}

func TestRegistrationService_AdminUpdate(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	var patch domain.StatusPatch
	repo.EXPECT().UpdateStatus(mock.Anything, int64(5), mock.Anything).
		Run(func(ctx context.Context, id int64, p domain.StatusPatch) {
			patch = p
		}).
		Return(&domain.Registration{ID: 5, PaymentStatus: domain.PaymentStatusRefunded}, nil)

	updated, err := svc.AdminUpdate(context.Background(), 5, AdminUpdateInput{
		PaymentStatus: "refunded",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, updated.PaymentStatus)

	require.NotNil(t, patch.PaymentStatus)
	assert.Equal(t, domain.PaymentStatusRefunded, *patch.PaymentStatus)
	assert.Nil(t, patch.RegistrationStatus)
	assert.Nil(t, patch.PaymentDate)
	assert.Nil(t, patch.ConfirmationDate)
}

func TestRegistrationService_AdminUpdate_InvalidStatus(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	_, err := svc.AdminUpdate(context.Background(), 5, AdminUpdateInput{
		PaymentStatus:      "settled",
		RegistrationStatus: "archived",
	})

	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Details, 2)
}

func TestRegistrationService_AdminUpdate_NotFound(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.AdminUpdate(context.Background(), 99, AdminUpdateInput{PaymentStatus: "paid"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_UpdatePayment_PaidConfirms(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	paymentDate := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	var patch domain.StatusPatch
	repo.EXPECT().UpdateStatus(mock.Anything, int64(5), mock.Anything).
		Run(func(ctx context.Context, id int64, p domain.StatusPatch) {
			patch = p
		}).
		Return(&domain.Registration{
			ID:                 5,
			PaymentStatus:      domain.PaymentStatusPaid,
			RegistrationStatus: domain.RegistrationStatusConfirmed,
			PaymentDate:        &paymentDate,
		}, nil)

	result, err := svc.UpdatePayment(context.Background(), 5, "paid", &paymentDate)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, result.PaymentStatus)
	assert.Equal(t, domain.RegistrationStatusConfirmed, result.RegistrationStatus)

	// Confirmation rides in the same patch as the payment status.
	require.NotNil(t, patch.PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPaid, *patch.PaymentStatus)
	require.NotNil(t, patch.RegistrationStatus)
	assert.Equal(t, domain.RegistrationStatusConfirmed, *patch.RegistrationStatus)
	require.NotNil(t, patch.ConfirmationDate)
	assert.WithinDuration(t, time.Now().UTC(), *patch.ConfirmationDate, time.Minute)
	assert.Equal(t, &paymentDate, patch.PaymentDate)
}

func TestRegistrationService_UpdatePayment_FailedDoesNotConfirm(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	var patch domain.StatusPatch
	repo.EXPECT().UpdateStatus(mock.Anything, int64(5), mock.Anything).
		Run(func(ctx context.Context, id int64, p domain.StatusPatch) {
			patch = p
		}).
		Return(&domain.Registration{
			ID:                 5,
			PaymentStatus:      domain.PaymentStatusFailed,
			RegistrationStatus: domain.RegistrationStatusPending,
		}, nil)

	result, err := svc.UpdatePayment(context.Background(), 5, "failed", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, result.PaymentStatus)
	assert.Equal(t, domain.RegistrationStatusPending, result.RegistrationStatus)
	assert.Nil(t, patch.RegistrationStatus)
	assert.Nil(t, patch.ConfirmationDate)
}

func TestRegistrationService_UpdatePayment_StatusRequired(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	_, err := svc.UpdatePayment(context.Background(), 5, "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentStatusRequired)
}

func TestRegistrationService_UpdatePayment_InvalidStatus(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)

	_, err := svc.UpdatePayment(context.Background(), 5, "settled", nil)

	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Details, 1)
	assert.Equal(t, "paymentStatus", verr.Details[0].Field)
}

func TestRegistrationService_UpdatePayment_NotFound(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.UpdatePayment(context.Background(), 99, "paid", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Cancel(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{ID: 5}, nil)
	repo.EXPECT().Cancel(mock.Anything, int64(5)).Return(nil)

	err := svc.Cancel(context.Background(), 5)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(5)).
		Return(&domain.Registration{
			ID:                 5,
			RegistrationStatus: domain.RegistrationStatusCancelled,
		}, nil)
	repo.EXPECT().Cancel(mock.Anything, int64(5)).Return(nil)

	err := svc.Cancel(context.Background(), 5)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_NotFound(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domain.ErrRegistrationNotFound)

	err := svc.Cancel(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Stats(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	stats := &domain.RegistrationStats{
		Total: 3,
		ByType: []domain.DimensionCount{
			{Value: "local", Count: 2},
			{Value: "student", Count: 1},
		},
	}
	repo.EXPECT().Stats(mock.Anything).Return(stats, nil)

	got, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestRegistrationService_Submit_RepoError(t *testing.T) {
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).
		Return(nil, domain.ErrRegistrationNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	_, err := svc.Submit(context.Background(), validSubmission())

	require.Error(t, err)
}
