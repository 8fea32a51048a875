package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/handler/dto"
	hmocks "github.com/FrankMwesigwa/ntlp-conf/internal/handler/mocks"
	"github.com/FrankMwesigwa/ntlp-conf/internal/router"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service"
)

func setupRouter(t *testing.T) (*hmocks.MockRegistrationSvc, *hmocks.MockUserSvc, *hmocks.MockActivitySvc, http.Handler) {
	t.Helper()
	regSvc := hmocks.NewMockRegistrationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	activitySvc := hmocks.NewMockActivitySvc(t)

	h := NewHandler(regSvc, userSvc, activitySvc)
	r := router.InitRouter("test", h)

	return regSvc, userSvc, activitySvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func registrationFixture() *domain.Registration {
	city := "Kampala"
	return &domain.Registration{
		ID:                     1,
		Title:                  "Dr",
		FirstName:              "Sarah",
		LastName:               "Nakato",
		Email:                  "sarah.nakato@health.go.ug",
		PhoneNumber:            "+256700123456",
		Country:                "Uganda",
		City:                   &city,
		Organization:           "Ministry of Health",
		JobTitle:               "Epidemiologist",
		ProfessionalCategory:   "Public Health Professional",
		RegistrationType:       domain.RegistrationTypeLocal,
		RegistrationFee:        150000,
		Currency:               domain.CurrencyUGX,
		NewsletterSubscription: true,
		TermsAccepted:          true,
		PaymentStatus:          domain.PaymentStatusPending,
		PaymentReference:       "REG-MBCDEF12-A1B2C",
		RegistrationStatus:     domain.RegistrationStatusPending,
		CreatedAt:              time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:              time.Date(2026, time.February, 2, 10, 0, 0, 0, time.UTC),
	}
}

// --- Registrations ---

func TestHandler_SubmitRegistration_Created(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(&domain.SubmissionResult{
		ID:                 1,
		Email:              "sarah.nakato@health.go.ug",
		FirstName:          "Sarah",
		LastName:           "Nakato",
		RegistrationType:   domain.RegistrationTypeLocal,
		RegistrationFee:    150000,
		Currency:           domain.CurrencyUGX,
		PaymentReference:   "REG-MBCDEF12-A1B2C",
		PaymentStatus:      domain.PaymentStatusPending,
		RegistrationStatus: domain.RegistrationStatusPending,
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.RegistrationRequest{
		Title:                "Dr",
		FirstName:            "Sarah",
		LastName:             "Nakato",
		Email:                "sarah.nakato@health.go.ug",
		PhoneNumber:          "+256700123456",
		Country:              "Uganda",
		Organization:         "Ministry of Health",
		JobTitle:             "Epidemiologist",
		ProfessionalCategory: "Public Health Professional",
		RegistrationType:     "local",
		TermsAccepted:        true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Registration submitted successfully", resp.Message)
	require.NotNil(t, resp.Registration)
	assert.Equal(t, int64(1), resp.Registration.ID)
	assert.Equal(t, "REG-MBCDEF12-A1B2C", resp.Registration.PaymentReference)
}

func TestHandler_SubmitRegistration_MissingFields(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{MissingFields: []string{"email", "termsAccepted"}})

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.RegistrationRequest{FirstName: "Sarah"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.MissingFieldsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp.Error)
	assert.Equal(t, []string{"email", "termsAccepted"}, resp.MissingFields)
}

func TestHandler_SubmitRegistration_ValidationDetails(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Details: []domain.FieldViolation{
			{Field: "firstName", Message: "firstName must be at least 2 characters"},
		}})

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.RegistrationRequest{FirstName: "S"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "firstName", resp.Details[0].Field)
}

func TestHandler_SubmitRegistration_EmailTaken(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.RegistrationRequest{
		Email: "sarah.nakato@health.go.ug",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already registered", resp.Error)
	assert.Equal(t, "A registration with this email already exists", resp.Message)
}

func TestHandler_SubmitRegistration_MalformedJSON(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRegistration(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Get(mock.Anything, int64(1)).Return(registrationFixture(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "sarah.nakato@health.go.ug", resp.Email)

	// The audit timestamp stays server-side.
	assert.NotContains(t, w.Body.String(), "updatedAt")
}

func TestHandler_GetRegistration_NotFound(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Get(mock.Anything, int64(99)).
		Return(nil, domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRegistration_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRegistrationByEmail(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().GetByEmail(mock.Anything, "sarah.nakato@health.go.ug").
		Return(registrationFixture(), nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/email/sarah.nakato@health.go.ug", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sarah.nakato@health.go.ug", resp.Email)
}

func TestHandler_ListRegistrations(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().List(mock.Anything, domain.ListFilter{
		RegistrationType: "local",
		PaymentStatus:    "pending",
		Search:           "nakato",
		Page:             2,
		Limit:            5,
	}).Return(&domain.RegistrationPage{
		Registrations: []*domain.Registration{registrationFixture()},
		Pagination: domain.Pagination{
			CurrentPage:        2,
			TotalPages:         3,
			TotalRegistrations: 11,
			HasNextPage:        true,
			HasPrevPage:        true,
		},
	}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/registrations?page=2&limit=5&registrationType=local&paymentStatus=pending&search=nakato", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Registrations, 1)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 11, resp.Pagination.TotalRegistrations)
	assert.True(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
}

func TestHandler_ListRegistrations_DefaultPaging(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().List(mock.Anything, domain.ListFilter{Page: 1, Limit: 10}).
		Return(&domain.RegistrationPage{
			Registrations: nil,
			Pagination:    domain.Pagination{CurrentPage: 1},
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Registrations)
	assert.Empty(t, resp.Registrations)
}

func TestHandler_UpdateRegistration(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	updated := registrationFixture()
	updated.PaymentStatus = domain.PaymentStatusRefunded

	regSvc.EXPECT().AdminUpdate(mock.Anything, int64(1), service.AdminUpdateInput{
		PaymentStatus: "refunded",
	}).Return(updated, nil)

	w := doJSON(t, r, http.MethodPut, "/api/registrations/1", dto.AdminUpdateRequest{
		PaymentStatus: "refunded",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AdminUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Registration updated successfully", resp.Message)
	assert.Equal(t, "refunded", resp.Registration.PaymentStatus)
}

func TestHandler_UpdatePaymentStatus(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	paymentDate := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	confirmationDate := paymentDate.Add(time.Second)

	regSvc.EXPECT().UpdatePayment(mock.Anything, int64(1), "paid", &paymentDate).
		Return(&domain.PaymentUpdateResult{
			ID:                 1,
			PaymentStatus:      domain.PaymentStatusPaid,
			RegistrationStatus: domain.RegistrationStatusConfirmed,
			PaymentDate:        &paymentDate,
			ConfirmationDate:   &confirmationDate,
		}, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/registrations/1/payment", dto.PaymentUpdateRequest{
		PaymentStatus: "paid",
		PaymentDate:   &paymentDate,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment status updated successfully", resp.Message)
	require.NotNil(t, resp.Registration)
	assert.Equal(t, domain.PaymentStatusPaid, resp.Registration.PaymentStatus)
	assert.Equal(t, domain.RegistrationStatusConfirmed, resp.Registration.RegistrationStatus)
	require.NotNil(t, resp.Registration.ConfirmationDate)
}

func TestHandler_UpdatePaymentStatus_Required(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().UpdatePayment(mock.Anything, int64(1), "", (*time.Time)(nil)).
		Return(nil, domain.ErrPaymentStatusRequired)

	w := doJSON(t, r, http.MethodPatch, "/api/registrations/1/payment", dto.PaymentUpdateRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment status is required", resp.Error)
}

func TestHandler_CancelRegistration(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Cancel(mock.Anything, int64(1)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/registrations/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Registration cancelled successfully", resp.Message)
}

func TestHandler_CancelRegistration_NotFound(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Cancel(mock.Anything, int64(99)).
		Return(domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/registrations/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RegistrationStats(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Stats(mock.Anything).Return(&domain.RegistrationStats{
		Total: 5,
		ByType: []domain.DimensionCount{
			{Value: "local", Count: 3},
			{Value: "international", Count: 2},
		},
		ByStatus: []domain.DimensionCount{
			{Value: "pending", Count: 4},
			{Value: "confirmed", Count: 1},
		},
		ByPayment: []domain.DimensionCount{
			{Value: "pending", Count: 5},
		},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/stats/overview", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalRegistrations)
	require.Len(t, resp.ByType, 2)
	assert.Equal(t, "local", resp.ByType[0].RegistrationType)
	assert.Equal(t, 3, resp.ByType[0].Count)
	require.Len(t, resp.ByPayment, 1)
	assert.Equal(t, "pending", resp.ByPayment[0].PaymentStatus)
}

func TestHandler_RegistrationStats_InternalError(t *testing.T) {
	regSvc, _, _, r := setupRouter(t)

	regSvc.EXPECT().Stats(mock.Anything).
		Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/stats/overview", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, domain.UserInput{
		Name:  "Frank",
		Email: "frank@example.com",
	}).Return(&domain.User{ID: 1, Name: "Frank", Email: "frank@example.com"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.UserRequest{
		Name:  "Frank",
		Email: "frank@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
}

func TestHandler_CreateUser_DuplicateEmail(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrUserEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.UserRequest{
		Name:  "Frank",
		Email: "frank@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ValidationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "email", resp.Details[0].Field)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Get(mock.Anything, int64(99)).
		Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/users/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteUser(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/users/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User deleted successfully", resp.Message)
}

// --- Activities ---

func TestHandler_CreateActivity(t *testing.T) {
	_, _, activitySvc, r := setupRouter(t)

	activitySvc.EXPECT().Create(mock.Anything, domain.ActivityInput{
		Title:       "Abstract review",
		Description: "Review submitted abstracts",
		UserID:      1,
	}).Return(&domain.Activity{ID: 3, Title: "Abstract review", UserID: 1}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/activities", dto.ActivityRequest{
		Title:       "Abstract review",
		Description: "Review submitted abstracts",
		UserID:      1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateActivity_UnknownUser(t *testing.T) {
	_, _, activitySvc, r := setupRouter(t)

	activitySvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrActivityUserUnknown)

	w := doJSON(t, r, http.MethodPost, "/api/activities", dto.ActivityRequest{
		Title:  "Abstract review",
		UserID: 99,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp.Error)
}

func TestHandler_ListActivitiesByUser_UserNotFound(t *testing.T) {
	_, _, activitySvc, r := setupRouter(t)

	activitySvc.EXPECT().ListByUser(mock.Anything, int64(99)).
		Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/activities/user/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListActivitiesByUser(t *testing.T) {
	_, _, activitySvc, r := setupRouter(t)

	activitySvc.EXPECT().ListByUser(mock.Anything, int64(1)).
		Return([]*domain.Activity{{ID: 3, UserID: 1}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/activities/user/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(3), resp[0].ID)
}

// --- Health ---

func TestHandler_Health(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
