package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/handler/dto"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service"
)

type RegistrationSvc interface {
	Submit(ctx context.Context, input *domain.RegistrationInput) (*domain.SubmissionResult, error)
	Get(ctx context.Context, id int64) (*domain.Registration, error)
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	List(ctx context.Context, f domain.ListFilter) (*domain.RegistrationPage, error)
	AdminUpdate(ctx context.Context, id int64, input service.AdminUpdateInput) (*domain.Registration, error)
	UpdatePayment(ctx context.Context, id int64, paymentStatus string, paymentDate *time.Time) (*domain.PaymentUpdateResult, error)
	Cancel(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.RegistrationStats, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.UserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input domain.UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ActivitySvc interface {
	Create(ctx context.Context, input domain.ActivityInput) (*domain.Activity, error)
	Get(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Activity, error)
	Update(ctx context.Context, id int64, input domain.ActivityInput) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	registrationService RegistrationSvc
	userService         UserSvc
	activityService     ActivitySvc
}

func NewHandler(registrationService RegistrationSvc, userService UserSvc, activityService ActivitySvc) *Handler {
	return &Handler{
		registrationService: registrationService,
		userService:         userService,
		activityService:     activityService,
	}
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// handleError maps the closed set of domain error kinds onto HTTP statuses.
// Anything outside the set is an internal failure and is never echoed back.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.MissingFields) > 0 {
			c.JSON(http.StatusBadRequest, dto.MissingFieldsResponse{
				Error:         "Missing required fields",
				MissingFields: verr.MissingFields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ValidationDetailsResponse{
			Error:   "Validation error",
			Details: verr.Details,
		})

	case errors.Is(err, domain.ErrPaymentStatusRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Payment status is required"})

	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	// A duplicate user email and an activity naming an unknown user are
	// bad request bodies, not resource conflicts.
	case errors.Is(err, domain.ErrUserEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ValidationDetailsResponse{
			Error: "Validation error",
			Details: []domain.FieldViolation{
				{Field: "email", Message: err.Error()},
			},
		})

	case errors.Is(err, domain.ErrActivityUserUnknown):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User not found"})

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "Email already registered",
			Message: "A registration with this email already exists",
		})

	case errors.Is(err, domain.ErrReferenceTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Duplicate entry", Message: err.Error()})

	case errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
