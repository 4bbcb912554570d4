package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"customer-service/internal/dto"
	apierrors "customer-service/internal/errors"
	"customer-service/internal/services"
	"customer-service/internal/validation"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	opCreateCustomer     = "create_customer"
	opGetAllCustomers    = "get_all_customers"
	opGetCustomer        = "get_customer"
	opGetCustomerByEmail = "get_customer_by_email"
	opUpdateCustomer     = "update_customer"
	opDeleteCustomer     = "delete_customer"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	service services.CustomerServiceInterface
	logger  services.CustomerLoggerInterface
	metrics services.MetricsRecorderInterface
	tracer  trace.Tracer
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	service services.CustomerServiceInterface,
	logger services.CustomerLoggerInterface,
	metrics services.MetricsRecorderInterface,
	tracer trace.Tracer,
) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// CreateCustomer creates a new customer
// @Summary Create customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer details"
// @Success 201 {object} dto.VersionedResponse[models.Customer]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid customer data"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "CUSTOMER_002 - Email already registered"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opCreateCustomer)
	defer span.End()
	defer h.observe(opCreateCustomer, time.Now())

	var req dto.CustomerRequest
	bindErr := c.Bind(&req)
	h.logger.LogOperationStarted(ctx, opCreateCustomer, services.PrivacyMedium, map[string]any{"email": req.Email})
	if bindErr != nil {
		return h.malformedBody(c, ctx, span, opCreateCustomer, bindErr)
	}

	customer, err := h.service.Create(ctx, &req)
	if err != nil {
		return h.fail(c, ctx, span, opCreateCustomer, err, map[string]any{"email": req.Email})
	}

	span.SetAttributes(attribute.String("customer.id", customer.ID))
	h.metrics.IncrementCounter(services.MetricCustomerCreated, nil)
	h.succeed(ctx, opCreateCustomer, map[string]any{"customer_id": customer.ID})

	return SendVersioned(c, http.StatusCreated, customer)
}

// GetAllCustomers lists every customer
// @Summary List customers
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.VersionedResponse[[]models.Customer]
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) GetAllCustomers(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opGetAllCustomers)
	defer span.End()
	defer h.observe(opGetAllCustomers, time.Now())

	h.logger.LogOperationStarted(ctx, opGetAllCustomers, services.PrivacyLow, nil)

	customers, err := h.service.GetAll(ctx)
	if err != nil {
		return h.fail(c, ctx, span, opGetAllCustomers, err, nil)
	}

	span.SetAttributes(attribute.Int("customer.count", len(customers)))
	h.metrics.RecordGauge("customers", float64(len(customers)), nil)
	h.succeed(ctx, opGetAllCustomers, map[string]any{"count": len(customers)})

	return SendVersioned(c, http.StatusOK, customers)
}

// GetCustomer returns a single customer by id
// @Summary Get customer
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.VersionedResponse[models.Customer]
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opGetCustomer)
	defer span.End()
	defer h.observe(opGetCustomer, time.Now())

	id := pathParam(c, "id")
	fields := map[string]any{"customer_id": id}
	span.SetAttributes(attribute.String("customer.id", id))
	h.logger.LogOperationStarted(ctx, opGetCustomer, services.PrivacyMedium, fields)

	customer, err := h.service.GetByID(ctx, id)
	if err != nil {
		return h.fail(c, ctx, span, opGetCustomer, err, fields)
	}

	h.succeed(ctx, opGetCustomer, fields)
	return SendVersioned(c, http.StatusOK, customer)
}

// GetCustomerByEmail looks a customer up by exact email
// @Summary Get customer by email
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} dto.VersionedResponse[models.Customer]
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/email/{email} [get]
func (h *CustomerHandler) GetCustomerByEmail(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opGetCustomerByEmail)
	defer span.End()
	defer h.observe(opGetCustomerByEmail, time.Now())

	email := pathParam(c, "email")
	fields := map[string]any{"email": email}
	h.logger.LogOperationStarted(ctx, opGetCustomerByEmail, services.PrivacyMedium, fields)

	customer, err := h.service.GetByEmail(ctx, email)
	if err != nil {
		return h.fail(c, ctx, span, opGetCustomerByEmail, err, fields)
	}

	span.SetAttributes(attribute.String("customer.id", customer.ID))
	h.succeed(ctx, opGetCustomerByEmail, map[string]any{"customer_id": customer.ID})
	return SendVersioned(c, http.StatusOK, customer)
}

// UpdateCustomer replaces every field of an existing customer
// @Summary Update customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.CustomerRequest true "Complete customer details"
// @Success 200 {object} dto.VersionedResponse[models.Customer]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid customer data"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 409 {object} errors.ErrorResponse "CUSTOMER_002 - Email already registered"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opUpdateCustomer)
	defer span.End()
	defer h.observe(opUpdateCustomer, time.Now())

	id := pathParam(c, "id")
	span.SetAttributes(attribute.String("customer.id", id))

	var req dto.CustomerRequest
	bindErr := c.Bind(&req)
	fields := map[string]any{"customer_id": id, "email": req.Email}
	h.logger.LogOperationStarted(ctx, opUpdateCustomer, services.PrivacyMedium, fields)
	if bindErr != nil {
		return h.malformedBody(c, ctx, span, opUpdateCustomer, bindErr)
	}

	customer, err := h.service.Update(ctx, id, &req)
	if err != nil {
		return h.fail(c, ctx, span, opUpdateCustomer, err, fields)
	}

	h.metrics.IncrementCounter(services.MetricCustomerUpdated, nil)
	h.succeed(ctx, opUpdateCustomer, map[string]any{"customer_id": id})
	return SendVersioned(c, http.StatusOK, customer)
}

// DeleteCustomer permanently removes a customer
// @Summary Delete customer
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.VersionedResponse[dto.DeleteCustomerResponse]
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	ctx, span := h.tracer.Start(c.Request().Context(), opDeleteCustomer)
	defer span.End()
	defer h.observe(opDeleteCustomer, time.Now())

	id := pathParam(c, "id")
	fields := map[string]any{"customer_id": id}
	span.SetAttributes(attribute.String("customer.id", id))
	h.logger.LogOperationStarted(ctx, opDeleteCustomer, services.PrivacyMedium, fields)

	if err := h.service.Delete(ctx, id); err != nil {
		return h.fail(c, ctx, span, opDeleteCustomer, err, fields)
	}

	h.metrics.IncrementCounter(services.MetricCustomerDeleted, nil)
	h.succeed(ctx, opDeleteCustomer, fields)
	return SendVersioned(c, http.StatusOK, dto.DeleteCustomerResponse{Message: "Customer deleted successfully"})
}

func (h *CustomerHandler) observe(operation string, start time.Time) {
	h.metrics.RecordProcessingTime(operation, time.Since(start))
}

func (h *CustomerHandler) succeed(ctx context.Context, operation string, fields map[string]any) {
	h.countOutcome(operation, "success")
	h.logger.LogOperationSucceeded(ctx, operation, fields)
}

func (h *CustomerHandler) countOutcome(operation, status string) {
	h.metrics.IncrementCounter(services.MetricCustomerOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func (h *CustomerHandler) malformedBody(c echo.Context, ctx context.Context, span trace.Span, operation string, err error) error {
	span.SetStatus(codes.Error, "malformed request body")
	h.countOutcome(operation, "invalid")
	h.logger.LogValidationFailure(ctx, operation, []string{"body: " + err.Error()})
	return SendError(c, apierrors.ValidationMalformedBody)
}

// fail translates a service error into its HTTP response, logging the outcome.
// Internal detail only reaches the log; clients get the catalogued message.
func (h *CustomerHandler) fail(c echo.Context, ctx context.Context, span trace.Span, operation string, err error, fields map[string]any) error {
	span.RecordError(err)

	var validationErr *validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		span.SetStatus(codes.Error, "validation failed")
		h.countOutcome(operation, "invalid")
		h.logger.LogValidationFailure(ctx, operation, validationErr.Details())
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validationErr.Details()...))

	case errors.Is(err, services.ErrCustomerNotFound):
		h.countOutcome(operation, "not_found")
		h.logger.LogCustomerNotFound(ctx, operation, fields)
		return SendError(c, apierrors.CustomerNotFound)

	case errors.Is(err, services.ErrDuplicateEmail):
		h.countOutcome(operation, "conflict")
		email, _ := fields["email"].(string)
		h.logger.LogDuplicateEmail(ctx, operation, email)
		return SendError(c, apierrors.CustomerAlreadyExists)

	default:
		span.SetStatus(codes.Error, "internal error")
		h.countOutcome(operation, "error")
		h.logger.LogOperationFailed(ctx, operation, err)
		return SendSystemError(c, err)
	}
}
