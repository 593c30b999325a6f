package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/application/usecases/queries"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the service. It translates requests
// into commands and queries, leaving all business rules to the use cases.
type Server struct {
	// Command handlers
	createJobHandler      commands.CreateJobCommandHandler
	cancelJobHandler      commands.CancelJobCommandHandler
	acceptJobHandler      commands.AcceptJobCommandHandler
	startJobHandler       commands.StartJobCommandHandler
	verifyOtpHandler      commands.VerifyOtpCommandHandler
	requestPaymentHandler commands.RequestPaymentCommandHandler
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler
	completeJobHandler    commands.CompleteJobCommandHandler

	// Query handlers
	getCustomerJobsHandler queries.GetCustomerJobsQueryHandler
	getMechanicJobsHandler queries.GetMechanicJobsQueryHandler
	getNearbyJobsHandler   queries.GetNearbyJobsQueryHandler
	getJobOtpHandler       queries.GetJobOtpQueryHandler
	getReceiptHandler      queries.GetReceiptQueryHandler

	locationReporter ports.MechanicLocationReporter
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	startJobHandler commands.StartJobCommandHandler,
	verifyOtpHandler commands.VerifyOtpCommandHandler,
	requestPaymentHandler commands.RequestPaymentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	completeJobHandler commands.CompleteJobCommandHandler,
	getCustomerJobsHandler queries.GetCustomerJobsQueryHandler,
	getMechanicJobsHandler queries.GetMechanicJobsQueryHandler,
	getNearbyJobsHandler queries.GetNearbyJobsQueryHandler,
	getJobOtpHandler queries.GetJobOtpQueryHandler,
	getReceiptHandler queries.GetReceiptQueryHandler,
	locationReporter ports.MechanicLocationReporter,
) *Server {
	return &Server{
		createJobHandler:       createJobHandler,
		cancelJobHandler:       cancelJobHandler,
		acceptJobHandler:       acceptJobHandler,
		startJobHandler:        startJobHandler,
		verifyOtpHandler:       verifyOtpHandler,
		requestPaymentHandler:  requestPaymentHandler,
		confirmPaymentHandler:  confirmPaymentHandler,
		completeJobHandler:     completeJobHandler,
		getCustomerJobsHandler: getCustomerJobsHandler,
		getMechanicJobsHandler: getMechanicJobsHandler,
		getNearbyJobsHandler:   getNearbyJobsHandler,
		getJobOtpHandler:       getJobOtpHandler,
		getReceiptHandler:      getReceiptHandler,
		locationReporter:       locationReporter,
	}
}

// RegisterRoutes attaches the API to the echo instance. The payment
// confirmation callback is registered outside the authenticated group since
// the provider calls it without a user token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	customers := api.Group("", RequireRole(RoleCustomer))
	customers.POST("/jobs", s.CreateJob)
	customers.GET("/jobs", s.GetCustomerJobs)
	customers.POST("/jobs/:jobID/cancel", s.CancelJob)
	customers.GET("/jobs/:jobID/otp", s.GetJobOtp)
	customers.GET("/jobs/:jobID/receipt", s.GetReceipt)

	mechanics := api.Group("", RequireRole(RoleMechanic))
	mechanics.GET("/jobs/nearby", s.GetNearbyJobs)
	mechanics.GET("/jobs/assigned", s.GetMechanicJobs)
	mechanics.POST("/jobs/:jobID/accept", s.AcceptJob)
	mechanics.POST("/jobs/:jobID/start", s.StartJob)
	mechanics.POST("/jobs/:jobID/verify-otp", s.VerifyOtp)
	mechanics.POST("/jobs/:jobID/payment", s.RequestPayment)
	mechanics.POST("/jobs/:jobID/complete", s.CompleteJob)
	mechanics.PUT("/mechanics/location", s.ReportLocation)

	e.POST("/api/v1/payments/:jobID/confirm", s.ConfirmPayment)
}

type geoPointPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type jobResponse struct {
	ID          string           `json:"id"`
	CustomerID  string           `json:"customer_id"`
	ServiceID   string           `json:"service_id"`
	VehicleID   string           `json:"vehicle_id"`
	MechanicID  *string          `json:"mechanic_id,omitempty"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	ServiceName string           `json:"service_name"`
	Pickup      *geoPointPayload `json:"pickup,omitempty"`
	BaseAmount  float64          `json:"base_amount"`
	ExtraAmount float64          `json:"extra_amount"`
	TotalAmount float64          `json:"total_amount"`
	PaymentURL  *string          `json:"payment_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func jobResponseFromView(view queries.JobView) jobResponse {
	response := jobResponse{
		ID:          view.ID.String(),
		CustomerID:  view.CustomerID.String(),
		ServiceID:   view.ServiceID.String(),
		VehicleID:   view.VehicleID.String(),
		Description: view.Description,
		Status:      view.Status,
		ServiceName: view.ServiceName,
		BaseAmount:  view.BaseAmount,
		ExtraAmount: view.ExtraAmount,
		TotalAmount: view.TotalAmount,
		PaymentURL:  view.PaymentURL,
		CreatedAt:   view.CreatedAt,
	}

	if view.MechanicID != nil {
		mechanicID := view.MechanicID.String()
		response.MechanicID = &mechanicID
	}
	if view.Pickup != nil {
		response.Pickup = &geoPointPayload{
			Latitude:  view.Pickup.Latitude(),
			Longitude: view.Pickup.Longitude(),
		}
	}

	return response
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var request struct {
		ServiceID   string           `json:"service_id"`
		VehicleID   string           `json:"vehicle_id"`
		Description string           `json:"description"`
		Pickup      *geoPointPayload `json:"pickup"`
	}
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	serviceID, err := kernel.UUIDFromString(request.ServiceID)
	if err != nil {
		return respondError(c, err)
	}
	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return respondError(c, err)
	}

	var pickup *kernel.GeoPoint
	if request.Pickup != nil {
		point, pointErr := kernel.NewGeoPoint(request.Pickup.Latitude, request.Pickup.Longitude)
		if pointErr != nil {
			return respondError(c, pointErr)
		}
		pickup = &point
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID, principal.ID, serviceID, vehicleID, request.Description, pickup)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.createJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": jobID.String()})
}

// GetCustomerJobs handles GET /api/v1/jobs.
func (s *Server) GetCustomerJobs(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetCustomerJobsQuery(principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.getCustomerJobsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]jobResponse, len(views))
	for i, view := range views {
		response[i] = jobResponseFromView(view)
	}

	return c.JSON(http.StatusOK, response)
}

// CancelJob handles POST /api/v1/jobs/:jobID/cancel.
func (s *Server) CancelJob(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCancelJobCommand(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.cancelJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetJobOtp handles GET /api/v1/jobs/:jobID/otp.
func (s *Server) GetJobOtp(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetJobOtpQuery(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getJobOtpHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]*string{"code": result.Code})
}

// GetReceipt handles GET /api/v1/jobs/:jobID/receipt.
func (s *Server) GetReceipt(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetReceiptQuery(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	receipt, err := s.getReceiptHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, struct {
		JobID       string    `json:"job_id"`
		Status      string    `json:"status"`
		ServiceName string    `json:"service_name"`
		Description string    `json:"description"`
		BaseAmount  float64   `json:"base_amount"`
		ExtraAmount float64   `json:"extra_amount"`
		TotalAmount float64   `json:"total_amount"`
		PaymentURL  *string   `json:"payment_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}{
		JobID:       receipt.JobID.String(),
		Status:      receipt.Status,
		ServiceName: receipt.ServiceName,
		Description: receipt.Description,
		BaseAmount:  receipt.BaseAmount,
		ExtraAmount: receipt.ExtraAmount,
		TotalAmount: receipt.TotalAmount,
		PaymentURL:  receipt.PaymentURL,
		CreatedAt:   receipt.CreatedAt,
	})
}

// GetNearbyJobs handles GET /api/v1/jobs/nearby. The optional radius_km
// parameter bounds the search; omitted or zero means unbounded.
func (s *Server) GetNearbyJobs(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		parsed, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return badRequest(c, "radius_km must be a number")
		}
		radiusKm = parsed
	}

	query, err := queries.NewGetNearbyJobsQuery(principal.ID, radiusKm)
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.getNearbyJobsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	type nearbyJobResponse struct {
		jobResponse
		DistanceKm *float64 `json:"distance_km,omitempty"`
	}

	response := make([]nearbyJobResponse, len(views))
	for i, view := range views {
		response[i] = nearbyJobResponse{jobResponse: jobResponseFromView(view.JobView)}
		if !math.IsInf(view.DistanceKm, 1) {
			distance := view.DistanceKm
			response[i].DistanceKm = &distance
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetMechanicJobs handles GET /api/v1/jobs/assigned.
func (s *Server) GetMechanicJobs(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetMechanicJobsQuery(principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	views, err := s.getMechanicJobsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]jobResponse, len(views))
	for i, view := range views {
		response[i] = jobResponseFromView(view)
	}

	return c.JSON(http.StatusOK, response)
}

// AcceptJob handles POST /api/v1/jobs/:jobID/accept.
func (s *Server) AcceptJob(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.acceptJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StartJob handles POST /api/v1/jobs/:jobID/start. Issues the OTP the
// customer must later read back to the mechanic.
func (s *Server) StartJob(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewStartJobCommand(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.startJobHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"already_issued": result.AlreadyIssued})
}

// VerifyOtp handles POST /api/v1/jobs/:jobID/verify-otp.
func (s *Server) VerifyOtp(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	var request struct {
		Code string `json:"code"`
	}
	if err = c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewVerifyOtpCommand(jobID, principal.ID, request.Code)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.verifyOtpHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RequestPayment handles POST /api/v1/jobs/:jobID/payment.
func (s *Server) RequestPayment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	var request struct {
		ExtraAmount float64 `json:"extra_amount"`
	}
	if err = c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRequestPaymentCommand(jobID, principal.ID, request.ExtraAmount)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.requestPaymentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, struct {
		CheckoutURL string  `json:"checkout_url"`
		TotalAmount float64 `json:"total_amount"`
	}{
		CheckoutURL: result.CheckoutURL,
		TotalAmount: result.TotalAmount,
	})
}

// ConfirmPayment handles POST /api/v1/payments/:jobID/confirm, the callback
// the payment provider hits once a checkout session settles. Idempotent;
// repeated callbacks for a settled job succeed without effect.
func (s *Server) ConfirmPayment(c echo.Context) error {
	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(jobID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.confirmPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteJob handles POST /api/v1/jobs/:jobID/complete.
func (s *Server) CompleteJob(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	jobID, err := kernel.UUIDFromString(c.Param("jobID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCompleteJobCommand(jobID, principal.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.completeJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReportLocation handles PUT /api/v1/mechanics/location. Keeps the
// mechanic's last known position current for proximity matching.
func (s *Server) ReportLocation(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var request geoPointPayload
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	position, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.locationReporter.UpdateLocation(c.Request().Context(), principal.ID, position); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
