// Package http exposes the shipment lifecycle use cases over an echo server.
package http

import (
	"net/http"
	"strconv"
	"time"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler   *commands.CreateShipmentCommandHandler
	modifyShipmentHandler   *commands.ModifyShipmentCommandHandler
	closeShipmentHandler    *commands.CloseShipmentCommandHandler
	createCartonHandler     *commands.CreateCartonCommandHandler
	packCartonItemHandler   *commands.PackCartonItemCommandHandler
	verifyCartonItemHandler *commands.VerifyCartonItemCommandHandler
	removeCartonItemHandler *commands.RemoveCartonItemCommandHandler
	closeCartonHandler      *commands.CloseCartonCommandHandler
	repackCartonHandler     *commands.RepackCartonCommandHandler
	removeCartonHandler     *commands.RemoveCartonCommandHandler

	// Query handlers
	getShipmentsHandler         queries.GetShipmentsQueryHandler
	findShipmentHandler         *queries.FindShipmentQueryHandler
	getPackingSlipHandler       *queries.GetPackingSlipQueryHandler
	getCartonLabelHandler       *queries.GetCartonLabelQueryHandler
	getShippingSummaryHandler   *queries.GetShippingSummaryQueryHandler
	getUnacceptableUnitsHandler *queries.GetUnacceptableUnitsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler *commands.CreateShipmentCommandHandler,
	modifyShipmentHandler *commands.ModifyShipmentCommandHandler,
	closeShipmentHandler *commands.CloseShipmentCommandHandler,
	createCartonHandler *commands.CreateCartonCommandHandler,
	packCartonItemHandler *commands.PackCartonItemCommandHandler,
	verifyCartonItemHandler *commands.VerifyCartonItemCommandHandler,
	removeCartonItemHandler *commands.RemoveCartonItemCommandHandler,
	closeCartonHandler *commands.CloseCartonCommandHandler,
	repackCartonHandler *commands.RepackCartonCommandHandler,
	removeCartonHandler *commands.RemoveCartonCommandHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	findShipmentHandler *queries.FindShipmentQueryHandler,
	getPackingSlipHandler *queries.GetPackingSlipQueryHandler,
	getCartonLabelHandler *queries.GetCartonLabelQueryHandler,
	getShippingSummaryHandler *queries.GetShippingSummaryQueryHandler,
	getUnacceptableUnitsHandler *queries.GetUnacceptableUnitsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		modifyShipmentHandler:       modifyShipmentHandler,
		closeShipmentHandler:        closeShipmentHandler,
		createCartonHandler:         createCartonHandler,
		packCartonItemHandler:       packCartonItemHandler,
		verifyCartonItemHandler:     verifyCartonItemHandler,
		removeCartonItemHandler:     removeCartonItemHandler,
		closeCartonHandler:          closeCartonHandler,
		repackCartonHandler:         repackCartonHandler,
		removeCartonHandler:         removeCartonHandler,
		getShipmentsHandler:         getShipmentsHandler,
		findShipmentHandler:         findShipmentHandler,
		getPackingSlipHandler:       getPackingSlipHandler,
		getCartonLabelHandler:       getCartonLabelHandler,
		getShippingSummaryHandler:   getShippingSummaryHandler,
		getUnacceptableUnitsHandler: getUnacceptableUnitsHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:shipmentId", s.FindShipment)
	api.PUT("/shipments/:shipmentId", s.ModifyShipment)
	api.POST("/shipments/:shipmentId/close", s.CloseShipment)
	api.POST("/shipments/:shipmentId/cartons", s.CreateCarton)
	api.GET("/shipments/:shipmentId/summary", s.GetShippingSummary)
	api.GET("/shipments/:shipmentId/unacceptable-units", s.GetUnacceptableUnits)

	api.POST("/cartons/:cartonId/items", s.PackCartonItem)
	api.POST("/cartons/:cartonId/verifications", s.VerifyCartonItem)
	api.DELETE("/cartons/:cartonId/items", s.RemoveCartonItem)
	api.POST("/cartons/:cartonId/close", s.CloseCarton)
	api.POST("/cartons/:cartonId/repack", s.RepackCarton)
	api.DELETE("/cartons/:cartonId", s.RemoveCarton)
	api.GET("/cartons/:cartonId/packing-slip", s.GetPackingSlip)
	api.GET("/cartons/:cartonId/label", s.GetCartonLabel)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		request.LocationCode,
		request.CustomerCode,
		request.ProductType,
		request.ShipmentDate.Time,
		request.CartonTareWeight,
		request.TransportationReferenceNumber,
		request.EmployeeID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created, true, false))
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid dateFrom",
		})
	}
	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid dateTo",
		})
	}

	query, err := queries.NewGetShipmentsQuery(
		ctx.QueryParam("locationCode"),
		ctx.QueryParam("status"),
		dateFrom,
		dateTo,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	rows, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentListItem, 0, len(rows))
	for _, row := range rows {
		response = append(response, toShipmentListItem(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindShipment handles GET /api/v1/shipments/:shipmentId.
func (s *Server) FindShipment(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	query, err := queries.NewFindShipmentQuery(shipmentID, ctx.QueryParam("locationCode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.findShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(result.Shipment, result.CanAddCarton, result.CanClose))
}

// ModifyShipment handles PUT /api/v1/shipments/:shipmentId.
func (s *Server) ModifyShipment(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	var request ModifyShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewModifyShipmentCommand(
		shipmentID,
		request.CustomerCode,
		request.ProductType,
		request.ShipmentDate.Time,
		request.CartonTareWeight,
		request.TransportationReferenceNumber,
		request.EmployeeID,
		request.Comments,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	modified, err := s.modifyShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(modified, modified.CanModify(), modified.CanClose()))
}

// CloseShipment handles POST /api/v1/shipments/:shipmentId/close.
func (s *Server) CloseShipment(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	var request CloseShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCloseShipmentCommand(shipmentID, request.ShipDate.Time, request.EmployeeID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	closed, err := s.closeShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, toShipmentResponse(closed, false, false))
}

// CreateCarton handles POST /api/v1/shipments/:shipmentId/cartons.
func (s *Server) CreateCarton(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	var request CreateCartonRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCartonCommand(shipmentID, request.EmployeeID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	created, err := s.createCartonHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCartonResponse(created))
}

// PackCartonItem handles POST /api/v1/cartons/:cartonId/items.
func (s *Server) PackCartonItem(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	var request PackItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPackCartonItemCommand(
		cartonID,
		request.UnitNumber,
		request.ProductCode,
		request.LocationCode,
		request.EmployeeID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	packed, err := s.packCartonItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartonResponse(packed))
}

// VerifyCartonItem handles POST /api/v1/cartons/:cartonId/verifications.
func (s *Server) VerifyCartonItem(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	var request PackItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewVerifyCartonItemCommand(
		cartonID,
		request.UnitNumber,
		request.ProductCode,
		request.LocationCode,
		request.EmployeeID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	verified, err := s.verifyCartonItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartonResponse(verified))
}

// RemoveCartonItem handles DELETE /api/v1/cartons/:cartonId/items.
func (s *Server) RemoveCartonItem(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	var request RemoveItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRemoveCartonItemCommand(
		cartonID,
		request.UnitNumber,
		request.ProductCode,
		request.EmployeeID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	unpacked, err := s.removeCartonItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartonResponse(unpacked))
}

// CloseCarton handles POST /api/v1/cartons/:cartonId/close.
func (s *Server) CloseCarton(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	var request CloseCartonRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCloseCartonCommand(cartonID, request.EmployeeID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	closed, err := s.closeCartonHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartonResponse(closed))
}

// RepackCarton handles POST /api/v1/cartons/:cartonId/repack.
func (s *Server) RepackCarton(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	var request RepackCartonRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRepackCartonCommand(cartonID, request.EmployeeID, request.Comments)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	reopened, err := s.repackCartonHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartonResponse(reopened))
}

// RemoveCarton handles DELETE /api/v1/cartons/:cartonId.
func (s *Server) RemoveCarton(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	cmd, err := commands.NewRemoveCartonCommand(cartonID, ctx.QueryParam("employeeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if _, err := s.removeCartonHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPackingSlip handles GET /api/v1/cartons/:cartonId/packing-slip.
func (s *Server) GetPackingSlip(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	query, err := queries.NewGetPackingSlipQuery(cartonID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	slip, err := s.getPackingSlipHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, slip)
}

// GetCartonLabel handles GET /api/v1/cartons/:cartonId/label.
func (s *Server) GetCartonLabel(ctx echo.Context) error {
	cartonID, err := parseID(ctx.Param("cartonId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid carton id",
		})
	}

	query, err := queries.NewGetCartonLabelQuery(cartonID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	label, err := s.getCartonLabelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, label)
}

// GetShippingSummary handles GET /api/v1/shipments/:shipmentId/summary.
func (s *Server) GetShippingSummary(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	query, err := queries.NewGetShippingSummaryQuery(shipmentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	summary, err := s.getShippingSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetUnacceptableUnits handles GET /api/v1/shipments/:shipmentId/unacceptable-units.
func (s *Server) GetUnacceptableUnits(ctx echo.Context) error {
	shipmentID, err := parseID(ctx.Param("shipmentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	query, err := queries.NewGetUnacceptableUnitsQuery(shipmentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.getUnacceptableUnitsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
