package http

import (
	"time"

	"plasmashipping/internal/core/application/usecases/queries"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/shipment"

	"github.com/oapi-codegen/runtime/types"
)

// CreateShipmentRequest is the payload for opening a new shipment.
type CreateShipmentRequest struct {
	LocationCode                  string     `json:"locationCode"`
	CustomerCode                  string     `json:"customerCode"`
	ProductType                   string     `json:"productType"`
	ShipmentDate                  types.Date `json:"shipmentDate"`
	CartonTareWeight              float64    `json:"cartonTareWeight"`
	TransportationReferenceNumber string     `json:"transportationReferenceNumber,omitempty"`
	EmployeeID                    string     `json:"employeeId"`
}

// ModifyShipmentRequest is the payload for updating shipment attributes.
type ModifyShipmentRequest struct {
	CustomerCode                  string     `json:"customerCode"`
	ProductType                   string     `json:"productType"`
	ShipmentDate                  types.Date `json:"shipmentDate"`
	CartonTareWeight              float64    `json:"cartonTareWeight"`
	TransportationReferenceNumber string     `json:"transportationReferenceNumber,omitempty"`
	EmployeeID                    string     `json:"employeeId"`
	Comments                      string     `json:"comments,omitempty"`
}

// CloseShipmentRequest is the payload for sending a shipment to processing.
type CloseShipmentRequest struct {
	ShipDate   types.Date `json:"shipDate"`
	EmployeeID string     `json:"employeeId"`
}

// CreateCartonRequest is the payload for adding a carton to a shipment.
type CreateCartonRequest struct {
	EmployeeID string `json:"employeeId"`
}

// PackItemRequest is the payload for the packing and verification scans.
type PackItemRequest struct {
	UnitNumber   string `json:"unitNumber"`
	ProductCode  string `json:"productCode"`
	LocationCode string `json:"locationCode"`
	EmployeeID   string `json:"employeeId"`
}

// RemoveItemRequest is the payload for unpacking a unit from a carton.
type RemoveItemRequest struct {
	UnitNumber  string `json:"unitNumber"`
	ProductCode string `json:"productCode"`
	EmployeeID  string `json:"employeeId"`
}

// CloseCartonRequest is the payload for sealing a carton.
type CloseCartonRequest struct {
	EmployeeID string `json:"employeeId"`
}

// RepackCartonRequest is the payload for reopening a flagged carton.
type RepackCartonRequest struct {
	EmployeeID string `json:"employeeId"`
	Comments   string `json:"comments,omitempty"`
}

// ShipmentResponse is the shipment representation returned by the API.
type ShipmentResponse struct {
	ID                            int64      `json:"id"`
	ShipmentNumber                string     `json:"shipmentNumber"`
	LocationCode                  string     `json:"locationCode"`
	CustomerCode                  string     `json:"customerCode"`
	CustomerName                  string     `json:"customerName"`
	ProductType                   string     `json:"productType"`
	Status                        string     `json:"status"`
	ShipmentDate                  types.Date `json:"shipmentDate"`
	CartonTareWeight              float64    `json:"cartonTareWeight"`
	TransportationReferenceNumber string     `json:"transportationReferenceNumber,omitempty"`
	ReportStatus                  string     `json:"reportStatus,omitempty"`
	CloseDate                     *time.Time `json:"closeDate,omitempty"`
	TotalCartons                  int        `json:"totalCartons"`
	TotalProducts                 int        `json:"totalProducts"`
	CanAddCarton                  bool       `json:"canAddCarton"`
	CanClose                      bool       `json:"canClose"`
}

// ShipmentListItem is one row of the shipment list.
type ShipmentListItem struct {
	ID             int64      `json:"id"`
	ShipmentNumber string     `json:"shipmentNumber"`
	Status         string     `json:"status"`
	CustomerCode   string     `json:"customerCode"`
	CustomerName   string     `json:"customerName"`
	ProductType    string     `json:"productType"`
	ShipmentDate   types.Date `json:"shipmentDate"`
	TotalCartons   int        `json:"totalCartons"`
	CreateDate     time.Time  `json:"createDate"`
}

// CartonItemResponse is one packed unit of a carton.
type CartonItemResponse struct {
	UnitNumber  string `json:"unitNumber"`
	ProductCode string `json:"productCode"`
	Status      string `json:"status"`
	Volume      int    `json:"volume"`
	Weight      int    `json:"weight"`
}

// CartonResponse is the carton representation returned by the API.
type CartonResponse struct {
	ID             int64                `json:"id"`
	CartonNumber   string               `json:"cartonNumber"`
	ShipmentID     int64                `json:"shipmentId"`
	CartonSequence int                  `json:"cartonSequence"`
	Status         string               `json:"status"`
	TotalProducts  int                  `json:"totalProducts"`
	CanClose       bool                 `json:"canClose"`
	Items          []CartonItemResponse `json:"items"`
}

func toShipmentResponse(s *shipment.Shipment, canAddCarton, canClose bool) ShipmentResponse {
	return ShipmentResponse{
		ID:                            s.ID(),
		ShipmentNumber:                s.ShipmentNumber(),
		LocationCode:                  s.LocationCode(),
		CustomerCode:                  s.Customer().Code(),
		CustomerName:                  s.Customer().Name(),
		ProductType:                   s.ProductType(),
		Status:                        s.Status().String(),
		ShipmentDate:                  types.Date{Time: s.ShipmentDate()},
		CartonTareWeight:              s.CartonTareWeight(),
		TransportationReferenceNumber: s.TransportationReferenceNumber(),
		ReportStatus:                  s.ReportStatus().String(),
		CloseDate:                     s.CloseDate(),
		TotalCartons:                  s.TotalCartons(),
		TotalProducts:                 s.TotalProducts(),
		CanAddCarton:                  canAddCarton,
		CanClose:                      canClose,
	}
}

func toShipmentListItem(row queries.GetShipmentsQueryResponse) ShipmentListItem {
	return ShipmentListItem{
		ID:             row.ShipmentID,
		ShipmentNumber: row.ShipmentNumber,
		Status:         row.Status,
		CustomerCode:   row.CustomerCode,
		CustomerName:   row.CustomerName,
		ProductType:    row.ProductType,
		ShipmentDate:   types.Date{Time: row.ShipmentDate},
		TotalCartons:   row.TotalCartons,
		CreateDate:     row.CreateDate,
	}
}

func toCartonResponse(c *carton.Carton) CartonResponse {
	items := make([]CartonItemResponse, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, CartonItemResponse{
			UnitNumber:  item.UnitNumber(),
			ProductCode: item.ProductCode(),
			Status:      item.Status().String(),
			Volume:      item.Volume(),
			Weight:      item.Weight(),
		})
	}

	return CartonResponse{
		ID:             c.ID(),
		CartonNumber:   c.CartonNumber(),
		ShipmentID:     c.ShipmentID(),
		CartonSequence: c.CartonSequence(),
		Status:         c.Status().String(),
		TotalProducts:  c.TotalProducts(),
		CanClose:       c.CanClose(),
		Items:          items,
	}
}
