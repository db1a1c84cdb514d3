package report

import (
	"sort"
	"strings"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/model/sysprop"
)

// SummaryReportTitle is the fixed title of the shipping summary document.
const SummaryReportTitle = "Plasma Shipment Summary Report"

// SummaryCarton is a per-carton line on the shipping summary.
type SummaryCarton struct {
	CartonNumber  string
	Status        string
	TotalProducts int
	TotalWeight   int
	TotalVolume   int
}

// SummaryShipmentDetail is the shipment header section of the summary.
type SummaryShipmentDetail struct {
	ShipmentNumber                string
	ProductType                   string
	ProductTypeDescription        string
	TotalCartons                  int
	TotalProducts                 int
	CartonTareWeight              float64
	TransportationReferenceNumber string
	DisplayTransportationNum      bool
}

// ShippingSummary is the document accompanying a closed shipment. Cartons are
// listed in case-insensitive carton number order.
type ShippingSummary struct {
	ReportTitle      string
	EmployeeName     string
	EmployeeID       string
	ShipDate         string
	CloseDate        string
	ShipmentDetail   SummaryShipmentDetail
	ShipTo           Party
	ShipFrom         Party
	TestingStatement string
	CartonList       []SummaryCarton
	DisplayHeader    bool
	HeaderStatement  string
}

// GenerateShippingSummary builds the summary for a closed shipment. The
// properties are the RPS_SHIPPING_SUMMARY_REPORT system properties and the
// carton list holds every carton of the shipment.
func GenerateShippingSummary(
	shp *shipment.Shipment,
	cartons []*carton.Carton,
	loc *location.Location,
	productTypeDescription string,
	properties []sysprop.Property,
) (*ShippingSummary, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if err := shp.CanPrintShippingSummary(); err != nil {
		return nil, err
	}

	closeDate, err := requireCloseDate(shp.CloseDate())
	if err != nil {
		return nil, err
	}
	formattedCloseDate, err := formatDateTime(closeDate, properties, loc)
	if err != nil {
		return nil, err
	}
	shipDate, err := formatDate(shp.ShipmentDate(), properties)
	if err != nil {
		return nil, err
	}

	shipFrom, err := shipFromParty(properties, loc)
	if err != nil {
		return nil, err
	}
	shipTo, err := shipToParty(shp.Customer(), properties)
	if err != nil {
		return nil, err
	}

	testingStatement, err := buildTestingStatement(properties, shp.CloseEmployeeID())
	if err != nil {
		return nil, err
	}

	displayHeader := sysprop.IsEnabled(properties, sysprop.KeyUseHeaderSection)
	headerStatement := ""
	if displayHeader {
		headerStatement, err = sysprop.FindValue(properties, sysprop.KeyHeaderSectionText)
		if err != nil {
			return nil, err
		}
	}

	cartonList := buildCartonList(cartons)
	totalProducts := 0
	for _, c := range cartonList {
		totalProducts += c.TotalProducts
	}

	return &ShippingSummary{
		ReportTitle:  SummaryReportTitle,
		EmployeeName: shp.CloseEmployeeID(),
		EmployeeID:   shp.CloseEmployeeID(),
		ShipDate:     shipDate,
		CloseDate:    formattedCloseDate,
		ShipmentDetail: SummaryShipmentDetail{
			ShipmentNumber:                shp.ShipmentNumber(),
			ProductType:                   shp.ProductType(),
			ProductTypeDescription:        productTypeDescription,
			TotalCartons:                  len(cartonList),
			TotalProducts:                 totalProducts,
			CartonTareWeight:              shp.CartonTareWeight(),
			TransportationReferenceNumber: shp.TransportationReferenceNumber(),
			DisplayTransportationNum:      sysprop.IsEnabled(properties, sysprop.KeyUseTransportationNum),
		},
		ShipTo:           shipTo,
		ShipFrom:         shipFrom,
		TestingStatement: testingStatement,
		CartonList:       cartonList,
		DisplayHeader:    displayHeader,
		HeaderStatement:  headerStatement,
	}, nil
}

func buildCartonList(cartons []*carton.Carton) []SummaryCarton {
	list := make([]SummaryCarton, 0, len(cartons))
	for _, c := range cartons {
		list = append(list, SummaryCarton{
			CartonNumber:  c.CartonNumber(),
			Status:        c.Status().String(),
			TotalProducts: c.TotalProducts(),
			TotalWeight:   c.TotalWeight(),
			TotalVolume:   c.TotalVolume(),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].CartonNumber) < strings.ToLower(list[j].CartonNumber)
	})
	return list
}
