package bluedart

import (
	"time"

	"service/internal/entities"
)

const (
	defaultWeightGrams = 500
	defaultDimensionCm = 10.0
	statusDateLayout   = "02-Jan-2006 15:04"
)

func toWaybillRequest(shipper ShipperProfile, req entities.WaybillRequest) waybillRequest {
	weightGrams := req.WeightGrams
	if weightGrams <= 0 {
		weightGrams = defaultWeightGrams
	}

	return waybillRequest{
		Shipper: shipperPayload{
			CustomerName:    shipper.Name,
			CustomerAddress: shipper.Address,
			CustomerCity:    shipper.City,
			CustomerState:   shipper.State,
			CustomerPincode: shipper.PostalCode,
			CustomerCode:    shipper.CustomerCode,
		},
		Consignee: consigneePayload{
			ConsigneeName:    req.Consignee.Name,
			ConsigneeAddress: req.Address.Address,
			ConsigneeCity:    req.Address.City,
			ConsigneeState:   req.Address.State,
			ConsigneePincode: req.Address.PostalCode,
			ConsigneeCountry: req.Address.Country,
			ConsigneeMobile:  req.Consignee.Phone,
			ConsigneeEmail:   req.Consignee.Email,
		},
		Services: servicesPayload{
			ActualWeight:      float64(weightGrams) / 1000.0,
			PieceCount:        1,
			CreditReferenceNo: req.OrderID,
			Dimensions: []dimensionPayload{
				{
					Length:  defaultDimensionCm,
					Breadth: defaultDimensionCm,
					Height:  defaultDimensionCm,
					Count:   1,
				},
			},
		},
	}
}

func toTrackingSnapshot(resp *trackingResponse, raw []byte) *entities.TrackingSnapshot {
	snapshot := &entities.TrackingSnapshot{
		Status:      resp.Status,
		Description: resp.Instructions,
		Location: entities.TrackingLocation{
			City:    resp.Location.City,
			State:   resp.Location.State,
			Country: resp.Location.Country,
		},
		Raw: raw,
	}

	if resp.StatusDate != "" {
		if eventDate, err := time.Parse(statusDateLayout, resp.StatusDate); err == nil {
			snapshot.EventDate = &eventDate
		}
	}

	return snapshot
}
