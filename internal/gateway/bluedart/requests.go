package bluedart

// Формат запросов и ответов API BlueDart. За пределы адаптера эти
// типы не выходят.

type loginRequest struct {
	LicenseKey string `json:"LicenceKey"`
	LoginID    string `json:"LoginID"`
}

type loginResponse struct {
	IsError      bool   `json:"IsError"`
	ErrorMessage string `json:"ErrorMessage"`
	JWTToken     string `json:"JWTToken"`
}

type waybillRequest struct {
	Shipper   shipperPayload   `json:"Shipper"`
	Consignee consigneePayload `json:"Consignee"`
	Services  servicesPayload  `json:"Services"`
}

type shipperPayload struct {
	CustomerName    string `json:"CustomerName"`
	CustomerAddress string `json:"CustomerAddress1"`
	CustomerCity    string `json:"CustomerCity"`
	CustomerState   string `json:"CustomerState"`
	CustomerPincode string `json:"CustomerPincode"`
	CustomerCode    string `json:"CustomerCode"`
}

type consigneePayload struct {
	ConsigneeName    string `json:"ConsigneeName"`
	ConsigneeAddress string `json:"ConsigneeAddress1"`
	ConsigneeCity    string `json:"ConsigneeCity"`
	ConsigneeState   string `json:"ConsigneeState"`
	ConsigneePincode string `json:"ConsigneePincode"`
	ConsigneeCountry string `json:"ConsigneeCountry"`
	ConsigneeMobile  string `json:"ConsigneeMobile"`
	ConsigneeEmail   string `json:"ConsigneeEmail,omitempty"`
}

type servicesPayload struct {
	ActualWeight      float64            `json:"ActualWeight"`
	PieceCount        int                `json:"PieceCount"`
	CreditReferenceNo string             `json:"CreditReferenceNo"`
	Dimensions        []dimensionPayload `json:"Dimensions"`
}

type dimensionPayload struct {
	Length  float64 `json:"Length"`
	Breadth float64 `json:"Breadth"`
	Height  float64 `json:"Height"`
	Count   int     `json:"Count"`
}

type waybillResponse struct {
	IsError      bool            `json:"IsError"`
	ErrorMessage string          `json:"ErrorMessage"`
	Status       []statusPayload `json:"Status"`
	AWBNo        string          `json:"AWBNo"`
	TokenNumber  string          `json:"TokenNumber"`
}

type statusPayload struct {
	StatusInformation string `json:"StatusInformation"`
}

type trackingResponse struct {
	IsError      bool            `json:"IsError"`
	ErrorMessage string          `json:"ErrorMessage"`
	Status       string          `json:"Status"`
	StatusType   string          `json:"StatusType"`
	Instructions string          `json:"Instructions"`
	StatusDate   string          `json:"StatusDate"`
	Location     locationPayload `json:"Location"`
}

type locationPayload struct {
	City    string `json:"City"`
	State   string `json:"State"`
	Country string `json:"Country"`
}

type cancelRequest struct {
	AWBNo string `json:"AWBNo"`
}

type cancelResponse struct {
	IsError      bool   `json:"IsError"`
	ErrorMessage string `json:"ErrorMessage"`
	Status       string `json:"Status"`
}
