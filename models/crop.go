package models

// RawCrop holds a crop record exactly as the marketplace API returns it.
// Field shape varies between endpoints (Mongo ids, legacy single image,
// two possible timestamp keys), so records are normalised once at the
// ingestion boundary before anything else looks at them.
type RawCrop struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	CropName string `json:"crop_name"`
	Type     string `json:"type"`
	Quality  string `json:"quality"`
	Notes    string `json:"notes"`
	Location string `json:"location"`

	FarmerID   string `json:"farmer_id"`
	FarmerName string `json:"farmer_name"`

	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`

	Datetime string `json:"datetime"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Sold     bool   `json:"sold"`

	Image  string   `json:"image"`
	Images []string `json:"images"`
}

// Crop is the canonical record every component works with after
// normalisation. ID is stable and unique; free-text fields default to
// empty strings, display placeholders are a view concern.
type Crop struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quality  string `json:"quality"`
	Notes    string `json:"notes"`
	Location string `json:"location"`

	FarmerID   string `json:"farmer_id"`
	FarmerName string `json:"farmer_name"`

	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"` // kg

	// Datetime is the posting timestamp (ISO-8601) anchoring the
	// bidding window. Kept as received; parsing is the evaluator's job
	// so an unparsable value can fail open there.
	Datetime string `json:"datetime"`
	Status   string `json:"status"`
	Sold     bool   `json:"sold"`

	Images []string `json:"images"`
}

// CropForm carries the fields a farmer submits when creating or
// editing a crop. Values travel as one multipart form together with
// any image attachments.
type CropForm struct {
	Name     string
	Type     string
	Quality  string
	Price    float64
	Quantity float64
	Datetime string
	Location string
	Notes    string
}
