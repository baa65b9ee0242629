package dto

import "time"

type CreateVehicleRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int      `json:"mileage"`
	FuelType     string   `json:"fuel_type"`
	BodyType     string   `json:"body_type"`
	Transmission string   `json:"transmission"`
	Condition    string   `json:"condition"`
	Color        string   `json:"color"`
	Seats        int      `json:"seats"`
	Location     string   `json:"location"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
}

type UpdateVehicleRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Make         *string   `json:"make"`
	Model        *string   `json:"model"`
	Year         *int      `json:"year"`
	Price        *float64  `json:"price"`
	Mileage      *int      `json:"mileage"`
	FuelType     *string   `json:"fuel_type"`
	BodyType     *string   `json:"body_type"`
	Transmission *string   `json:"transmission"`
	Condition    *string   `json:"condition"`
	Color        *string   `json:"color"`
	Seats        *int      `json:"seats"`
	Location     *string   `json:"location"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
}

type CreatePartRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	OEMNumber   string   `json:"oem_number"`
	Condition   string   `json:"condition"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
}

type UpdatePartRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Make        *string   `json:"make"`
	Model       *string   `json:"model"`
	OEMNumber   *string   `json:"oem_number"`
	Condition   *string   `json:"condition"`
	Price       *float64  `json:"price"`
	Quantity    *int      `json:"quantity"`
	Location    *string   `json:"location"`
	Images      *[]string `json:"images"`
}

type CreateServiceRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	PriceType     string   `json:"price_type"`
	Location      string   `json:"location"`
	MobileService bool     `json:"mobile_service"`
	Images        []string `json:"images"`
}

type UpdateServiceRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	Price         *float64  `json:"price"`
	PriceType     *string   `json:"price_type"`
	Location      *string   `json:"location"`
	MobileService *bool     `json:"mobile_service"`
	Images        *[]string `json:"images"`
}

type CreateRentalRequest struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Make              string    `json:"make"`
	Model             string    `json:"model"`
	Year              int       `json:"year"`
	DailyRate         float64   `json:"daily_rate"`
	WeeklyRate        float64   `json:"weekly_rate"`
	Deposit           float64   `json:"deposit"`
	MinRentalDays     int       `json:"min_rental_days"`
	MaxRentalDays     int       `json:"max_rental_days"`
	Seats             int       `json:"seats"`
	Transmission      string    `json:"transmission"`
	FuelType          string    `json:"fuel_type"`
	Location          string    `json:"location"`
	AvailableFrom     time.Time `json:"available_from"`
	AvailableUntil    time.Time `json:"available_until"`
	DeliveryAvailable bool      `json:"delivery_available"`
	InsuranceIncluded bool      `json:"insurance_included"`
	Features          []string  `json:"features"`
	Images            []string  `json:"images"`
	IncludedItems     []string  `json:"included_items"`
	PickupLocations   []string  `json:"pickup_locations"`
}

type UpdateRentalRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Make              *string    `json:"make"`
	Model             *string    `json:"model"`
	Year              *int       `json:"year"`
	DailyRate         *float64   `json:"daily_rate"`
	WeeklyRate        *float64   `json:"weekly_rate"`
	Deposit           *float64   `json:"deposit"`
	MinRentalDays     *int       `json:"min_rental_days"`
	MaxRentalDays     *int       `json:"max_rental_days"`
	Seats             *int       `json:"seats"`
	Transmission      *string    `json:"transmission"`
	FuelType          *string    `json:"fuel_type"`
	Location          *string    `json:"location"`
	AvailableFrom     *time.Time `json:"available_from"`
	AvailableUntil    *time.Time `json:"available_until"`
	IsAvailable       *bool      `json:"is_available"`
	DeliveryAvailable *bool      `json:"delivery_available"`
	InsuranceIncluded *bool      `json:"insurance_included"`
	Features          *[]string  `json:"features"`
	Images            *[]string  `json:"images"`
	IncludedItems     *[]string  `json:"included_items"`
	PickupLocations   *[]string  `json:"pickup_locations"`
}
