package branches

import "github.com/huynhtrandev/brewpoint-backend/pkg/types"

// Seed returns the chain's servicing locations. Fees are in VND.
func Seed() []Branch {
	return []Branch{
		{
			ID:                    "br-ben-thanh",
			Name:                  "Brewpoint Ben Thanh",
			Address:               "12 Le Loi",
			District:              "District 1",
			City:                  "Ho Chi Minh City",
			Coord:                 types.Coordinate{Lat: 10.7721, Lng: 106.6983},
			DeliveryRadiusKm:      5.0,
			BaseDeliveryFee:       15000,
			ExtraFeePerKm:         5000,
			FreeShippingThreshold: 150000,
			PrepTimeMins:          10,
			DeliveryTimeMins:      20,
			OpeningHours:          OpeningHours{Open: "07:00", Close: "22:00", Days: "Mon-Sun"},
			IsActive:              true,
		},
		{
			ID:                    "br-thao-dien",
			Name:                  "Brewpoint Thao Dien",
			Address:               "8 Xuan Thuy",
			District:              "Thu Duc",
			City:                  "Ho Chi Minh City",
			Coord:                 types.Coordinate{Lat: 10.8031, Lng: 106.7339},
			DeliveryRadiusKm:      4.5,
			BaseDeliveryFee:       15000,
			ExtraFeePerKm:         6000,
			FreeShippingThreshold: 200000,
			PrepTimeMins:          12,
			DeliveryTimeMins:      18,
			OpeningHours:          OpeningHours{Open: "07:30", Close: "21:30", Days: "Mon-Sun"},
			IsActive:              true,
		},
		{
			ID:                    "br-phu-nhuan",
			Name:                  "Brewpoint Phu Nhuan",
			Address:               "210 Phan Xich Long",
			District:              "Phu Nhuan",
			City:                  "Ho Chi Minh City",
			Coord:                 types.Coordinate{Lat: 10.7992, Lng: 106.6805},
			DeliveryRadiusKm:      4.0,
			BaseDeliveryFee:       12000,
			ExtraFeePerKm:         5000,
			FreeShippingThreshold: 120000,
			PrepTimeMins:          8,
			DeliveryTimeMins:      15,
			OpeningHours:          OpeningHours{Open: "06:30", Close: "22:00", Days: "Mon-Sun"},
			IsActive:              true,
		},
		{
			ID:                    "br-phu-my-hung",
			Name:                  "Brewpoint Phu My Hung",
			Address:               "99 Nguyen Duc Canh",
			District:              "District 7",
			City:                  "Ho Chi Minh City",
			Coord:                 types.Coordinate{Lat: 10.7296, Lng: 106.7217},
			DeliveryRadiusKm:      5.0,
			BaseDeliveryFee:       15000,
			ExtraFeePerKm:         5000,
			FreeShippingThreshold: 150000,
			PrepTimeMins:          10,
			DeliveryTimeMins:      22,
			OpeningHours:          OpeningHours{Open: "07:00", Close: "21:00", Days: "Mon-Sun"},
			IsActive:              true,
		},
		{
			// Closed for renovation; kept in the directory so existing
			// order history can still resolve the branch name.
			ID:                    "br-go-vap",
			Name:                  "Brewpoint Go Vap",
			Address:               "45 Quang Trung",
			District:              "Go Vap",
			City:                  "Ho Chi Minh City",
			Coord:                 types.Coordinate{Lat: 10.8387, Lng: 106.6654},
			DeliveryRadiusKm:      4.0,
			BaseDeliveryFee:       12000,
			ExtraFeePerKm:         5000,
			FreeShippingThreshold: 120000,
			PrepTimeMins:          10,
			DeliveryTimeMins:      18,
			OpeningHours:          OpeningHours{Open: "07:00", Close: "22:00", Days: "Mon-Sun"},
			IsActive:              false,
		},
	}
}
