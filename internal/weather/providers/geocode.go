package providers

import (
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/openwindow/advisor/internal/weather"
)

// ResolveCoordinates fills in latitude and longitude for a city/country
// location through the Google geocoding API. Locations that already carry
// coordinates are returned unchanged.
func ResolveCoordinates(apiKey string, loc weather.Location) (weather.Location, error) {
	if loc.Lat != nil && loc.Lon != nil {
		return loc, nil
	}
	if loc.City == "" {
		return loc, fmt.Errorf("location has neither coordinates nor a city")
	}
	if apiKey == "" {
		return loc, fmt.Errorf("geocoding %q requires GEOCODER_API_KEY", loc.Key())
	}

	geocoder.ApiKey = apiKey

	address := geocoder.Address{
		City:    loc.City,
		Country: loc.Country,
	}
	coords, err := geocoder.Geocoding(address)
	if err != nil {
		return loc, fmt.Errorf("geocode %s: %w", loc.Key(), err)
	}

	loc.Lat = &coords.Latitude
	loc.Lon = &coords.Longitude
	return loc, nil
}
