// Package geocode resolves coordinates to a human-readable address via
// an external reverse-geocoding service. The lookup is best effort: a
// failure leaves the citizen's own location text in place.
package geocode

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"
)

var (
	geocoderUrl = flag.String("geocoder_url", "http://localhost:8090/reverse", "The URL of the reverse geocoding service.")
)

var client = &http.Client{
	Timeout: 5 * time.Second,
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse returns the display address for the coordinates, or an empty
// string with an error when the service is unreachable or has no
// answer.
func Reverse(latitude, longitude float64) (string, error) {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&format=json", *geocoderUrl, latitude, longitude)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		log.Errorf("Error creating geocode request: %v", err)
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Errorf("Error making geocode request: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Error reading geocode response body: %v", err)
		return "", err
	}

	var r reverseResponse
	if err := json.Unmarshal(body, &r); err != nil {
		log.Errorf("Error parsing geocode response: %v", err)
		return "", err
	}
	if r.DisplayName == "" {
		return "", fmt.Errorf("no address for %f,%f", latitude, longitude)
	}
	return r.DisplayName, nil
}
