package config

import (
	"fmt"
	"strings"
)

// RGB is a 0..1 color triple used by the PDF generators.
type RGB struct {
	R float64
	G float64
	B float64
}

// ZoneConfig is the per-deployment constants bundle. It is resolved exactly
// once at startup from the ZONE environment variable and injected everywhere;
// nothing else in the codebase branches on the zone key.
type ZoneConfig struct {
	Key          string
	DBName       string
	DisplayName  string
	IDPrefix     string
	PrimaryColor RGB
	FooterText   []string
}

var zones = map[string]ZoneConfig{
	"a": {
		Key:          "a",
		DBName:       "a_zone",
		DisplayName:  "A-Zone",
		IDPrefix:     "KRT",
		PrimaryColor: RGB{R: 0.69, G: 0.18, B: 0.51},
		FooterText: []string{
			"Kindly submit the A-zone copy along with the following documents to the Program Office on or before 20th January.",
			"A copy of your SSLC Book.",
			"A copy of your Hall Ticket.",
		},
	},
	"c": {
		Key:          "c",
		DBName:       "c_zone",
		DisplayName:  "C-Zone",
		IDPrefix:     "KLM",
		PrimaryColor: RGB{R: 0.08, G: 0.13, B: 0.38},
		FooterText: []string{
			"Kindly submit the C-zone copy along with the following documents to the Program Office on or before 16th January.",
			"A copy of your SSLC Book.",
			"A copy of your Hall Ticket.",
		},
	},
	"d": {
		Key:          "d",
		DBName:       "d_zone",
		DisplayName:  "D-Zone",
		IDPrefix:     "KPM",
		PrimaryColor: RGB{R: 0.52, G: 0.17, B: 0.89},
		FooterText: []string{
			"Kindly submit the D-zone copy along with the following documents to the Program Office on or before 20th January.",
			"A copy of your SSLC Book.",
			"A copy of your Hall Ticket.",
		},
	},
	"f": {
		Key:          "f",
		DBName:       "f_zone",
		DisplayName:  "F-Zone",
		IDPrefix:     "KSK",
		PrimaryColor: RGB{R: 0.35, G: 0.78, B: 0.81},
		FooterText: []string{
			"Kindly submit the F-zone copy along with the following documents to the Program Office on or before 21st January.",
			"A copy of your SSLC Book.",
			"A copy of your Hall Ticket.",
		},
	},
}

func ResolveZone(key string) (*ZoneConfig, error) {
	zone, ok := zones[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", key)
	}

	return &zone, nil
}
