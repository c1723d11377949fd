package resrobot

import (
	"bytes"
	"encoding/json"

	"github.com/stopboard/stopboard/pkg/ctdf"
)

type departureBoardResponse struct {
	Departure []json.RawMessage `json:"Departure"`
}

type departure struct {
	Name            string    `json:"name"`
	Stop            string    `json:"stop"`
	Time            string    `json:"time"`
	Date            string    `json:"date"`
	Direction       string    `json:"direction"`
	TransportNumber string    `json:"transportNumber"`
	Product         []product `json:"Product"`
}

type product struct {
	Name  string       `json:"name"`
	Num   string       `json:"num"`
	Class productClass `json:"cls"`
}

// productClass is published as a string by some API versions and a number by others
type productClass string

func (p *productClass) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*p = productClass(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*p = productClass(number.String())

	return nil
}

func (d *departure) firstProduct() *product {
	if len(d.Product) == 0 {
		return nil
	}

	return &d.Product[0]
}

func (d *departure) lineName() string {
	if d.TransportNumber != "" {
		return d.TransportNumber
	}

	if p := d.firstProduct(); p != nil {
		if p.Num != "" {
			return p.Num
		}
		return p.Name
	}

	return ""
}

func (d *departure) transportMode() ctdf.TransportMode {
	if p := d.firstProduct(); p != nil {
		if mode, exists := productClassModes[string(p.Class)]; exists {
			return mode
		}
	}

	return ctdf.TransportModeBus
}
