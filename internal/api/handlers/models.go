package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// FlexString принимает в JSON как строку, так и число ("guests": 10 или "guests": "10")
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

// DraftRequest черновик формы бронирования в HTTP запросе
type DraftRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Contact    string     `json:"contact"`
	EventDate  string     `json:"eventDate"`
	Venue      string     `json:"venue"`
	Guests     FlexString `json:"guests"`
	Style      string     `json:"style"`
	MainDishes []string   `json:"mainDishes"`
	SideDishes []string   `json:"sideDishes"`
	Desserts   []string   `json:"desserts"`
	Drinks     []string   `json:"drinks"`
	OriginID   string     `json:"originId,omitempty"`
}

// ToDomain конвертирует запрос в черновик в состоянии drafting
func (r *DraftRequest) ToDomain() *domain.Draft {
	return &domain.Draft{
		Name:      r.Name,
		Email:     r.Email,
		Contact:   r.Contact,
		EventDate: r.EventDate,
		Venue:     r.Venue,
		Guests:    string(r.Guests),
		Style:     r.Style,
		Selection: domain.Selection{
			MainDishes: r.MainDishes,
			SideDishes: r.SideDishes,
			Desserts:   r.Desserts,
			Drinks:     r.Drinks,
		},
		State:    domain.DraftDrafting,
		OriginID: r.OriginID,
	}
}

// GuestsParam разбирает query параметр guests; пустое значение - 0
func GuestsParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
