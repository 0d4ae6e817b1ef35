package appointment

import (
	"fmt"
	"strings"
)

type ServiceType string

const (
	ServiceHaircut      ServiceType = "corte_cabelo"
	ServiceBeard        ServiceType = "corte_barba"
	ServiceHaircutBeard ServiceType = "corte_cabelo_barba"
)

type ServiceInfo struct {
	Type       ServiceType `json:"type"`
	Name       string      `json:"name"`
	PriceCents int64       `json:"price_cents"`
	Price      string      `json:"price"`
}

var serviceTable = []ServiceInfo{
	{Type: ServiceHaircut, Name: "Corte de Cabelo", PriceCents: 3500},
	{Type: ServiceBeard, Name: "Corte de Barba", PriceCents: 2500},
	{Type: ServiceHaircutBeard, Name: "Corte de Cabelo e Barba", PriceCents: 5000},
}

func init() {
	for i := range serviceTable {
		serviceTable[i].Price = FormatBRL(serviceTable[i].PriceCents)
	}
}

// Services lists the price table in display order.
func Services() []ServiceInfo {
	out := make([]ServiceInfo, len(serviceTable))
	copy(out, serviceTable)
	return out
}

func (s ServiceType) Info() (ServiceInfo, bool) {
	for _, info := range serviceTable {
		if info.Type == s {
			return info, true
		}
	}
	return ServiceInfo{}, false
}

func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.TrimSpace(strings.ToLower(s)))
	if _, ok := st.Info(); !ok {
		return "", ErrInvalidService
	}
	return st, nil
}

// ServiceName falls back to the raw code for rows written before a service
// was retired.
func ServiceName(code string) string {
	if info, ok := ServiceType(code).Info(); ok {
		return info.Name
	}
	return code
}

// FormatBRL renders cents as Brazilian currency, e.g. 123450 -> "R$ 1.234,50".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := fmt.Sprintf("%d", cents/100)
	var b strings.Builder
	for i, r := range reais {
		if i > 0 && (len(reais)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}
