package appointment

// RevenueRow is one (service, payment status) bucket of the monthly
// aggregation.
type RevenueRow struct {
	ServiceType   string
	PaymentStatus string
	Count         int64
	RevenueCents  int64
}

type ServiceRevenue struct {
	Service      ServiceType `json:"service"`
	Name         string      `json:"name"`
	Count        int64       `json:"count"`
	PaidCount    int64       `json:"paid_count"`
	RevenueCents int64       `json:"revenue_cents"`
	Revenue      string      `json:"revenue"`
}

type Dashboard struct {
	Appointments int64            `json:"appointments"`
	PaidCents    int64            `json:"paid_cents"`
	PendingCents int64            `json:"pending_cents"`
	Paid         string           `json:"paid"`
	Pending      string           `json:"pending"`
	ByService    []ServiceRevenue `json:"by_service"`
}

// BuildDashboard folds aggregation rows into the back-office summary. Every
// service of the price table is listed, even with zero bookings; revenue
// only counts paid appointments.
func BuildDashboard(rows []RevenueRow) Dashboard {
	byService := make(map[ServiceType]*ServiceRevenue)
	var order []ServiceType

	for _, info := range serviceTable {
		byService[info.Type] = &ServiceRevenue{Service: info.Type, Name: info.Name}
		order = append(order, info.Type)
	}

	var d Dashboard
	for _, r := range rows {
		st := ServiceType(r.ServiceType)
		sr, ok := byService[st]
		if !ok {
			sr = &ServiceRevenue{Service: st, Name: ServiceName(r.ServiceType)}
			byService[st] = sr
			order = append(order, st)
		}

		sr.Count += r.Count
		d.Appointments += r.Count

		if PaymentStatus(r.PaymentStatus) == PaymentPaid {
			sr.PaidCount += r.Count
			sr.RevenueCents += r.RevenueCents
			d.PaidCents += r.RevenueCents
		} else {
			d.PendingCents += r.RevenueCents
		}
	}

	d.ByService = make([]ServiceRevenue, 0, len(order))
	for _, st := range order {
		sr := byService[st]
		sr.Revenue = FormatBRL(sr.RevenueCents)
		d.ByService = append(d.ByService, *sr)
	}
	d.Paid = FormatBRL(d.PaidCents)
	d.Pending = FormatBRL(d.PendingCents)

	return d
}
