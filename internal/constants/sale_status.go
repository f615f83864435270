package constants

type SaleStatus int

const (
	SaleStatusUnknown SaleStatus = iota
	SaleStatusAvailable
	SaleStatusBooked
	SaleStatusSold
)

func (s SaleStatus) String() string {
	switch s {
	case SaleStatusAvailable:
		return "available"
	case SaleStatusBooked:
		return "booked"
	case SaleStatusSold:
		return "sold"
	default:
		return "unknown"
	}
}

var saleStatusMap = map[string]SaleStatus{
	"available": SaleStatusAvailable,
	"booked":    SaleStatusBooked,
	"sold":      SaleStatusSold,
}

func ParseSaleStatus(s string) SaleStatus {
	if status, ok := saleStatusMap[s]; ok {
		return status
	}
	return SaleStatusUnknown
}
