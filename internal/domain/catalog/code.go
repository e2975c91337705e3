package catalog

// Code identifies a business module in the product catalog.
type Code string

const (
	CodeCommerce   Code = "COMMERCE"
	CodeRealEstate Code = "REALESTATE"
	CodeTaxi       Code = "TAXI"
	CodeFinance    Code = "FINANCE"
	CodeStatistics Code = "STATISTICS"
	CodeAdmin      Code = "ADMIN"
)

func (c Code) String() string {
	return string(c)
}

func (c Code) IsValid() bool {
	switch c {
	case CodeCommerce, CodeRealEstate, CodeTaxi, CodeFinance, CodeStatistics, CodeAdmin:
		return true
	}
	return false
}
